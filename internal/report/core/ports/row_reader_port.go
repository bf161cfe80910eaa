package ports

import (
	"context"

	"personnel-metrics-service/internal/report/core/domain"
)

type RowReaderPort interface {
	// QueryRows returns the flat employee x date join for ownerID.
	// Employees without any target-ratio record still yield one row with
	// an empty date so they appear in the series with all-empty values.
	QueryRows(ctx context.Context, ownerID string) ([]domain.Row, error)

	// QueryTableRows returns the joined data-table view for ownerID.
	QueryTableRows(ctx context.Context, ownerID string) ([]domain.TableRow, error)
}
