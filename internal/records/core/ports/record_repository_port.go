package ports

import (
	"context"
	"errors"

	"personnel-metrics-service/internal/records/core/domain"
)

// ErrUnknownEmployee is returned when a record references an employee id
// that does not exist for the owner.
var ErrUnknownEmployee = errors.New("unknown employee")

type TargetRatioRepositoryPort interface {
	// InsertTargetRatio stores a new record; the repository assigns the id
	// and timestamps and writes them back onto r.
	InsertTargetRatio(ctx context.Context, r *domain.TargetRatio) error

	ListTargetRatios(ctx context.Context, ownerID string) ([]domain.TargetRatio, error)

	// DeleteTargetRatio:
	//   found = false, err = nil -> no such record for this owner
	DeleteTargetRatio(ctx context.Context, id, ownerID string) (found bool, err error)
}

type DailyIncreaseRepositoryPort interface {
	InsertDailyIncrease(ctx context.Context, r *domain.DailyIncrease) error

	ListDailyIncreases(ctx context.Context, ownerID string) ([]domain.DailyIncrease, error)

	DeleteDailyIncrease(ctx context.Context, id, ownerID string) (found bool, err error)
}
