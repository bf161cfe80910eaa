package usecase

import (
	"context"
	"errors"
	"math"
	"time"

	"personnel-metrics-service/internal/report/core/domain"
	"personnel-metrics-service/internal/report/core/ports"
)

var ErrMissingOwner = errors.New("owner id is required")

// ReportOutput pairs the aggregated report with the campaign countdown.
type ReportOutput struct {
	Report        *domain.Report
	DaysRemaining int
}

type GetReportUseCase struct {
	reader     ports.RowReaderPort
	targetDate time.Time
	now        func() time.Time
}

// NewGetReportUseCase builds the report use case. now is injectable for
// tests; pass nil to use the wall clock.
func NewGetReportUseCase(reader ports.RowReaderPort, targetDate time.Time, now func() time.Time) *GetReportUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetReportUseCase{reader: reader, targetDate: targetDate, now: now}
}

// Execute fetches the owner's rows and recomputes the full report.
func (uc *GetReportUseCase) Execute(ctx context.Context, ownerID string) (*ReportOutput, error) {
	if ownerID == "" {
		return nil, ErrMissingOwner
	}

	rows, err := uc.reader.QueryRows(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return &ReportOutput{
		Report:        BuildReport(rows),
		DaysRemaining: uc.daysRemaining(),
	}, nil
}

// Rows returns the flat data-table view without any aggregation.
func (uc *GetReportUseCase) Rows(ctx context.Context, ownerID string) ([]domain.TableRow, error) {
	if ownerID == "" {
		return nil, ErrMissingOwner
	}
	return uc.reader.QueryTableRows(ctx, ownerID)
}

// daysRemaining is ceil((targetDate - now) / 24h). Negative when the
// target date has passed; the HTTP layer clamps for display.
func (uc *GetReportUseCase) daysRemaining() int {
	diff := uc.targetDate.Sub(uc.now())
	return int(math.Ceil(diff.Hours() / 24))
}
