package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"personnel-metrics-service/internal/report/core/domain"
)

// ------------------------------------------------------------------
// fake reader
// ------------------------------------------------------------------

type fakeRowReader struct {
	QueryRowsFn      func(ctx context.Context, ownerID string) ([]domain.Row, error)
	QueryTableRowsFn func(ctx context.Context, ownerID string) ([]domain.TableRow, error)

	lastOwnerID string
}

func (f *fakeRowReader) QueryRows(ctx context.Context, ownerID string) ([]domain.Row, error) {
	f.lastOwnerID = ownerID
	return f.QueryRowsFn(ctx, ownerID)
}

func (f *fakeRowReader) QueryTableRows(ctx context.Context, ownerID string) ([]domain.TableRow, error) {
	f.lastOwnerID = ownerID
	return f.QueryTableRowsFn(ctx, ownerID)
}

func fixedClock(s string) func() time.Time {
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return ts }
}

// ------------------------------------------------------------------
// Execute
// ------------------------------------------------------------------

func TestGetReport_Execute(t *testing.T) {
	reader := &fakeRowReader{
		QueryRowsFn: func(ctx context.Context, ownerID string) ([]domain.Row, error) {
			return []domain.Row{
				{EmployeeNo: "1001", Name: "Ada", Date: "2025-01-01", Ratio: "10%"},
			}, nil
		},
	}
	target := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	uc := NewGetReportUseCase(reader, target, fixedClock("2025-06-01T00:00:00Z"))

	out, err := uc.Execute(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reader.lastOwnerID != "user-1" {
		t.Fatalf("reader called with owner %q", reader.lastOwnerID)
	}
	if out.Report.EmployeeCount != 1 {
		t.Fatalf("employee count = %d", out.Report.EmployeeCount)
	}
	if out.DaysRemaining != 6 {
		t.Fatalf("days remaining = %d, want 6", out.DaysRemaining)
	}
}

func TestGetReport_DaysRemainingRoundsUp(t *testing.T) {
	reader := &fakeRowReader{
		QueryRowsFn: func(ctx context.Context, ownerID string) ([]domain.Row, error) {
			return nil, nil
		},
	}
	target := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	// Hedefe 12 saat kala bile 1 gun sayilir.
	uc := NewGetReportUseCase(reader, target, fixedClock("2025-06-06T12:00:00Z"))

	out, err := uc.Execute(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.DaysRemaining != 1 {
		t.Fatalf("days remaining = %d, want 1", out.DaysRemaining)
	}
}

func TestGetReport_DaysRemainingNegativeAfterTarget(t *testing.T) {
	reader := &fakeRowReader{
		QueryRowsFn: func(ctx context.Context, ownerID string) ([]domain.Row, error) {
			return nil, nil
		},
	}
	target := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	uc := NewGetReportUseCase(reader, target, fixedClock("2025-06-10T00:00:00Z"))

	out, err := uc.Execute(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.DaysRemaining != -3 {
		t.Fatalf("days remaining = %d, want -3", out.DaysRemaining)
	}
}

func TestGetReport_MissingOwner(t *testing.T) {
	uc := NewGetReportUseCase(&fakeRowReader{}, time.Time{}, nil)
	if _, err := uc.Execute(context.Background(), ""); !errors.Is(err, ErrMissingOwner) {
		t.Fatalf("expected ErrMissingOwner, got %v", err)
	}
	if _, err := uc.Rows(context.Background(), ""); !errors.Is(err, ErrMissingOwner) {
		t.Fatalf("expected ErrMissingOwner from Rows, got %v", err)
	}
}

func TestGetReport_ReaderErrorPropagates(t *testing.T) {
	boom := errors.New("db down")
	reader := &fakeRowReader{
		QueryRowsFn: func(ctx context.Context, ownerID string) ([]domain.Row, error) {
			return nil, boom
		},
	}
	uc := NewGetReportUseCase(reader, time.Time{}, nil)
	if _, err := uc.Execute(context.Background(), "user-1"); !errors.Is(err, boom) {
		t.Fatalf("expected reader error, got %v", err)
	}
}

func TestGetReport_Rows(t *testing.T) {
	reader := &fakeRowReader{
		QueryTableRowsFn: func(ctx context.Context, ownerID string) ([]domain.TableRow, error) {
			return []domain.TableRow{{EmployeeNo: "1001", Name: "Ada", Ratio: "10%"}}, nil
		},
	}
	uc := NewGetReportUseCase(reader, time.Time{}, nil)

	rows, err := uc.Rows(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].EmployeeNo != "1001" {
		t.Fatalf("rows = %v", rows)
	}
}
