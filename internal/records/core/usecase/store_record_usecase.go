package usecase

import (
	"context"
	"errors"
	"time"

	"personnel-metrics-service/internal/percent"
	"personnel-metrics-service/internal/records/core/domain"
	"personnel-metrics-service/internal/records/core/ports"
)

var (
	ErrInvalidRecord  = errors.New("invalid record")
	ErrInvalidDate    = errors.New("invalid record date")
	ErrMissingOwner   = errors.New("owner id is required")
	ErrRecordNotFound = errors.New("record not found")
)

type RecordUseCase struct {
	ratios    ports.TargetRatioRepositoryPort
	increases ports.DailyIncreaseRepositoryPort
}

func NewRecordUseCase(ratios ports.TargetRatioRepositoryPort, increases ports.DailyIncreaseRepositoryPort) *RecordUseCase {
	return &RecordUseCase{ratios: ratios, increases: increases}
}

// Textual numeric fields ("12,5%", "150") are accepted as the operator
// types them and run through the shared percent parser; invalid input
// becomes 0 rather than an error.
type CreateTargetRatioInput struct {
	OwnerID     string
	EmployeeID  string
	Ratio       string
	TargetValue string
	RecordedOn  string
}

func (uc *RecordUseCase) CreateTargetRatio(ctx context.Context, in CreateTargetRatioInput) (*domain.TargetRatio, error) {
	if in.OwnerID == "" {
		return nil, ErrMissingOwner
	}
	if in.EmployeeID == "" {
		return nil, ErrInvalidRecord
	}
	if err := validateDate(in.RecordedOn); err != nil {
		return nil, err
	}

	r := &domain.TargetRatio{
		EmployeeID:  in.EmployeeID,
		Ratio:       percent.Parse(in.Ratio),
		TargetValue: percent.Parse(in.TargetValue),
		RecordedOn:  in.RecordedOn,
		OwnerID:     in.OwnerID,
	}

	if err := uc.ratios.InsertTargetRatio(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (uc *RecordUseCase) ListTargetRatios(ctx context.Context, ownerID string) ([]domain.TargetRatio, error) {
	if ownerID == "" {
		return nil, ErrMissingOwner
	}
	return uc.ratios.ListTargetRatios(ctx, ownerID)
}

type DeleteRecordInput struct {
	OwnerID string
	ID      string
}

func (uc *RecordUseCase) DeleteTargetRatio(ctx context.Context, in DeleteRecordInput) error {
	if in.OwnerID == "" {
		return ErrMissingOwner
	}
	if in.ID == "" {
		return ErrInvalidRecord
	}

	found, err := uc.ratios.DeleteTargetRatio(ctx, in.ID, in.OwnerID)
	if err != nil {
		return err
	}
	if !found {
		return ErrRecordNotFound
	}

	return nil
}

type CreateDailyIncreaseInput struct {
	OwnerID    string
	EmployeeID string
	Amount     string
	RecordedOn string
}

func (uc *RecordUseCase) CreateDailyIncrease(ctx context.Context, in CreateDailyIncreaseInput) (*domain.DailyIncrease, error) {
	if in.OwnerID == "" {
		return nil, ErrMissingOwner
	}
	if in.EmployeeID == "" {
		return nil, ErrInvalidRecord
	}
	if err := validateDate(in.RecordedOn); err != nil {
		return nil, err
	}

	r := &domain.DailyIncrease{
		EmployeeID: in.EmployeeID,
		Amount:     percent.Parse(in.Amount),
		RecordedOn: in.RecordedOn,
		OwnerID:    in.OwnerID,
	}

	if err := uc.increases.InsertDailyIncrease(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (uc *RecordUseCase) ListDailyIncreases(ctx context.Context, ownerID string) ([]domain.DailyIncrease, error) {
	if ownerID == "" {
		return nil, ErrMissingOwner
	}
	return uc.increases.ListDailyIncreases(ctx, ownerID)
}

func (uc *RecordUseCase) DeleteDailyIncrease(ctx context.Context, in DeleteRecordInput) error {
	if in.OwnerID == "" {
		return ErrMissingOwner
	}
	if in.ID == "" {
		return ErrInvalidRecord
	}

	found, err := uc.increases.DeleteDailyIncrease(ctx, in.ID, in.OwnerID)
	if err != nil {
		return err
	}
	if !found {
		return ErrRecordNotFound
	}

	return nil
}

// validateDate checks the YYYY-MM-DD shape the date axis relies on.
func validateDate(s string) error {
	if s == "" {
		return ErrInvalidDate
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return ErrInvalidDate
	}
	return nil
}
