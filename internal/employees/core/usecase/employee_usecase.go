package usecase

import (
	"context"
	"errors"

	"personnel-metrics-service/internal/employees/core/domain"
	"personnel-metrics-service/internal/employees/core/ports"
)

var (
	ErrInvalidEmployee  = errors.New("invalid employee")
	ErrMissingOwner     = errors.New("owner id is required")
	ErrEmployeeNotFound = errors.New("employee not found")
)

type EmployeeUseCase struct {
	repo ports.EmployeeRepositoryPort
}

func NewEmployeeUseCase(repo ports.EmployeeRepositoryPort) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

type CreateEmployeeInput struct {
	OwnerID    string
	EmployeeNo string
	FirstName  string
	LastName   string
	Department string
}

func (uc *EmployeeUseCase) Create(ctx context.Context, in CreateEmployeeInput) (*domain.Employee, error) {
	if in.OwnerID == "" {
		return nil, ErrMissingOwner
	}
	if in.EmployeeNo == "" || in.FirstName == "" || in.LastName == "" || in.Department == "" {
		return nil, ErrInvalidEmployee
	}

	e := &domain.Employee{
		EmployeeNo: in.EmployeeNo,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Department: in.Department,
		OwnerID:    in.OwnerID,
	}

	if err := uc.repo.InsertEmployee(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (uc *EmployeeUseCase) List(ctx context.Context, ownerID string) ([]domain.Employee, error) {
	if ownerID == "" {
		return nil, ErrMissingOwner
	}
	return uc.repo.ListEmployees(ctx, ownerID)
}

type DeleteEmployeeInput struct {
	OwnerID string
	ID      string
}

// Delete removes the employee master record only. Target-ratio and
// daily-increase records referencing it are left in place (orphaned).
func (uc *EmployeeUseCase) Delete(ctx context.Context, in DeleteEmployeeInput) error {
	if in.OwnerID == "" {
		return ErrMissingOwner
	}
	if in.ID == "" {
		return ErrInvalidEmployee
	}

	found, err := uc.repo.DeleteEmployee(ctx, in.ID, in.OwnerID)
	if err != nil {
		return err
	}
	if !found {
		return ErrEmployeeNotFound
	}

	return nil
}
