package ports

import (
	"context"

	"personnel-metrics-service/internal/employees/core/domain"
)

type EmployeeRepositoryPort interface {
	// InsertEmployee stores a new employee. The repository assigns the id
	// and timestamps (server-assigned, mirroring the record store contract)
	// and writes them back onto e.
	InsertEmployee(ctx context.Context, e *domain.Employee) error

	// ListEmployees returns the employees owned by ownerID, oldest first.
	ListEmployees(ctx context.Context, ownerID string) ([]domain.Employee, error)

	// DeleteEmployee removes the employee owned by ownerID.
	//   found = false, err = nil -> no such employee for this owner
	// Related target-ratio / daily-increase records are NOT touched; they
	// become orphaned. Delete never cascades.
	DeleteEmployee(ctx context.Context, id, ownerID string) (found bool, err error)
}
