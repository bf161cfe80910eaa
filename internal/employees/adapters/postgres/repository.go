package postgres

import (
	"context"
	"time"

	"personnel-metrics-service/internal/employees/core/domain"
	"personnel-metrics-service/internal/employees/core/ports"

	"github.com/google/uuid"
)

type EmployeeRepository struct {
	db DB
}

func NewEmployeeRepository(db DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

var _ ports.EmployeeRepositoryPort = (*EmployeeRepository)(nil)

const insertEmployeeSQL = `
INSERT INTO employees (
    id,
    employee_no,
    first_name,
    last_name,
    department,
    owner_id,
    created_at,
    updated_at
) VALUES (
    $1, $2, $3, $4,
    $5, $6, $7, $8
);
`

func (r *EmployeeRepository) InsertEmployee(ctx context.Context, e *domain.Employee) error {
	now := time.Now().UTC()
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, insertEmployeeSQL,
		e.ID,
		e.EmployeeNo,
		e.FirstName,
		e.LastName,
		e.Department,
		e.OwnerID,
		e.CreatedAt,
		e.UpdatedAt,
	)
	return err
}

const listEmployeesSQL = `
SELECT
    id,
    employee_no,
    first_name,
    last_name,
    department,
    owner_id,
    created_at,
    updated_at
FROM employees
WHERE owner_id = $1
ORDER BY created_at;
`

func (r *EmployeeRepository) ListEmployees(ctx context.Context, ownerID string) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, listEmployeesSQL, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(
			&e.ID,
			&e.EmployeeNo,
			&e.FirstName,
			&e.LastName,
			&e.Department,
			&e.OwnerID,
			&e.CreatedAt,
			&e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// deleteEmployeeSQL removes only the master record; target_ratios and
// daily_increases rows referencing it stay behind (no cascade).
const deleteEmployeeSQL = `
DELETE FROM employees
WHERE id = $1 AND owner_id = $2;
`

func (r *EmployeeRepository) DeleteEmployee(ctx context.Context, id, ownerID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteEmployeeSQL, id, ownerID)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}
