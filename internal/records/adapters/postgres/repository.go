package postgres

import (
	"context"
	"time"

	"personnel-metrics-service/internal/records/core/domain"
	"personnel-metrics-service/internal/records/core/ports"

	"github.com/google/uuid"
)

// The record tables carry no foreign key to employees: deleting an
// employee must be able to leave its records behind (orphaning is the
// documented behavior). Employee existence is therefore checked with an
// explicit SELECT before every insert.
const employeeExistsSQL = `
SELECT EXISTS (
    SELECT 1 FROM employees WHERE id = $1 AND owner_id = $2
);
`

func checkEmployeeExists(ctx context.Context, db DB, employeeID, ownerID string) error {
	rows, err := db.QueryContext(ctx, employeeExistsSQL, employeeID, ownerID)
	if err != nil {
		return err
	}
	defer rows.Close()

	exists := false
	if rows.Next() {
		if err := rows.Scan(&exists); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if !exists {
		return ports.ErrUnknownEmployee
	}
	return nil
}

type TargetRatioRepository struct {
	db DB
}

func NewTargetRatioRepository(db DB) *TargetRatioRepository {
	return &TargetRatioRepository{db: db}
}

var _ ports.TargetRatioRepositoryPort = (*TargetRatioRepository)(nil)

const insertTargetRatioSQL = `
INSERT INTO target_ratios (
    id,
    employee_id,
    ratio,
    target_value,
    recorded_on,
    owner_id,
    created_at,
    updated_at
) VALUES (
    $1, $2, $3, $4,
    $5, $6, $7, $8
);
`

func (r *TargetRatioRepository) InsertTargetRatio(ctx context.Context, rec *domain.TargetRatio) error {
	if err := checkEmployeeExists(ctx, r.db, rec.EmployeeID, rec.OwnerID); err != nil {
		return err
	}

	now := time.Now().UTC()
	rec.ID = uuid.NewString()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, insertTargetRatioSQL,
		rec.ID,
		rec.EmployeeID,
		rec.Ratio,
		rec.TargetValue,
		rec.RecordedOn,
		rec.OwnerID,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

const listTargetRatiosSQL = `
SELECT
    id,
    employee_id,
    ratio,
    target_value,
    recorded_on,
    owner_id,
    created_at,
    updated_at
FROM target_ratios
WHERE owner_id = $1
ORDER BY recorded_on, created_at;
`

func (r *TargetRatioRepository) ListTargetRatios(ctx context.Context, ownerID string) ([]domain.TargetRatio, error) {
	rows, err := r.db.QueryContext(ctx, listTargetRatiosSQL, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TargetRatio
	for rows.Next() {
		var rec domain.TargetRatio
		var recordedOn time.Time
		if err := rows.Scan(
			&rec.ID,
			&rec.EmployeeID,
			&rec.Ratio,
			&rec.TargetValue,
			&recordedOn,
			&rec.OwnerID,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		rec.RecordedOn = recordedOn.Format("2006-01-02")
		out = append(out, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

const deleteTargetRatioSQL = `
DELETE FROM target_ratios
WHERE id = $1 AND owner_id = $2;
`

func (r *TargetRatioRepository) DeleteTargetRatio(ctx context.Context, id, ownerID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteTargetRatioSQL, id, ownerID)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

type DailyIncreaseRepository struct {
	db DB
}

func NewDailyIncreaseRepository(db DB) *DailyIncreaseRepository {
	return &DailyIncreaseRepository{db: db}
}

var _ ports.DailyIncreaseRepositoryPort = (*DailyIncreaseRepository)(nil)

const insertDailyIncreaseSQL = `
INSERT INTO daily_increases (
    id,
    employee_id,
    amount,
    recorded_on,
    owner_id,
    created_at,
    updated_at
) VALUES (
    $1, $2, $3, $4,
    $5, $6, $7
);
`

func (r *DailyIncreaseRepository) InsertDailyIncrease(ctx context.Context, rec *domain.DailyIncrease) error {
	if err := checkEmployeeExists(ctx, r.db, rec.EmployeeID, rec.OwnerID); err != nil {
		return err
	}

	now := time.Now().UTC()
	rec.ID = uuid.NewString()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, insertDailyIncreaseSQL,
		rec.ID,
		rec.EmployeeID,
		rec.Amount,
		rec.RecordedOn,
		rec.OwnerID,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

const listDailyIncreasesSQL = `
SELECT
    id,
    employee_id,
    amount,
    recorded_on,
    owner_id,
    created_at,
    updated_at
FROM daily_increases
WHERE owner_id = $1
ORDER BY recorded_on, created_at;
`

func (r *DailyIncreaseRepository) ListDailyIncreases(ctx context.Context, ownerID string) ([]domain.DailyIncrease, error) {
	rows, err := r.db.QueryContext(ctx, listDailyIncreasesSQL, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DailyIncrease
	for rows.Next() {
		var rec domain.DailyIncrease
		var recordedOn time.Time
		if err := rows.Scan(
			&rec.ID,
			&rec.EmployeeID,
			&rec.Amount,
			&recordedOn,
			&rec.OwnerID,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		rec.RecordedOn = recordedOn.Format("2006-01-02")
		out = append(out, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

const deleteDailyIncreaseSQL = `
DELETE FROM daily_increases
WHERE id = $1 AND owner_id = $2;
`

func (r *DailyIncreaseRepository) DeleteDailyIncrease(ctx context.Context, id, ownerID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteDailyIncreaseSQL, id, ownerID)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}
