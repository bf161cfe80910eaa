package postgres

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"personnel-metrics-service/internal/report/core/domain"
	"personnel-metrics-service/internal/report/core/ports"
)

type RowReader struct {
	db DB
}

func NewRowReader(db DB) *RowReader {
	return &RowReader{db: db}
}

var _ ports.RowReaderPort = (*RowReader)(nil)

// LEFT JOIN: calisanlar kayitsiz olsa bile bir satir doner (bos tarih),
// boylece seri eksen uzunlugunda bos degerlerle kurulur.
const queryRowsSQL = `
SELECT
    e.employee_no,
    e.first_name,
    e.last_name,
    tr.recorded_on,
    tr.ratio
FROM employees e
LEFT JOIN target_ratios tr
    ON tr.employee_id = e.id AND tr.owner_id = e.owner_id
WHERE e.owner_id = $1
ORDER BY e.created_at, tr.recorded_on, tr.created_at;
`

func (r *RowReader) QueryRows(ctx context.Context, ownerID string) ([]domain.Row, error) {
	rows, err := r.db.QueryContext(ctx, queryRowsSQL, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Row
	for rows.Next() {
		var (
			employeeNo string
			firstName  string
			lastName   string
			recordedOn sql.NullTime
			ratio      sql.NullFloat64
		)
		if err := rows.Scan(&employeeNo, &firstName, &lastName, &recordedOn, &ratio); err != nil {
			return nil, err
		}

		row := domain.Row{
			EmployeeNo: employeeNo,
			Name:       fullName(firstName, lastName),
		}
		if recordedOn.Valid {
			row.Date = recordedOn.Time.Format("2006-01-02")
		}
		if ratio.Valid {
			row.Ratio = formatRatio(ratio.Float64)
		}

		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

const queryTableRowsSQL = `
SELECT
    e.id,
    e.employee_no,
    e.first_name,
    e.last_name,
    e.department,
    tr.recorded_on,
    tr.ratio,
    tr.target_value,
    di.amount
FROM employees e
LEFT JOIN target_ratios tr
    ON tr.employee_id = e.id AND tr.owner_id = e.owner_id
LEFT JOIN daily_increases di
    ON di.employee_id = e.id
   AND di.owner_id = e.owner_id
   AND di.recorded_on = tr.recorded_on
WHERE e.owner_id = $1
ORDER BY e.created_at, tr.recorded_on, tr.created_at;
`

func (r *RowReader) QueryTableRows(ctx context.Context, ownerID string) ([]domain.TableRow, error) {
	rows, err := r.db.QueryContext(ctx, queryTableRowsSQL, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TableRow
	for rows.Next() {
		var (
			id          string
			employeeNo  string
			firstName   string
			lastName    string
			department  string
			recordedOn  sql.NullTime
			ratio       sql.NullFloat64
			targetValue sql.NullFloat64
			amount      sql.NullFloat64
		)
		if err := rows.Scan(&id, &employeeNo, &firstName, &lastName, &department,
			&recordedOn, &ratio, &targetValue, &amount); err != nil {
			return nil, err
		}

		activityType, kind := splitDepartment(department)

		row := domain.TableRow{
			EmployeeID:   id,
			EmployeeNo:   employeeNo,
			ActivityType: activityType,
			Name:         fullName(firstName, lastName),
			Kind:         kind,
			Total:        "0",
			Target:       "0",
			Ratio:        "0%",
		}
		if recordedOn.Valid {
			row.Date = recordedOn.Time.Format("2006-01-02")
		}
		if ratio.Valid {
			row.Ratio = formatRatio(ratio.Float64)
		}
		if targetValue.Valid {
			row.Target = formatNumber(targetValue.Float64)
		}
		if amount.Valid {
			row.Total = formatNumber(amount.Float64)
		}

		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func fullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

// splitDepartment maps "SATIS - A" to ("SATIS", "A"). A department with
// no separator keeps everything in the activity type.
func splitDepartment(department string) (activityType, kind string) {
	parts := strings.SplitN(department, " - ", 2)
	activityType = parts[0]
	if len(parts) == 2 {
		kind = parts[1]
	}
	return activityType, kind
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatRatio(v float64) string {
	return formatNumber(v) + "%"
}
