package domain

import "time"

// TargetRatio is the "hedef nisbet" record: the percentage an employee
// reached toward their target on a given date.
type TargetRatio struct {
	ID          string
	EmployeeID  string
	Ratio       float64 // percent value, e.g. 12.5
	TargetValue float64
	RecordedOn  string // YYYY-MM-DD
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DailyIncrease is the "günlük artış" record: a numeric increment for an
// employee on a given date. A distinct metric from the target ratio; joined
// by employee+date for display only.
type DailyIncrease struct {
	ID         string
	EmployeeID string
	Amount     float64
	RecordedOn string // YYYY-MM-DD
	OwnerID    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
