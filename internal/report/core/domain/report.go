package domain

// Row is the flat join of employee master data with a target-ratio record:
// one row per employee per date that has data. Rows are not required to be
// sorted or deduplicated by the producer.
type Row struct {
	EmployeeNo string
	Name       string
	Date       string // YYYY-MM-DD, empty when the employee has no dated records
	Ratio      string // textual percent ("12,5%"), empty when absent
}

// EmployeeSeries holds one employee's ratio values indexed by the shared
// date axis. len(Values) always equals the axis length; "" marks a date
// with no data for this employee.
type EmployeeSeries struct {
	EmployeeNo string
	Name       string
	Values     []string
}

// DeltaRecord is the day-over-day change between an employee's two most
// recent axis slots. Absent slots parse to 0, so an employee with a single
// day of data gets delta = last - 0, which is intended.
type DeltaRecord struct {
	EmployeeNo string
	Name       string
	Last       string
	Previous   string
	Delta      float64
}

// LastValueEntry is an employee's most recent parsed ratio value.
type LastValueEntry struct {
	EmployeeNo string
	Name       string
	Value      float64
}

// Report is the aggregated view model the three dashboard projections
// are rendered from. Recomputed from scratch on every request; nothing
// is cached.
type Report struct {
	DateAxis []string

	Series []EmployeeSeries // first-appearance order
	Deltas []DeltaRecord    // first-appearance order

	Leaderboard []DeltaRecord // descending delta, ties keep input order
	Leader      *DeltaRecord  // nil when there are no employees

	MeanDelta     float64
	MeanLastValue float64

	// Delta partition against MeanDelta (strict comparison, no epsilon).
	AboveAverage []DeltaRecord
	BelowAverage []DeltaRecord
	EqualAverage []DeltaRecord

	// Last-value partition against MeanLastValue.
	LastAboveAverage []LastValueEntry
	LastBelowAverage []LastValueEntry

	EmployeeCount int
	DayCount      int
}

// TableRow is the joined data-table view, one row per employee per
// recorded date. Total/Target/Ratio carry display defaults when absent.
type TableRow struct {
	EmployeeID   string
	EmployeeNo   string
	ActivityType string
	Name         string
	Kind         string
	Total        string // daily increase amount, "0" when absent
	Target       string // target value, "0" when absent
	Ratio        string // "X%" text, "0%" when absent
	Date         string // YYYY-MM-DD, "" when absent
}
