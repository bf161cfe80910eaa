package fiber

// EmployeeSeriesDTO is one employee's row of the chart matrix. Values is
// axis-aligned; "" marks a day without data.
type EmployeeSeriesDTO struct {
	EmployeeNo string   `json:"employee_no"`
	Name       string   `json:"name"`
	Values     []string `json:"values"`
}

type DeltaRecordDTO struct {
	EmployeeNo string  `json:"employee_no"`
	Name       string  `json:"name"`
	Last       string  `json:"last"`
	Previous   string  `json:"previous"`
	Delta      float64 `json:"delta"`
}

type LastValueEntryDTO struct {
	EmployeeNo string  `json:"employee_no"`
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
}

// DashboardResponse is the full aggregated view in one payload.
// @Description Aggregated dashboard view model
type DashboardResponse struct {
	DateAxis []string            `json:"date_axis"`
	Series   []EmployeeSeriesDTO `json:"series"`

	Deltas      []DeltaRecordDTO `json:"deltas"`
	Leaderboard []DeltaRecordDTO `json:"leaderboard"`
	Leader      *DeltaRecordDTO  `json:"leader,omitempty"`

	MeanDelta     float64 `json:"mean_delta"`
	MeanLastValue float64 `json:"mean_last_value"`

	AboveAverage []DeltaRecordDTO `json:"above_average"`
	BelowAverage []DeltaRecordDTO `json:"below_average"`
	EqualAverage []DeltaRecordDTO `json:"equal_average"`

	LastAboveAverage []LastValueEntryDTO `json:"last_above_average"`
	LastBelowAverage []LastValueEntryDTO `json:"last_below_average"`

	EmployeeCount int `json:"employee_count"`
	DayCount      int `json:"day_count"`
	// Raw countdown; goes negative once the target date passes.
	DaysRemaining int `json:"days_remaining"`
}

// TargetRatioReportResponse is the chart projection: the date axis, every
// employee's series and the last-value comparison against the mean.
type TargetRatioReportResponse struct {
	DateAxis         []string            `json:"date_axis"`
	Series           []EmployeeSeriesDTO `json:"series"`
	MeanLastValue    float64             `json:"mean_last_value"`
	LastAboveAverage []LastValueEntryDTO `json:"last_above_average"`
	LastBelowAverage []LastValueEntryDTO `json:"last_below_average"`
	DaysRemaining    int                 `json:"days_remaining"`
}

// DailyDeltaReportResponse is the day-over-day projection with the
// leaderboard and the mean-delta partition.
type DailyDeltaReportResponse struct {
	Deltas        []DeltaRecordDTO `json:"deltas"`
	Leaderboard   []DeltaRecordDTO `json:"leaderboard"`
	Leader        *DeltaRecordDTO  `json:"leader,omitempty"`
	MeanDelta     float64          `json:"mean_delta"`
	AboveAverage  []DeltaRecordDTO `json:"above_average"`
	BelowAverage  []DeltaRecordDTO `json:"below_average"`
	EqualAverage  []DeltaRecordDTO `json:"equal_average"`
	DaysRemaining int              `json:"days_remaining"`
}

type TableRowDTO struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeNo   string `json:"employee_no"`
	ActivityType string `json:"activity_type"`
	Name         string `json:"name"`
	Kind         string `json:"kind"`
	Total        string `json:"total"`
	Target       string `json:"target"`
	Ratio        string `json:"ratio"`
	Date         string `json:"date"`
}

type RowsResponse struct {
	Rows []TableRowDTO `json:"rows"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"internal_server_error"`
	Message string `json:"message,omitempty"`
}
