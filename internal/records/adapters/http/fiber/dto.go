package fiber

// CreateTargetRatioRequest represents a target-ratio creation payload.
// Numeric fields are textual as typed by the operator ("12,5%").
// @Description Target-ratio creation DTO
type CreateTargetRatioRequest struct {
	EmployeeID  string `json:"employee_id"`
	Ratio       string `json:"ratio"`
	TargetValue string `json:"target_value"`
	RecordedOn  string `json:"recorded_on"`
}

type TargetRatioResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	Ratio       float64 `json:"ratio"`
	TargetValue float64 `json:"target_value"`
	RecordedOn  string  `json:"recorded_on"`
	CreatedAt   int64   `json:"created_at"`
}

type ListTargetRatiosResponse struct {
	Records []TargetRatioResponse `json:"records"`
}

type CreateDailyIncreaseRequest struct {
	EmployeeID string `json:"employee_id"`
	Amount     string `json:"amount"`
	RecordedOn string `json:"recorded_on"`
}

type DailyIncreaseResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Amount     float64 `json:"amount"`
	RecordedOn string  `json:"recorded_on"`
	CreatedAt  int64   `json:"created_at"`
}

type ListDailyIncreasesResponse struct {
	Records []DailyIncreaseResponse `json:"records"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_record"`
	Message string `json:"message" example:"Record payload is invalid"`
}
