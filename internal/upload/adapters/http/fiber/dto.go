package fiber

// BulkUploadRequest carries a pasted sheet: the date every record lands on
// and the raw tab-separated text, one employee per line.
// @Description Bulk upload DTO
type BulkUploadRequest struct {
	Date string `json:"date" example:"2025-01-02"`
	Text string `json:"text"`
}

type BulkUploadResponse struct {
	EmployeesCreated int `json:"employees_created"`
	RatiosCreated    int `json:"ratios_created"`
	IncreasesCreated int `json:"increases_created"`
	LinesSkipped     int `json:"lines_skipped"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_upload"`
	Message string `json:"message,omitempty"`
}
