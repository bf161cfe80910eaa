package fiber

// CreateEmployeeRequest represents an employee creation payload
// @Description Employee creation DTO
type CreateEmployeeRequest struct {
	EmployeeNo string `json:"employee_no"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Department string `json:"department"`
}

type EmployeeResponse struct {
	ID         string `json:"id"`
	EmployeeNo string `json:"employee_no"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Department string `json:"department"`
	CreatedAt  int64  `json:"created_at"`
	UpdatedAt  int64  `json:"updated_at"`
}

type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_employee"`
	Message string `json:"message" example:"Employee payload is invalid"`
}
