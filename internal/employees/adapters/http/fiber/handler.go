package fiber

import (
	"context"
	"errors"
	"net/http"

	"personnel-metrics-service/internal/auth"
	"personnel-metrics-service/internal/employees/core/domain"
	"personnel-metrics-service/internal/employees/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type EmployeeUseCase interface {
	Create(ctx context.Context, in usecase.CreateEmployeeInput) (*domain.Employee, error)
	List(ctx context.Context, ownerID string) ([]domain.Employee, error)
	Delete(ctx context.Context, in usecase.DeleteEmployeeInput) error
}

type EmployeeHandler struct {
	uc EmployeeUseCase
}

func NewEmployeeHandler(uc EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// CreateEmployee godoc
// @Summary Create an employee master record
// @Tags Employees
// @Accept json
// @Produce json
// @Param request body CreateEmployeeRequest true "Employee payload"
// @Success 201 {object} EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	ownerID, ok := auth.UserID(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	out, err := h.uc.Create(c.UserContext(), usecase.CreateEmployeeInput{
		OwnerID:    ownerID,
		EmployeeNo: req.EmployeeNo,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Department: req.Department,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidEmployee):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_employee",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusCreated).JSON(toEmployeeResponse(out))
}

// ListEmployees godoc
// @Summary List the caller's employees
// @Tags Employees
// @Produce json
// @Success 200 {object} ListEmployeesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *fiber.Ctx) error {
	ownerID, ok := auth.UserID(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	list, err := h.uc.List(c.UserContext(), ownerID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	resp := ListEmployeesResponse{
		Employees: make([]EmployeeResponse, 0, len(list)),
	}
	for i := range list {
		resp.Employees = append(resp.Employees, *toEmployeeResponse(&list[i]))
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// DeleteEmployee godoc
// @Summary Delete an employee master record
// @Description Related target-ratio and daily-increase records are NOT deleted and become orphaned.
// @Tags Employees
// @Produce json
// @Param id path string true "Employee id"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *fiber.Ctx) error {
	ownerID, ok := auth.UserID(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	err := h.uc.Delete(c.UserContext(), usecase.DeleteEmployeeInput{
		OwnerID: ownerID,
		ID:      c.Params("id"),
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmployeeNotFound):
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Error: "employee_not_found",
			})
		case errors.Is(err, usecase.ErrInvalidEmployee):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error: "invalid_employee",
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.SendStatus(http.StatusNoContent)
}

func toEmployeeResponse(e *domain.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:         e.ID,
		EmployeeNo: e.EmployeeNo,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Department: e.Department,
		CreatedAt:  e.CreatedAt.Unix(),
		UpdatedAt:  e.UpdatedAt.Unix(),
	}
}
