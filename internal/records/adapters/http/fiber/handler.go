package fiber

import (
	"context"
	"errors"
	"net/http"

	"personnel-metrics-service/internal/auth"
	"personnel-metrics-service/internal/records/core/domain"
	"personnel-metrics-service/internal/records/core/ports"
	"personnel-metrics-service/internal/records/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type RecordUseCase interface {
	CreateTargetRatio(ctx context.Context, in usecase.CreateTargetRatioInput) (*domain.TargetRatio, error)
	ListTargetRatios(ctx context.Context, ownerID string) ([]domain.TargetRatio, error)
	DeleteTargetRatio(ctx context.Context, in usecase.DeleteRecordInput) error

	CreateDailyIncrease(ctx context.Context, in usecase.CreateDailyIncreaseInput) (*domain.DailyIncrease, error)
	ListDailyIncreases(ctx context.Context, ownerID string) ([]domain.DailyIncrease, error)
	DeleteDailyIncrease(ctx context.Context, in usecase.DeleteRecordInput) error
}

type RecordHandler struct {
	uc RecordUseCase
}

func NewRecordHandler(uc RecordUseCase) *RecordHandler {
	return &RecordHandler{uc: uc}
}

// CreateTargetRatio godoc
// @Summary Record a target-ratio percentage for an employee on a date
// @Tags Records
// @Accept json
// @Produce json
// @Param request body CreateTargetRatioRequest true "Target-ratio payload"
// @Success 201 {object} TargetRatioResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /target-ratios [post]
func (h *RecordHandler) CreateTargetRatio(c *fiber.Ctx) error {
	ownerID, ok := auth.UserID(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req CreateTargetRatioRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid_json"})
	}

	out, err := h.uc.CreateTargetRatio(c.UserContext(), usecase.CreateTargetRatioInput{
		OwnerID:     ownerID,
		EmployeeID:  req.EmployeeID,
		Ratio:       req.Ratio,
		TargetValue: req.TargetValue,
		RecordedOn:  req.RecordedOn,
	})
	if err != nil {
		return recordError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(TargetRatioResponse{
		ID:          out.ID,
		EmployeeID:  out.EmployeeID,
		Ratio:       out.Ratio,
		TargetValue: out.TargetValue,
		RecordedOn:  out.RecordedOn,
		CreatedAt:   out.CreatedAt.Unix(),
	})
}

// ListTargetRatios godoc
// @Summary List the caller's target-ratio records
// @Tags Records
// @Produce json
// @Success 200 {object} ListTargetRatiosResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /target-ratios [get]
func (h *RecordHandler) ListTargetRatios(c *fiber.Ctx) error {
	ownerID, ok := auth.UserID(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	list, err := h.uc.ListTargetRatios(c.UserContext(), ownerID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Error: "internal_server_error"})
	}

	resp := ListTargetRatiosResponse{Records: make([]TargetRatioResponse, 0, len(list))}
	for _, rec := range list {
		resp.Records = append(resp.Records, TargetRatioResponse{
			ID:          rec.ID,
			EmployeeID:  rec.EmployeeID,
			Ratio:       rec.Ratio,
			TargetValue: rec.TargetValue,
			RecordedOn:  rec.RecordedOn,
			CreatedAt:   rec.CreatedAt.Unix(),
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// DeleteTargetRatio godoc
// @Summary Delete a target-ratio record
// @Tags Records
// @Produce json
// @Param id path string true "Record id"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /target-ratios/{id} [delete]
func (h *RecordHandler) DeleteTargetRatio(c *fiber.Ctx) error {
	ownerID, ok := auth.UserID(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	err := h.uc.DeleteTargetRatio(c.UserContext(), usecase.DeleteRecordInput{
		OwnerID: ownerID,
		ID:      c.Params("id"),
	})
	if err != nil {
		return recordError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// CreateDailyIncrease godoc
// @Summary Record a daily increase for an employee on a date
// @Tags Records
// @Accept json
// @Produce json
// @Param request body CreateDailyIncreaseRequest true "Daily-increase payload"
// @Success 201 {object} DailyIncreaseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /daily-increases [post]
func (h *RecordHandler) CreateDailyIncrease(c *fiber.Ctx) error {
	ownerID, ok := auth.UserID(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req CreateDailyIncreaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid_json"})
	}

	out, err := h.uc.CreateDailyIncrease(c.UserContext(), usecase.CreateDailyIncreaseInput{
		OwnerID:    ownerID,
		EmployeeID: req.EmployeeID,
		Amount:     req.Amount,
		RecordedOn: req.RecordedOn,
	})
	if err != nil {
		return recordError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(DailyIncreaseResponse{
		ID:         out.ID,
		EmployeeID: out.EmployeeID,
		Amount:     out.Amount,
		RecordedOn: out.RecordedOn,
		CreatedAt:  out.CreatedAt.Unix(),
	})
}

// ListDailyIncreases godoc
// @Summary List the caller's daily-increase records
// @Tags Records
// @Produce json
// @Success 200 {object} ListDailyIncreasesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /daily-increases [get]
func (h *RecordHandler) ListDailyIncreases(c *fiber.Ctx) error {
	ownerID, ok := auth.UserID(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	list, err := h.uc.ListDailyIncreases(c.UserContext(), ownerID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Error: "internal_server_error"})
	}

	resp := ListDailyIncreasesResponse{Records: make([]DailyIncreaseResponse, 0, len(list))}
	for _, rec := range list {
		resp.Records = append(resp.Records, DailyIncreaseResponse{
			ID:         rec.ID,
			EmployeeID: rec.EmployeeID,
			Amount:     rec.Amount,
			RecordedOn: rec.RecordedOn,
			CreatedAt:  rec.CreatedAt.Unix(),
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// DeleteDailyIncrease godoc
// @Summary Delete a daily-increase record
// @Tags Records
// @Produce json
// @Param id path string true "Record id"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /daily-increases/{id} [delete]
func (h *RecordHandler) DeleteDailyIncrease(c *fiber.Ctx) error {
	ownerID, ok := auth.UserID(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	err := h.uc.DeleteDailyIncrease(c.UserContext(), usecase.DeleteRecordInput{
		OwnerID: ownerID,
		ID:      c.Params("id"),
	})
	if err != nil {
		return recordError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

func recordError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecord),
		errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, ports.ErrUnknownEmployee):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_record",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrRecordNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error: "record_not_found",
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
