package fiber

import (
	"context"
	"errors"
	"net/http"

	"personnel-metrics-service/internal/auth"
	"personnel-metrics-service/internal/upload/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type BulkUploadUseCase interface {
	Execute(ctx context.Context, in usecase.BulkUploadInput) (*usecase.BulkUploadResult, error)
}

type UploadHandler struct {
	uc BulkUploadUseCase
}

func NewUploadHandler(uc BulkUploadUseCase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// BulkUpload godoc
// @Summary Import a pasted tab-separated sheet of employees and records
// @Description Each line is "no, activityType, fullName, type, total, target, ratio" separated by tabs. The last word of fullName becomes the surname, everything before it the first name ("Ayse Nur Demir" -> "Ayse Nur" + "Demir"). Lines with fewer than four fields, a missing number or a single-word name are skipped and counted.
// @Tags Upload
// @Accept json
// @Produce json
// @Param request body BulkUploadRequest true "Upload payload"
// @Success 200 {object} BulkUploadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /upload/bulk [post]
func (h *UploadHandler) BulkUpload(c *fiber.Ctx) error {
	ownerID, ok := auth.UserID(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req BulkUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid_json"})
	}

	result, err := h.uc.Execute(c.UserContext(), usecase.BulkUploadInput{
		OwnerID: ownerID,
		Date:    req.Date,
		Text:    req.Text,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDate), errors.Is(err, usecase.ErrEmptyUpload):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_upload",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(BulkUploadResponse{
		EmployeesCreated: result.EmployeesCreated,
		RatiosCreated:    result.RatiosCreated,
		IncreasesCreated: result.IncreasesCreated,
		LinesSkipped:     result.LinesSkipped,
	})
}
