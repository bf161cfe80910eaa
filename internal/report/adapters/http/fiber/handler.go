package fiber

import (
	"context"
	"net/http"

	"personnel-metrics-service/internal/auth"
	"personnel-metrics-service/internal/report/core/domain"
	"personnel-metrics-service/internal/report/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type ReportUseCase interface {
	Execute(ctx context.Context, ownerID string) (*usecase.ReportOutput, error)
	Rows(ctx context.Context, ownerID string) ([]domain.TableRow, error)
}

type ReportHandler struct {
	uc ReportUseCase
}

func NewReportHandler(uc ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// GetDashboard godoc
// @Summary Full aggregated dashboard for the caller's data
// @Tags Reports
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *ReportHandler) GetDashboard(c *fiber.Ctx) error {
	out, err := h.execute(c)
	if out == nil {
		return err
	}

	r := out.Report
	resp := DashboardResponse{
		DateAxis:         r.DateAxis,
		Series:           toSeriesDTOs(r.Series),
		Deltas:           toDeltaDTOs(r.Deltas),
		Leaderboard:      toDeltaDTOs(r.Leaderboard),
		MeanDelta:        r.MeanDelta,
		MeanLastValue:    r.MeanLastValue,
		AboveAverage:     toDeltaDTOs(r.AboveAverage),
		BelowAverage:     toDeltaDTOs(r.BelowAverage),
		EqualAverage:     toDeltaDTOs(r.EqualAverage),
		LastAboveAverage: toLastValueDTOs(r.LastAboveAverage),
		LastBelowAverage: toLastValueDTOs(r.LastBelowAverage),
		EmployeeCount:    r.EmployeeCount,
		DayCount:         r.DayCount,
		DaysRemaining:    out.DaysRemaining,
	}
	if r.Leader != nil {
		dto := toDeltaDTO(*r.Leader)
		resp.Leader = &dto
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetTargetRatioReport godoc
// @Summary Target-ratio chart projection
// @Tags Reports
// @Produce json
// @Success 200 {object} TargetRatioReportResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/target-ratios [get]
func (h *ReportHandler) GetTargetRatioReport(c *fiber.Ctx) error {
	out, err := h.execute(c)
	if out == nil {
		return err
	}

	r := out.Report
	return c.Status(http.StatusOK).JSON(TargetRatioReportResponse{
		DateAxis:         r.DateAxis,
		Series:           toSeriesDTOs(r.Series),
		MeanLastValue:    r.MeanLastValue,
		LastAboveAverage: toLastValueDTOs(r.LastAboveAverage),
		LastBelowAverage: toLastValueDTOs(r.LastBelowAverage),
		DaysRemaining:    clampDays(out.DaysRemaining),
	})
}

// GetDailyDeltaReport godoc
// @Summary Day-over-day delta projection with the leaderboard
// @Tags Reports
// @Produce json
// @Success 200 {object} DailyDeltaReportResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/daily-deltas [get]
func (h *ReportHandler) GetDailyDeltaReport(c *fiber.Ctx) error {
	out, err := h.execute(c)
	if out == nil {
		return err
	}

	r := out.Report
	resp := DailyDeltaReportResponse{
		Deltas:        toDeltaDTOs(r.Deltas),
		Leaderboard:   toDeltaDTOs(r.Leaderboard),
		MeanDelta:     r.MeanDelta,
		AboveAverage:  toDeltaDTOs(r.AboveAverage),
		BelowAverage:  toDeltaDTOs(r.BelowAverage),
		EqualAverage:  toDeltaDTOs(r.EqualAverage),
		DaysRemaining: clampDays(out.DaysRemaining),
	}
	if r.Leader != nil {
		dto := toDeltaDTO(*r.Leader)
		resp.Leader = &dto
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetRows godoc
// @Summary Flat data-table rows (no aggregation)
// @Tags Reports
// @Produce json
// @Success 200 {object} RowsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /rows [get]
func (h *ReportHandler) GetRows(c *fiber.Ctx) error {
	ownerID, ok := auth.UserID(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	rows, err := h.uc.Rows(c.UserContext(), ownerID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Error: "internal_server_error"})
	}

	resp := RowsResponse{Rows: make([]TableRowDTO, 0, len(rows))}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, TableRowDTO{
			EmployeeID:   row.EmployeeID,
			EmployeeNo:   row.EmployeeNo,
			ActivityType: row.ActivityType,
			Name:         row.Name,
			Kind:         row.Kind,
			Total:        row.Total,
			Target:       row.Target,
			Ratio:        row.Ratio,
			Date:         row.Date,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// execute resolves the caller and runs the report use case. On failure it
// writes the error response itself and returns a nil output; callers must
// bail out when out is nil.
func (h *ReportHandler) execute(c *fiber.Ctx) (*usecase.ReportOutput, error) {
	ownerID, ok := auth.UserID(c)
	if !ok {
		return nil, c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	out, err := h.uc.Execute(c.UserContext(), ownerID)
	if err != nil {
		return nil, c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Error: "internal_server_error"})
	}

	return out, nil
}

// clampDays keeps the countdown at zero after the target date passes.
func clampDays(days int) int {
	if days < 0 {
		return 0
	}
	return days
}

func toSeriesDTOs(in []domain.EmployeeSeries) []EmployeeSeriesDTO {
	out := make([]EmployeeSeriesDTO, 0, len(in))
	for _, s := range in {
		out = append(out, EmployeeSeriesDTO{EmployeeNo: s.EmployeeNo, Name: s.Name, Values: s.Values})
	}
	return out
}

func toDeltaDTO(in domain.DeltaRecord) DeltaRecordDTO {
	return DeltaRecordDTO{
		EmployeeNo: in.EmployeeNo,
		Name:       in.Name,
		Last:       in.Last,
		Previous:   in.Previous,
		Delta:      in.Delta,
	}
}

func toDeltaDTOs(in []domain.DeltaRecord) []DeltaRecordDTO {
	out := make([]DeltaRecordDTO, 0, len(in))
	for _, d := range in {
		out = append(out, toDeltaDTO(d))
	}
	return out
}

func toLastValueDTOs(in []domain.LastValueEntry) []LastValueEntryDTO {
	out := make([]LastValueEntryDTO, 0, len(in))
	for _, e := range in {
		out = append(out, LastValueEntryDTO{EmployeeNo: e.EmployeeNo, Name: e.Name, Value: e.Value})
	}
	return out
}
