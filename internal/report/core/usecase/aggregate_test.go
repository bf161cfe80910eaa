package usecase

import (
	"math"
	"reflect"
	"testing"

	"personnel-metrics-service/internal/report/core/domain"
)

// ------------------------------------------------------------------
// BuildDateAxis
// ------------------------------------------------------------------

func TestBuildDateAxis_SortedAndDeduplicated(t *testing.T) {
	rows := []domain.Row{
		{EmployeeNo: "1", Name: "Ada", Date: "2025-01-02", Ratio: "15%"},
		{EmployeeNo: "1", Name: "Ada", Date: "2025-01-01", Ratio: "10%"},
		{EmployeeNo: "2", Name: "Lin", Date: "2025-01-02", Ratio: "50%"},
		{EmployeeNo: "2", Name: "Lin", Date: "", Ratio: ""},
	}

	got := BuildDateAxis(rows)
	want := []string{"2025-01-01", "2025-01-02"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("axis = %v, want %v", got, want)
	}
}

func TestBuildDateAxis_Empty(t *testing.T) {
	if got := BuildDateAxis(nil); len(got) != 0 {
		t.Fatalf("expected empty axis, got %v", got)
	}
}

// ------------------------------------------------------------------
// BuildSeries
// ------------------------------------------------------------------

func TestBuildSeries_DenseMatrix(t *testing.T) {
	rows := []domain.Row{
		{EmployeeNo: "1001", Name: "Ada", Date: "2025-01-01", Ratio: "10%"},
		{EmployeeNo: "1002", Name: "Lin", Date: "2025-01-02", Ratio: "50%"},
	}
	axis := BuildDateAxis(rows)

	series := BuildSeries(rows, axis)
	if len(series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(series))
	}
	// Her seri eksen uzunlugunda olmali.
	for _, s := range series {
		if len(s.Values) != len(axis) {
			t.Fatalf("series %s has %d values, want %d", s.EmployeeNo, len(s.Values), len(axis))
		}
	}
	if !reflect.DeepEqual(series[0].Values, []string{"10%", ""}) {
		t.Fatalf("Ada values = %v", series[0].Values)
	}
	if !reflect.DeepEqual(series[1].Values, []string{"", "50%"}) {
		t.Fatalf("Lin values = %v", series[1].Values)
	}
}

func TestBuildSeries_LastWriteWinsOnDuplicate(t *testing.T) {
	rows := []domain.Row{
		{EmployeeNo: "1001", Name: "Ada", Date: "2025-01-01", Ratio: "10%"},
		{EmployeeNo: "1001", Name: "Ada", Date: "2025-01-01", Ratio: "12%"},
	}
	series := BuildSeries(rows, BuildDateAxis(rows))
	if series[0].Values[0] != "12%" {
		t.Fatalf("duplicate slot = %q, want last write", series[0].Values[0])
	}
}

func TestBuildSeries_FirstNameWins(t *testing.T) {
	rows := []domain.Row{
		{EmployeeNo: "1001", Name: "Ada Yilmaz", Date: "2025-01-01", Ratio: "10%"},
		{EmployeeNo: "1001", Name: "A. Yilmaz", Date: "2025-01-02", Ratio: "15%"},
	}
	series := BuildSeries(rows, BuildDateAxis(rows))
	if len(series) != 1 {
		t.Fatalf("expected single series, got %d", len(series))
	}
	if series[0].Name != "Ada Yilmaz" {
		t.Fatalf("name = %q, want first-seen name", series[0].Name)
	}
}

func TestBuildSeries_UnknownDateIgnored(t *testing.T) {
	axis := []string{"2025-01-01"}
	rows := []domain.Row{
		{EmployeeNo: "1001", Name: "Ada", Date: "2025-02-09", Ratio: "99%"},
	}
	series := BuildSeries(rows, axis)
	if len(series) != 1 || series[0].Values[0] != "" {
		t.Fatalf("row with off-axis date should leave slots empty, got %v", series)
	}
}

// ------------------------------------------------------------------
// BuildReport
// ------------------------------------------------------------------

func TestBuildReport_EndToEnd(t *testing.T) {
	rows := []domain.Row{
		{EmployeeNo: "1001", Name: "Ada", Date: "2025-01-01", Ratio: "10%"},
		{EmployeeNo: "1001", Name: "Ada", Date: "2025-01-02", Ratio: "15%"},
		{EmployeeNo: "1002", Name: "Lin", Date: "2025-01-01", Ratio: "30%"},
		{EmployeeNo: "1002", Name: "Lin", Date: "2025-01-02", Ratio: "50%"},
	}

	report := BuildReport(rows)

	if !reflect.DeepEqual(report.DateAxis, []string{"2025-01-01", "2025-01-02"}) {
		t.Fatalf("axis = %v", report.DateAxis)
	}
	if report.EmployeeCount != 2 || report.DayCount != 2 {
		t.Fatalf("counts = %d employees, %d days", report.EmployeeCount, report.DayCount)
	}

	if report.Deltas[0].Delta != 5 {
		t.Fatalf("Ada delta = %v, want 5", report.Deltas[0].Delta)
	}
	if report.Deltas[1].Delta != 20 {
		t.Fatalf("Lin delta = %v, want 20", report.Deltas[1].Delta)
	}
	if report.MeanDelta != 12.5 {
		t.Fatalf("mean delta = %v, want 12.5", report.MeanDelta)
	}
	if report.MeanLastValue != 32.5 {
		t.Fatalf("mean last value = %v, want 32.5", report.MeanLastValue)
	}

	if report.Leaderboard[0].EmployeeNo != "1002" || report.Leaderboard[1].EmployeeNo != "1001" {
		t.Fatalf("leaderboard order wrong: %v", report.Leaderboard)
	}
	if report.Leader == nil || report.Leader.EmployeeNo != "1002" {
		t.Fatalf("leader = %v, want Lin", report.Leader)
	}

	if len(report.AboveAverage) != 1 || report.AboveAverage[0].EmployeeNo != "1002" {
		t.Fatalf("above-average partition = %v", report.AboveAverage)
	}
	if len(report.BelowAverage) != 1 || report.BelowAverage[0].EmployeeNo != "1001" {
		t.Fatalf("below-average partition = %v", report.BelowAverage)
	}
	if len(report.EqualAverage) != 0 {
		t.Fatalf("equal partition should be empty, got %v", report.EqualAverage)
	}
}

func TestBuildReport_SingleDayDeltaAgainstZero(t *testing.T) {
	rows := []domain.Row{
		{EmployeeNo: "1001", Name: "Ada", Date: "2025-01-01", Ratio: "40%"},
	}
	report := BuildReport(rows)
	if report.Deltas[0].Delta != 40 {
		t.Fatalf("single-day delta = %v, want 40", report.Deltas[0].Delta)
	}
}

func TestBuildReport_EqualDeltasLandInEqualPartition(t *testing.T) {
	rows := []domain.Row{
		{EmployeeNo: "1", Name: "Ada", Date: "2025-01-01", Ratio: "10%"},
		{EmployeeNo: "1", Name: "Ada", Date: "2025-01-02", Ratio: "20%"},
		{EmployeeNo: "2", Name: "Lin", Date: "2025-01-01", Ratio: "30%"},
		{EmployeeNo: "2", Name: "Lin", Date: "2025-01-02", Ratio: "40%"},
	}
	report := BuildReport(rows)

	if len(report.EqualAverage) != 2 {
		t.Fatalf("expected both employees in equal partition, got %v", report.EqualAverage)
	}
	if len(report.AboveAverage) != 0 || len(report.BelowAverage) != 0 {
		t.Fatalf("above/below should be empty on uniform deltas")
	}
	// Esit deltalarda siralama girdi sirasini korur.
	if report.Leaderboard[0].EmployeeNo != "1" || report.Leaderboard[1].EmployeeNo != "2" {
		t.Fatalf("tied leaderboard must keep input order, got %v", report.Leaderboard)
	}
}

func TestBuildReport_NonFiniteRatioTextCountsAsZero(t *testing.T) {
	rows := []domain.Row{
		{EmployeeNo: "1", Name: "Ada", Date: "2025-01-01", Ratio: "NaN"},
		{EmployeeNo: "2", Name: "Lin", Date: "2025-01-01", Ratio: "10%"},
	}
	report := BuildReport(rows)

	// "NaN" gecersiz girdi sayilir: ortalama sonlu kalir.
	if math.IsNaN(report.MeanDelta) || math.IsInf(report.MeanDelta, 0) {
		t.Fatalf("mean delta must stay finite, got %v", report.MeanDelta)
	}
	if report.MeanDelta != 5 {
		t.Fatalf("mean delta = %v, want 5", report.MeanDelta)
	}
	if report.Deltas[0].Delta != 0 {
		t.Fatalf("NaN ratio delta = %v, want 0", report.Deltas[0].Delta)
	}
	if len(report.AboveAverage) != 1 || report.AboveAverage[0].EmployeeNo != "2" {
		t.Fatalf("above-average partition = %v", report.AboveAverage)
	}
	if len(report.BelowAverage) != 1 || report.BelowAverage[0].EmployeeNo != "1" {
		t.Fatalf("below-average partition = %v", report.BelowAverage)
	}
	if len(report.EqualAverage) != 0 {
		t.Fatalf("equal partition must be empty, got %v", report.EqualAverage)
	}
}

func TestBuildReport_EmptyInput(t *testing.T) {
	report := BuildReport(nil)

	if report.MeanDelta != 0 || report.MeanLastValue != 0 {
		t.Fatalf("means on empty input must be 0, got %v / %v", report.MeanDelta, report.MeanLastValue)
	}
	if report.Leader != nil {
		t.Fatalf("leader must be nil on empty input")
	}
	if report.EmployeeCount != 0 || report.DayCount != 0 {
		t.Fatalf("counts must be zero on empty input")
	}
}

func TestBuildReport_Idempotent(t *testing.T) {
	rows := []domain.Row{
		{EmployeeNo: "1001", Name: "Ada", Date: "2025-01-01", Ratio: "12,5%"},
		{EmployeeNo: "1002", Name: "Lin", Date: "2025-01-01", Ratio: "7%"},
	}
	first := BuildReport(rows)
	second := BuildReport(rows)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("report is not deterministic for identical input")
	}
}
