package usecase

import (
	"sort"

	"personnel-metrics-service/internal/percent"
	"personnel-metrics-service/internal/report/core/domain"
)

// The functions below are pure: same rows in, same report out, no I/O.
// The whole report is rebuilt from scratch on every call.

// BuildDateAxis returns the sorted set of distinct non-empty dates seen in
// any row. Dates are YYYY-MM-DD, so plain string order is chronological
// order (assumed, not validated here).
func BuildDateAxis(rows []domain.Row) []string {
	seen := make(map[string]struct{})
	var axis []string
	for _, row := range rows {
		if row.Date == "" {
			continue
		}
		if _, ok := seen[row.Date]; ok {
			continue
		}
		seen[row.Date] = struct{}{}
		axis = append(axis, row.Date)
	}
	sort.Strings(axis)
	return axis
}

// BuildSeries groups rows by employee number into the dense employee x day
// matrix. The first row for an employee fixes its number and display name;
// later rows only fill value slots (last write wins on duplicates). Rows
// whose date is not on the axis are ignored.
func BuildSeries(rows []domain.Row, axis []string) []domain.EmployeeSeries {
	dateIndex := make(map[string]int, len(axis))
	for i, d := range axis {
		dateIndex[d] = i
	}

	index := make(map[string]int)
	var series []domain.EmployeeSeries

	for _, row := range rows {
		if _, ok := index[row.EmployeeNo]; !ok {
			index[row.EmployeeNo] = len(series)
			series = append(series, domain.EmployeeSeries{
				EmployeeNo: row.EmployeeNo,
				Name:       row.Name,
				Values:     make([]string, len(axis)),
			})
		}

		pos, ok := dateIndex[row.Date]
		if !ok {
			continue
		}
		series[index[row.EmployeeNo]].Values[pos] = row.Ratio
	}

	return series
}

// BuildReport computes the full aggregated view model from the flat rows.
func BuildReport(rows []domain.Row) *domain.Report {
	axis := BuildDateAxis(rows)
	series := BuildSeries(rows, axis)

	report := &domain.Report{
		DateAxis:      axis,
		Series:        series,
		EmployeeCount: len(series),
		DayCount:      len(axis),
	}

	var deltaSum, lastSum float64
	for _, s := range series {
		var last, previous string
		if len(s.Values) >= 1 {
			last = s.Values[len(s.Values)-1]
		}
		if len(s.Values) >= 2 {
			previous = s.Values[len(s.Values)-2]
		}

		rec := domain.DeltaRecord{
			EmployeeNo: s.EmployeeNo,
			Name:       s.Name,
			Last:       last,
			Previous:   previous,
			Delta:      percent.Parse(last) - percent.Parse(previous),
		}
		report.Deltas = append(report.Deltas, rec)

		deltaSum += rec.Delta
		lastSum += percent.Parse(last)
	}

	if len(report.Deltas) > 0 {
		report.MeanDelta = deltaSum / float64(len(report.Deltas))
		report.MeanLastValue = lastSum / float64(len(report.Deltas))
	}

	// Strict comparison against the just-computed mean; exactly equal
	// deltas land in the equal partition.
	for _, rec := range report.Deltas {
		switch {
		case rec.Delta > report.MeanDelta:
			report.AboveAverage = append(report.AboveAverage, rec)
		case rec.Delta < report.MeanDelta:
			report.BelowAverage = append(report.BelowAverage, rec)
		default:
			report.EqualAverage = append(report.EqualAverage, rec)
		}
	}

	for _, s := range series {
		var last string
		if len(s.Values) >= 1 {
			last = s.Values[len(s.Values)-1]
		}
		entry := domain.LastValueEntry{
			EmployeeNo: s.EmployeeNo,
			Name:       s.Name,
			Value:      percent.Parse(last),
		}
		if entry.Value > report.MeanLastValue {
			report.LastAboveAverage = append(report.LastAboveAverage, entry)
		} else if entry.Value < report.MeanLastValue {
			report.LastBelowAverage = append(report.LastBelowAverage, entry)
		}
	}

	report.Leaderboard = make([]domain.DeltaRecord, len(report.Deltas))
	copy(report.Leaderboard, report.Deltas)
	// Stable: tied deltas keep first-appearance order.
	sort.SliceStable(report.Leaderboard, func(i, j int) bool {
		return report.Leaderboard[i].Delta > report.Leaderboard[j].Delta
	})

	if len(report.Leaderboard) > 0 {
		leader := report.Leaderboard[0]
		report.Leader = &leader
	}

	return report
}
