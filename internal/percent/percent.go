// Package percent parses the textual percentage values the dashboard stores
// and displays ("12,5%", "10%", "-3,2"). The same parser is shared by the
// report aggregation, record creation and bulk upload.
package percent

import (
	"math"
	"strconv"
	"strings"
)

// Parse converts a textual percentage to a float.
//   - trailing "%" is stripped
//   - decimal comma is normalized to a decimal point ("12,5" -> 12.5)
//   - empty or unparseable input returns 0, never an error
//   - always returns a finite value; "NaN"/"Inf" spellings count as
//     unparseable, so downstream means and partitions stay well defined
func Parse(val string) float64 {
	s := strings.TrimSpace(val)
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", ".")

	if s == "" {
		return 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
