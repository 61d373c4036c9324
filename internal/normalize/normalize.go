// Package normalize coerces the heterogeneous cell values coming out of the
// store (percent strings, "N/A", empty cells, raw numbers) into optional
// floats. A nil result means unknown; nothing in here ever returns an error.
package normalize

import (
	"math"
	"strconv"
	"strings"
)

// Missing is the literal marker the store uses for unknown cells.
const Missing = "N/A"

// Parse converts a raw cell value to an optional float. Trailing '%' and
// surrounding whitespace are stripped before parsing. Empty strings, the
// missing marker, unparseable values and non-finite results all map to nil.
func Parse(raw string) *float64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, Missing) {
		return nil
	}
	// thousands separators show up in price-range cells
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return FromFloat(v)
}

// FromFloat guards a computed value: NaN and ±Inf become nil so they never
// cross a component boundary.
func FromFloat(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// Round returns a copy of v rounded to the given number of decimals, or nil
// when v is nil.
func Round(v *float64, decimals int) *float64 {
	if v == nil {
		return nil
	}
	pow := math.Pow(10, float64(decimals))
	return FromFloat(math.Round(*v*pow) / pow)
}

// Format renders an optional float for the store, using the missing marker
// for nil.
func Format(v *float64) string {
	if v == nil {
		return Missing
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// FormatPercent renders an optional float as a percent cell, rounded to two
// decimals the way the refresh pass writes them.
func FormatPercent(v *float64) string {
	if v == nil {
		return Missing
	}
	return strconv.FormatFloat(math.Round(*v*100)/100, 'f', -1, 64) + "%"
}

// Float unwraps an optional value, substituting zero for unknown. The zero
// substitution is the documented scoring behavior for missing metrics.
func Float(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Ptr is a convenience for building optional values in-line.
func Ptr(v float64) *float64 {
	return &v
}
