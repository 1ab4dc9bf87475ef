// Package utils provides utility functions for the credit plan engine.
package utils

import "math"

// Round2 rounds a monetary value to 2 decimal places, half away from zero.
// Every amount in the system passes through this exactly once at the point
// it is computed; already-rounded values are summed as-is.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FloorCents truncates a monetary value down to a whole cent. Used for the
// even-split base amount so the last installment absorbs the residual.
func FloorCents(v float64) float64 {
	return math.Floor(v*100) / 100
}

// IsFinite reports whether v is neither infinite nor NaN.
func IsFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
