package utils

import "math"

// SanitizeFloat replaces NaN/Infinity (and negatives, which nutrient values
// can never legitimately be) with 0. Applied at the boundary of every
// computation, not just at output.
func SanitizeFloat(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Pct returns actual/target*100, sanitized. A non-positive target yields 0
// rather than dividing.
func Pct(actual, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return SanitizeFloat((actual / target) * 100.0)
}

func Round2(v float64) float64 { return math.Round(v*100) / 100 }

// ClampInt bounds v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
