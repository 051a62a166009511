package utils

import "math"

// FormatFloat rounds f to the given number of decimals, NaN and Inf pass through.
func FormatFloat(f float64, round int32) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	scale := math.Pow10(int(round))
	return math.Round(f*scale) / scale
}

// IsFinite reports whether every element of data is neither NaN nor Inf.
func IsFinite(data []float64) bool {
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
