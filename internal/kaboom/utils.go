package kaboom

import (
	"math"
)

func isFinite(x float64) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

// clamp01 clamps x to [0,1]; NaN maps to 0.
func clamp01(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
