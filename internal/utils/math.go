// internal/utils/math.go
package utils

import "math"

// ClampDelta приводит шаг времени к допустимому: NaN и отрицательные значения становятся нулём,
// слишком большие обрезаются до max (если max > 0).
func ClampDelta(dt, max float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	if max > 0 && dt > max {
		return max
	}
	return dt
}
