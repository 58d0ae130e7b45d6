// internal/component/line.go
package component

import "go-alien-invaders/internal/config"

// DefenseLine — горизонтальная линия, пересечение которой пришельцем означает поражение.
type DefenseLine struct {
	Y float64
}

func NewDefenseLine() DefenseLine {
	return DefenseLine{Y: config.DefenseLine}
}

// Breached: нижний край пришельца на линии или ниже.
func (l DefenseLine) Breached(a *Alien) bool {
	return a.Bounds().Bottom() <= l.Y
}

func (l DefenseLine) Bounds() Bounds {
	return Bounds{X: config.GameWidth / 2, Y: l.Y, W: config.GameWidth, H: config.DefenseLineWidth}
}
