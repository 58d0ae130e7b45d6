// internal/component/player.go
package component

import "go-alien-invaders/internal/config"

// Ship — корабль игрока.
type Ship struct {
	Position
}

func NewShip(x, y float64) Ship {
	return Ship{Position: Position{X: x, Y: y}}
}

// StartShip ставит корабль по центру у нижнего края.
func StartShip() Ship {
	return NewShip(config.GameWidth/2, config.ShipBottom)
}

func (s *Ship) Bounds() Bounds {
	return Bounds{X: s.X, Y: s.Y, W: config.ShipWidth, H: config.ShipHeight}
}

func (s *Ship) Contains(x, y float64) bool {
	return s.Bounds().Contains(x, y)
}

// HitBy reports whether an alien bolt touches the ship. Player bolts never do.
func (s *Ship) HitBy(b *Bolt) bool {
	if b.IsPlayerBolt() {
		return false
	}
	return s.Bounds().ContainsAnyCorner(b.Bounds())
}

// Move сдвигает корабль по горизонтали, не выпуская его за экран.
func (s *Ship) Move(dx float64) {
	x := s.X + dx
	minX := float64(config.ShipWidth / 2)
	maxX := float64(config.GameWidth - config.ShipWidth/2)
	if x < minX {
		x = minX
	}
	if x > maxX {
		x = maxX
	}
	s.X = x
}
