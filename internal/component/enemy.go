package component

import "go-alien-invaders/internal/config"

// SpriteTier выбирает внешний вид пришельца.
type SpriteTier int

const (
	TierA SpriteTier = iota
	TierB
	TierC
)

// TierForRow: ряды 1,2 дают A, ряды 3,4 дают B, остальные C (цикл из 5).
func TierForRow(row int) SpriteTier {
	switch row % 5 {
	case 1, 2:
		return TierA
	case 3, 4:
		return TierB
	default:
		return TierC
	}
}

// Alien представляет одного пришельца в строю.
type Alien struct {
	Position
	Tier SpriteTier
}

func NewAlien(x, y float64, tier SpriteTier) Alien {
	return Alien{Position: Position{X: x, Y: y}, Tier: tier}
}

func (a *Alien) Bounds() Bounds {
	return Bounds{X: a.X, Y: a.Y, W: config.AlienWidth, H: config.AlienHeight}
}

func (a *Alien) Contains(x, y float64) bool {
	return a.Bounds().Contains(x, y)
}

// HitBy reports whether a player bolt touches the alien. Alien bolts never do.
func (a *Alien) HitBy(b *Bolt) bool {
	if !b.IsPlayerBolt() {
		return false
	}
	return a.Bounds().ContainsAnyCorner(b.Bounds())
}
