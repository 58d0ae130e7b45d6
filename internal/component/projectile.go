// internal/component/projectile.go
package component

import "go-alien-invaders/internal/config"

// Faction — кто выпустил снаряд. Знак совпадает со знаком скорости.
type Faction int

const (
	AlienFaction  Faction = -1
	PlayerFaction Faction = 1
)

func (f Faction) String() string {
	if f == PlayerFaction {
		return "player"
	}
	return "alien"
}

// Bolt представляет летящий снаряд. Скорость задаётся при создании и больше не меняется.
type Bolt struct {
	Position
	velocity float64
}

// NewBolt creates a bolt moving up for PlayerFaction and down for AlienFaction.
func NewBolt(x, y float64, faction Faction) Bolt {
	v := float64(config.BoltSpeed)
	if faction != PlayerFaction {
		v = -v
	}
	return Bolt{Position: Position{X: x, Y: y}, velocity: v}
}

func (b *Bolt) Velocity() float64 {
	return b.velocity
}

func (b *Bolt) IsPlayerBolt() bool {
	return b.velocity > 0
}

func (b *Bolt) Faction() Faction {
	if b.IsPlayerBolt() {
		return PlayerFaction
	}
	return AlienFaction
}

// Advance сдвигает снаряд на одну скорость за кадр.
func (b *Bolt) Advance() {
	b.Y += b.velocity
}

func (b *Bolt) Bounds() Bounds {
	return Bounds{X: b.X, Y: b.Y, W: config.BoltWidth, H: config.BoltHeight}
}

func (b *Bolt) Contains(x, y float64) bool {
	return b.Bounds().Contains(x, y)
}

// Offscreen: снаряд игрока вылетел за верх, снаряд пришельца за низ экрана.
func (b *Bolt) Offscreen() bool {
	if b.IsPlayerBolt() {
		return b.Y > config.GameHeight
	}
	return b.Y <= 0
}
