// component/render.go
package component

// SpriteKind — что именно рисовать
type SpriteKind int

const (
	KindAlien SpriteKind = iota
	KindShip
	KindDefenseLine
	KindPlayerBolt
	KindAlienBolt
)

// Sprite — элемент списка отрисовки, который ядро отдаёт рендереру.
type Sprite struct {
	Kind   SpriteKind
	Bounds Bounds
	Tier   SpriteTier // только для KindAlien
}

func AlienSprite(a *Alien) Sprite {
	return Sprite{Kind: KindAlien, Bounds: a.Bounds(), Tier: a.Tier}
}

func ShipSprite(s *Ship) Sprite {
	return Sprite{Kind: KindShip, Bounds: s.Bounds()}
}

func LineSprite(l DefenseLine) Sprite {
	return Sprite{Kind: KindDefenseLine, Bounds: l.Bounds()}
}

func BoltSprite(b *Bolt) Sprite {
	kind := KindAlienBolt
	if b.IsPlayerBolt() {
		kind = KindPlayerBolt
	}
	return Sprite{Kind: kind, Bounds: b.Bounds()}
}
