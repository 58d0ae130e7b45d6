// internal/render/color.go
package render

import (
	"image/color"

	"go-alien-invaders/internal/component"
	"go-alien-invaders/internal/config"
)

// Palette holds all the colors needed to draw a wave.
type Palette struct {
	BackgroundColor  color.RGBA
	ShipColor        color.RGBA
	DefenseLineColor color.RGBA
	PlayerBoltColor  color.RGBA
	AlienBoltColor   color.RGBA
	AlienTierColors  []color.RGBA
	StrokeWidth      float32
}

// DefaultPalette собирает палитру из config.
func DefaultPalette() Palette {
	return Palette{
		BackgroundColor:  config.BackgroundColor,
		ShipColor:        config.ShipColor,
		DefenseLineColor: config.DefenseLineColor,
		PlayerBoltColor:  config.PlayerBoltColor,
		AlienBoltColor:   config.AlienBoltColor,
		AlienTierColors:  config.AlienTierColors,
		StrokeWidth:      2,
	}
}

// AlienColor returns the tier color, falling back to the first tier.
func (p Palette) AlienColor(tier component.SpriteTier) color.RGBA {
	if int(tier) >= 0 && int(tier) < len(p.AlienTierColors) {
		return p.AlienTierColors[tier]
	}
	if len(p.AlienTierColors) > 0 {
		return p.AlienTierColors[0]
	}
	return p.ShipColor
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
