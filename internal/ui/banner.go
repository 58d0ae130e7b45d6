package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-alien-invaders/internal/config"
)

// Banner — затемнение поверх игры и строки текста по центру (пауза, конец раунда).
type Banner struct {
	titleFace font.Face
	hintFace  font.Face
}

func NewBanner(titleFace, hintFace font.Face) *Banner {
	return &Banner{titleFace: titleFace, hintFace: hintFace}
}

func (b *Banner) Draw(screen *ebiten.Image, title, hint string) {
	vector.DrawFilledRect(screen, 0, 0, config.GameWidth, config.GameHeight, config.OverlayColor, false)

	titleBounds := text.BoundString(b.titleFace, title)
	titleX := (config.GameWidth - titleBounds.Dx()) / 2
	titleY := config.GameHeight / 2
	text.Draw(screen, title, b.titleFace, titleX, titleY, config.TextLightColor)

	if hint == "" {
		return
	}
	hintBounds := text.BoundString(b.hintFace, hint)
	hintX := (config.GameWidth - hintBounds.Dx()) / 2
	text.Draw(screen, hint, b.hintFace, hintX, titleY+titleBounds.Dy()+hintBounds.Dy(), config.TextLightColor)
}
