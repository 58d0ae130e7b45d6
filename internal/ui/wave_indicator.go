package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-alien-invaders/internal/config"
	"go-alien-invaders/internal/utils"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	OutlineColor     color.Color
	OutlineThickness int
	fontFace         font.Face
}

// NewWaveIndicator создает новый индикатор волны; X задаёт центр текста.
func NewWaveIndicator(x, y int, fontFace font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.WaveTextColor,
		OutlineColor:     color.White,
		OutlineThickness: 1,
		fontFace:         fontFace,
	}
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	if waveNumber <= 0 {
		return
	}
	label := utils.ToRoman(waveNumber)

	textColor := i.Color
	if waveNumber%10 == 0 {
		textColor = config.AlienBoltColor
	}

	bounds := text.BoundString(i.fontFace, label)
	textX := i.X - bounds.Dx()/2
	textY := i.Y - bounds.Min.Y

	// Рисуем обводку
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, i.fontFace, textX+dx, textY+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.fontFace, textX, textY, textColor)
}
