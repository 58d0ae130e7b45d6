// internal/ui/lives_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-alien-invaders/internal/config"
)

const livesCircleSpacing = 4.0

// LivesIndicator отображает оставшиеся жизни рядом кружков.
type LivesIndicator struct {
	X, Y     float32
	Radius   float32
	fontFace font.Face
}

func NewLivesIndicator(x, y, radius float32, fontFace font.Face) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y, Radius: radius, fontFace: fontFace}
}

// Draw: полные кружки для оставшихся жизней, пустые для потерянных, справа счёт.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	step := i.Radius*2 + livesCircleSpacing
	for j := 0; j < maxLives; j++ {
		cx := i.X + i.Radius + float32(j)*step
		cy := i.Y + i.Radius

		fill := config.LifeEmptyColor
		if j < lives {
			fill = config.LifeFullColor
		}
		vector.DrawFilledCircle(screen, cx, cy, i.Radius, fill, true)
		vector.StrokeCircle(screen, cx, cy, i.Radius, 1, color.White, true)
	}

	label := strconv.Itoa(lives) + "/" + strconv.Itoa(maxLives)
	textX := int(i.X + float32(maxLives)*step + livesCircleSpacing)
	textY := int(i.Y + i.Radius*2)
	text.Draw(screen, label, i.fontFace, textX, textY, config.TextLightColor)
}
