// internal/terminal/renderer.go
package terminal

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"go-alien-invaders/internal/component"
	"go-alien-invaders/internal/config"
)

// CellWriter — часть tcell.Screen, которая нужна рендереру.
type CellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// HUDRows — строки сверху, отданные под текст.
const HUDRows = 1

var alienGlyphs = []rune{'#', '@', 'W'}

const (
	shipGlyph       = '^'
	lineGlyph       = '-'
	playerBoltGlyph = '|'
	alienBoltGlyph  = '!'
	backgroundGlyph = ' '
)

// RGBToTcell converts a config color to a tcell color.
func RGBToTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Renderer масштабирует игровое поле на сетку ячеек терминала.
type Renderer struct {
	out        CellWriter
	cols, rows int // размер игрового поля в ячейках, без HUD
	background tcell.Style
}

func NewRenderer(out CellWriter, width, height int) *Renderer {
	r := &Renderer{
		out:        out,
		background: tcell.StyleDefault.Background(RGBToTcell(config.BackgroundColor)),
	}
	r.Resize(width, height)
	return r
}

// Resize принимает полный размер терминала.
func (r *Renderer) Resize(width, height int) {
	r.cols = max(width, 1)
	r.rows = max(height-HUDRows, 1)
}

// Clear заливает всё поле фоном, включая строку HUD.
func (r *Renderer) Clear() {
	for y := 0; y < r.rows+HUDRows; y++ {
		for x := 0; x < r.cols; x++ {
			r.out.SetContent(x, y, backgroundGlyph, nil, r.background)
		}
	}
}

// Cell переводит мировую точку в ячейку игрового поля (со смещением на HUD).
func (r *Renderer) Cell(x, y float64) (int, int) {
	col := int(x / config.GameWidth * float64(r.cols))
	row := int((config.GameHeight - y) / config.GameHeight * float64(r.rows))
	col = min(max(col, 0), r.cols-1)
	row = min(max(row, 0), r.rows-1)
	return col, row + HUDRows
}

func (r *Renderer) DrawSprite(s component.Sprite) {
	glyph, style := r.look(s)
	c0, r0 := r.Cell(s.Bounds.Left(), s.Bounds.Top())
	c1, r1 := r.Cell(s.Bounds.Right(), s.Bounds.Bottom())
	if s.Kind == component.KindDefenseLine {
		// линия тоньше ячейки: одна строка по её центру
		_, r0 = r.Cell(s.Bounds.X, s.Bounds.Y)
		r1 = r0
	}
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			r.out.SetContent(x, y, glyph, nil, style)
		}
	}
}

// DrawText пишет строку HUD, обрезая по ширине.
func (r *Renderer) DrawText(x, y int, s string, c color.RGBA) {
	style := r.background.Foreground(RGBToTcell(c))
	for _, ch := range s {
		if x >= r.cols {
			return
		}
		r.out.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *Renderer) look(s component.Sprite) (rune, tcell.Style) {
	switch s.Kind {
	case component.KindAlien:
		glyph := alienGlyphs[0]
		c := config.AlienTierColors[0]
		if int(s.Tier) < len(alienGlyphs) {
			glyph = alienGlyphs[s.Tier]
		}
		if int(s.Tier) < len(config.AlienTierColors) {
			c = config.AlienTierColors[s.Tier]
		}
		return glyph, r.background.Foreground(RGBToTcell(c))
	case component.KindShip:
		return shipGlyph, r.background.Foreground(RGBToTcell(config.ShipColor))
	case component.KindDefenseLine:
		return lineGlyph, r.background.Foreground(RGBToTcell(config.DefenseLineColor))
	case component.KindPlayerBolt:
		return playerBoltGlyph, r.background.Foreground(RGBToTcell(config.PlayerBoltColor))
	case component.KindAlienBolt:
		return alienBoltGlyph, r.background.Foreground(RGBToTcell(config.AlienBoltColor))
	}
	return backgroundGlyph, r.background
}
