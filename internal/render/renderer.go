// internal/render/renderer.go
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-alien-invaders/internal/component"
	"go-alien-invaders/internal/config"
)

// Renderer рисует спрайты волны на ebiten.Image. Мир y-вверх, экран y-вниз.
type Renderer struct {
	palette Palette
	screen  *ebiten.Image
	height  float64
}

func NewRenderer(palette Palette) *Renderer {
	return &Renderer{palette: palette, height: config.GameHeight}
}

// Begin задаёт экран для следующих DrawSprite и заливает фон.
func (r *Renderer) Begin(screen *ebiten.Image) {
	r.screen = screen
	screen.Fill(r.palette.BackgroundColor)
}

func (r *Renderer) DrawSprite(s component.Sprite) {
	if r.screen == nil {
		return
	}
	x, y, w, h := s.Bounds.ScreenRect(r.height)
	fx, fy, fw, fh := float32(x), float32(y), float32(w), float32(h)

	switch s.Kind {
	case component.KindAlien:
		r.drawAlien(fx, fy, fw, fh, s.Tier)
	case component.KindShip:
		r.drawShip(fx, fy, fw, fh)
	case component.KindDefenseLine:
		vector.StrokeLine(r.screen, fx, fy+fh/2, fx+fw, fy+fh/2, fh, r.palette.DefenseLineColor, true)
	case component.KindPlayerBolt:
		vector.DrawFilledRect(r.screen, fx, fy, fw, fh, r.palette.PlayerBoltColor, true)
	case component.KindAlienBolt:
		vector.DrawFilledRect(r.screen, fx, fy, fw, fh, r.palette.AlienBoltColor, true)
	}
}

// drawAlien: тело с обводкой и два глаза цвета фона.
func (r *Renderer) drawAlien(x, y, w, h float32, tier component.SpriteTier) {
	body := r.palette.AlienColor(tier)
	vector.DrawFilledRect(r.screen, x, y, w, h, body, true)
	vector.StrokeRect(r.screen, x, y, w, h, r.palette.StrokeWidth, DarkenColor(body), true)

	eye := w / 6
	eyeY := y + h/3
	vector.DrawFilledRect(r.screen, x+w/4-eye/2, eyeY, eye, eye, r.palette.BackgroundColor, true)
	vector.DrawFilledRect(r.screen, x+3*w/4-eye/2, eyeY, eye, eye, r.palette.BackgroundColor, true)
}

// drawShip: корпус в нижней половине и пушка по центру.
func (r *Renderer) drawShip(x, y, w, h float32) {
	c := r.palette.ShipColor
	vector.DrawFilledRect(r.screen, x, y+h/2, w, h/2, c, true)
	vector.DrawFilledRect(r.screen, x+w/2-w/10, y, w/5, h/2, c, true)
	vector.StrokeRect(r.screen, x, y+h/2, w, h/2, r.palette.StrokeWidth, DarkenColor(c), true)
}
