// internal/component/movement.go
package component

// Position — центр объекта в мировых координатах (y вверх)
type Position struct {
	X, Y float64
}

// Bounds — прямоугольник с центром в (X, Y)
type Bounds struct {
	X, Y float64
	W, H float64
}

func (b Bounds) Left() float64   { return b.X - b.W/2 }
func (b Bounds) Right() float64  { return b.X + b.W/2 }
func (b Bounds) Bottom() float64 { return b.Y - b.H/2 }
func (b Bounds) Top() float64    { return b.Y + b.H/2 }

// Contains включает границы прямоугольника.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.Left() && x <= b.Right() && y >= b.Bottom() && y <= b.Top()
}

// Corners returns left-bottom, left-top, right-bottom, right-top.
func (b Bounds) Corners() [4]Position {
	return [4]Position{
		{X: b.Left(), Y: b.Bottom()},
		{X: b.Left(), Y: b.Top()},
		{X: b.Right(), Y: b.Bottom()},
		{X: b.Right(), Y: b.Top()},
	}
}

// ContainsAnyCorner проверяет, попадает ли хотя бы один угол other внутрь b.
func (b Bounds) ContainsAnyCorner(other Bounds) bool {
	for _, c := range other.Corners() {
		if b.Contains(c.X, c.Y) {
			return true
		}
	}
	return false
}

// ScreenRect переводит прямоугольник в экранные координаты (y вниз): левый верхний угол и размер.
func (b Bounds) ScreenRect(screenHeight float64) (x, y, w, h float64) {
	return b.Left(), screenHeight - b.Top(), b.W, b.H
}
