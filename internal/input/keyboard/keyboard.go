// Package keyboard reads ship controls from ebiten.
package keyboard

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-alien-invaders/internal/input"
)

// Привязка клавиш: стрелки, A/D, огонь: пробел, стрелка вверх или W.
var bindings = map[input.Control][]ebiten.Key{
	input.Left:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	input.Right: {ebiten.KeyArrowRight, ebiten.KeyD},
	input.Fire:  {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
}

// Keyboard опрашивает ebiten на каждый вызов, без буферизации.
type Keyboard struct{}

var _ input.Input = Keyboard{}

func (Keyboard) IsKeyDown(c input.Control) bool {
	for _, k := range bindings[c] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
