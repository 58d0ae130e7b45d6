// Package input describes the controls the wave simulation polls every frame.
// Frontends adapt their own key handling to Input.
package input

// Control — дискретное управление кораблём.
type Control int

const (
	Left Control = iota
	Right
	Fire
)

func (c Control) String() string {
	switch c {
	case Left:
		return "left"
	case Right:
		return "right"
	case Fire:
		return "fire"
	}
	return "unknown"
}

// Input опрашивается один раз за кадр, без буферизации.
type Input interface {
	IsKeyDown(c Control) bool
}

// Snapshot — неизменяемое состояние клавиш на кадр.
type Snapshot struct {
	Left, Right, Fire bool
}

// IsKeyDown returns false for controls it does not know.
func (s Snapshot) IsKeyDown(c Control) bool {
	switch c {
	case Left:
		return s.Left
	case Right:
		return s.Right
	case Fire:
		return s.Fire
	}
	return false
}

// Capture снимает состояние любого Input в Snapshot.
func Capture(in Input) Snapshot {
	if in == nil {
		return Snapshot{}
	}
	return Snapshot{
		Left:  in.IsKeyDown(Left),
		Right: in.IsKeyDown(Right),
		Fire:  in.IsKeyDown(Fire),
	}
}
