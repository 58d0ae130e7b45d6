// internal/entity/formation.go
package entity

import (
	"math"

	"go-alien-invaders/internal/component"
	"go-alien-invaders/internal/config"
)

// Direction — направление марша строя.
type Direction int

const (
	MarchRight Direction = iota
	MarchLeft
)

func (d Direction) String() string {
	if d == MarchLeft {
		return "left"
	}
	return "right"
}

// Formation — прямоугольная сетка пришельцев. Размеры фиксируются при создании,
// меняется только заполненность ячеек, и только в сторону уменьшения.
type Formation struct {
	grid      [][]Slot[component.Alien]
	rows      int
	cols      int
	direction Direction
}

// NewFormation раскладывает строй: ряд 0 сверху под потолком, колонки слева направо.
func NewFormation(rows, cols int) *Formation {
	f := &Formation{
		grid: make([][]Slot[component.Alien], rows),
		rows: rows,
		cols: cols,
	}

	y := float64(config.GameHeight) - config.AlienCeiling - config.AlienHeight/2.0
	for row := 0; row < rows; row++ {
		f.grid[row] = make([]Slot[component.Alien], cols)
		tier := component.TierForRow(row)
		x := config.AlienHSep + config.AlienWidth/2.0
		for col := 0; col < cols; col++ {
			f.grid[row][col] = Some(component.NewAlien(x, y, tier))
			x += config.AlienHSep + config.AlienWidth
		}
		y -= config.AlienHeight + config.AlienVSep
	}
	return f
}

func (f *Formation) Rows() int { return f.rows }
func (f *Formation) Cols() int { return f.cols }

func (f *Formation) Direction() Direction {
	return f.direction
}

// At возвращает пришельца в ячейке; false, если ячейка пуста или вне сетки.
func (f *Formation) At(row, col int) (*component.Alien, bool) {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		return nil, false
	}
	return f.grid[row][col].Get()
}

// Destroy опустошает ячейку. Возвращает false, если там уже пусто.
func (f *Formation) Destroy(row, col int) bool {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		return false
	}
	return f.grid[row][col].Clear()
}

// Each обходит занятые ячейки построчно.
func (f *Formation) Each(fn func(row, col int, a *component.Alien)) {
	for row := range f.grid {
		for col := range f.grid[row] {
			if a, ok := f.grid[row][col].Get(); ok {
				fn(row, col, a)
			}
		}
	}
}

func (f *Formation) Count() int {
	n := 0
	f.Each(func(int, int, *component.Alien) { n++ })
	return n
}

func (f *Formation) Empty() bool {
	return f.Count() == 0
}

// BottomRow возвращает самый нижний на экране занятый ряд колонки (наибольший индекс,
// так как ряды идут сверху вниз). false, если колонка пуста.
func (f *Formation) BottomRow(col int) (int, bool) {
	if col < 0 || col >= f.cols {
		return -1, false
	}
	for row := f.rows - 1; row >= 0; row-- {
		if f.grid[row][col].Present() {
			return row, true
		}
	}
	return -1, false
}

// OccupiedColumns — индексы колонок, где есть хотя бы один пришелец.
func (f *Formation) OccupiedColumns() []int {
	var cols []int
	for col := 0; col < f.cols; col++ {
		if _, ok := f.BottomRow(col); ok {
			cols = append(cols, col)
		}
	}
	return cols
}

// LowestY — минимальный нижний край среди живых пришельцев.
func (f *Formation) LowestY() float64 {
	lowest := math.Inf(1)
	f.Each(func(_, _ int, a *component.Alien) {
		lowest = math.Min(lowest, a.Bounds().Bottom())
	})
	return lowest
}

// March делает один шаг: все сдвигаются на walk в текущую сторону, затем, если крайний
// пришелец дошёл до края (left или right), строй разворачивается и опускается на drop.
// Выход за край на этом шаге допускается. Возвращает true, если строй опустился.
func (f *Formation) March(walk, drop, left, right float64) bool {
	dx := walk
	if f.direction == MarchLeft {
		dx = -walk
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	moved := false
	f.Each(func(_, _ int, a *component.Alien) {
		a.X += dx
		minX = math.Min(minX, a.X)
		maxX = math.Max(maxX, a.X)
		moved = true
	})
	if !moved {
		return false
	}

	crossed := (f.direction == MarchLeft && minX <= left) ||
		(f.direction == MarchRight && maxX >= right)
	if !crossed {
		return false
	}

	if f.direction == MarchLeft {
		f.direction = MarchRight
	} else {
		f.direction = MarchLeft
	}
	f.Each(func(_, _ int, a *component.Alien) {
		a.Y -= drop
	})
	return true
}
