package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-alien-invaders/internal/component"
	"go-alien-invaders/internal/config"
	"go-alien-invaders/internal/input"
)

type fakeScreen struct {
	cells map[[2]int]rune
}

func newFakeScreen() *fakeScreen {
	return &fakeScreen{cells: make(map[[2]int]rune)}
}

func (f *fakeScreen) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	f.cells[[2]int{x, y}] = primary
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func TestKeysHoldWindow(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	k := newKeysWithClock(120*time.Millisecond, clock.now)

	if k.IsKeyDown(input.Fire) {
		t.Fatal("fire down before any press")
	}
	k.Press(input.Fire)
	clock.t = clock.t.Add(100 * time.Millisecond)
	if !k.IsKeyDown(input.Fire) {
		t.Fatal("fire released inside the hold window")
	}
	if k.IsKeyDown(input.Left) {
		t.Error("left reported down without a press")
	}

	// повторное нажатие продлевает окно
	k.Press(input.Fire)
	clock.t = clock.t.Add(100 * time.Millisecond)
	if !k.IsKeyDown(input.Fire) {
		t.Fatal("repeat press did not extend the hold")
	}
	clock.t = clock.t.Add(20 * time.Millisecond)
	if k.IsKeyDown(input.Fire) {
		t.Error("fire still down after the hold window")
	}

	k.Press(input.Right)
	k.Reset()
	if k.IsKeyDown(input.Right) {
		t.Error("Reset kept a key down")
	}
}

func TestNewKeysDefaultsHold(t *testing.T) {
	if k := NewKeys(0); k.hold != DefaultHold {
		t.Errorf("hold = %v, want %v", k.hold, DefaultHold)
	}
}

func TestControlFor(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		r    rune
		want input.Control
		ok   bool
	}{
		{tcell.KeyLeft, 0, input.Left, true},
		{tcell.KeyRight, 0, input.Right, true},
		{tcell.KeyUp, 0, input.Fire, true},
		{tcell.KeyRune, 'a', input.Left, true},
		{tcell.KeyRune, 'd', input.Right, true},
		{tcell.KeyRune, ' ', input.Fire, true},
		{tcell.KeyRune, 'w', input.Fire, true},
		{tcell.KeyRune, 'x', 0, false},
		{tcell.KeyDown, 0, 0, false},
	}
	for _, tc := range cases {
		got, ok := ControlFor(tc.key, tc.r)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("ControlFor(%v, %q) = %v, %v; want %v, %v", tc.key, tc.r, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCellMapping(t *testing.T) {
	r := NewRenderer(newFakeScreen(), 80, 25)
	cases := []struct {
		x, y     float64
		col, row int
	}{
		{0, config.GameHeight, 0, HUDRows},
		{config.GameWidth, 0, 79, 24},
		{config.GameWidth / 2, config.GameHeight / 2, 40, 12 + HUDRows},
		{-50, config.GameHeight + 50, 0, HUDRows},
	}
	for _, tc := range cases {
		col, row := r.Cell(tc.x, tc.y)
		if col != tc.col || row != tc.row {
			t.Errorf("Cell(%v, %v) = (%d, %d), want (%d, %d)", tc.x, tc.y, col, row, tc.col, tc.row)
		}
	}
}

func TestDrawSpriteFillsCells(t *testing.T) {
	screen := newFakeScreen()
	r := NewRenderer(screen, 80, 25)

	ship := component.StartShip()
	r.DrawSprite(component.ShipSprite(&ship))

	// корабль 378..422 по x и 10..54 по y: колонки 37..42, строки 23..24
	for _, cell := range [][2]int{{37, 23}, {42, 24}, {40, 24}} {
		if screen.cells[cell] != shipGlyph {
			t.Errorf("cell %v = %q, want ship", cell, screen.cells[cell])
		}
	}
	if _, ok := screen.cells[[2]int{36, 24}]; ok {
		t.Error("ship drawn outside its bounds")
	}
}

func TestDrawDefenseLineIsOneRow(t *testing.T) {
	screen := newFakeScreen()
	r := NewRenderer(screen, 80, 25)
	r.DrawSprite(component.LineSprite(component.NewDefenseLine()))

	rows := make(map[int]bool)
	for cell, g := range screen.cells {
		if g == lineGlyph {
			rows[cell[1]] = true
		}
	}
	if len(rows) != 1 {
		t.Fatalf("defense line spans rows %v", rows)
	}
	if len(screen.cells) != 80 {
		t.Errorf("defense line covers %d cells, want 80", len(screen.cells))
	}
}

func TestDrawTextTruncates(t *testing.T) {
	screen := newFakeScreen()
	r := NewRenderer(screen, 4, 10)
	r.DrawText(1, 0, "LIVES", config.TextLightColor)
	if len(screen.cells) != 3 {
		t.Fatalf("wrote %d cells, want 3", len(screen.cells))
	}
	if screen.cells[[2]int{3, 0}] != 'V' {
		t.Errorf("last cell = %q", screen.cells[[2]int{3, 0}])
	}
}

func TestClearCoversHUD(t *testing.T) {
	screen := newFakeScreen()
	NewRenderer(screen, 5, 4).Clear()
	if len(screen.cells) != 20 {
		t.Errorf("cleared %d cells, want 20", len(screen.cells))
	}
}
