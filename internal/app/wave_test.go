package app

import (
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"

	"go-alien-invaders/internal/audio"
	"go-alien-invaders/internal/component"
	"go-alien-invaders/internal/config"
	"go-alien-invaders/internal/defs"
	"go-alien-invaders/internal/input"
)

type scriptedRandom struct {
	values []int
	calls  int
}

func (r *scriptedRandom) Intn(n int) int {
	v := 0
	if len(r.values) > 0 {
		v = r.values[r.calls%len(r.values)]
	}
	r.calls++
	return v % n
}

type recordingPlayer struct {
	played []audio.Effect
}

func (p *recordingPlayer) Play(e audio.Effect) {
	p.played = append(p.played, e)
}

type spriteCollector struct {
	sprites []component.Sprite
}

func (c *spriteCollector) DrawSprite(s component.Sprite) {
	c.sprites = append(c.sprites, s)
}

func newTestWave(t *testing.T, rows, cols int) *Wave {
	t.Helper()
	def := defs.DefaultWave()
	def.Rows = rows
	def.Columns = cols
	w, err := NewWave(def, &scriptedRandom{values: []int{2}}, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewWave: %v", err)
	}
	return w
}

// alienBoltAtShip ставит снаряд пришельцев так, чтобы после сдвига он был в центре корабля.
func alienBoltAtShip(w *Wave) {
	ship, _ := w.Ship()
	w.world.Bolts = append(w.world.Bolts,
		component.NewBolt(ship.X, ship.Y+config.BoltSpeed, component.AlienFaction))
}

func TestNewWaveRejectsInvalidDefinition(t *testing.T) {
	def := defs.DefaultWave()
	def.Rows = 0
	_, err := NewWave(def, &scriptedRandom{}, nil, zerolog.Nop())
	if !errors.Is(err, defs.ErrInvalidDefinition) {
		t.Fatalf("err = %v, want ErrInvalidDefinition", err)
	}
	if _, err := NewWave(defs.DefaultWave(), nil, nil, zerolog.Nop()); err == nil {
		t.Fatal("nil random source accepted")
	}
}

func TestNewWaveDrawsThresholdInRange(t *testing.T) {
	w := newTestWave(t, 1, 1)
	// 1 + Intn(5) с выдачей 2
	if w.world.FireThreshold != 3 {
		t.Errorf("threshold = %d, want 3", w.world.FireThreshold)
	}
}

func TestEndToEndOneStep(t *testing.T) {
	w := newTestWave(t, 2, 2)
	var before [2][2]component.Position
	w.Formation().Each(func(row, col int, a *component.Alien) {
		before[row][col] = a.Position
	})
	shipBefore, _ := w.Ship()

	w.Update(input.Snapshot{}, w.Definition().AlienSpeed+0.01)

	w.Formation().Each(func(row, col int, a *component.Alien) {
		want := before[row][col]
		if a.X != want.X+config.AlienHWalk || a.Y != want.Y {
			t.Errorf("alien (%d,%d) at (%v,%v), want (%v,%v)", row, col, a.X, a.Y, want.X+config.AlienHWalk, want.Y)
		}
	})
	if w.Formation().Count() != 4 {
		t.Errorf("count = %d", w.Formation().Count())
	}
	ship, ok := w.Ship()
	if !ok || ship != shipBefore {
		t.Errorf("ship changed: %+v -> %+v", shipBefore, ship)
	}
	if len(w.Bolts()) != 0 {
		t.Errorf("bolts = %+v", w.Bolts())
	}
	if w.Status() != component.RoundActive {
		t.Errorf("status = %v", w.Status())
	}
}

func TestAtMostOnePlayerBolt(t *testing.T) {
	w := newTestWave(t, 1, 1)
	fire := input.Snapshot{Fire: true}
	for i := 0; i < 200; i++ {
		w.Update(fire, 0)
		n := 0
		for _, b := range w.Bolts() {
			if b.IsPlayerBolt() {
				n++
			}
		}
		if n > 1 {
			t.Fatalf("frame %d: %d player bolts", i, n)
		}
	}
}

func TestPlayerBoltLeavesScreenThenFiresAgain(t *testing.T) {
	def := defs.DefaultWave()
	def.Rows, def.Columns = 1, 1
	p := &recordingPlayer{}
	w, err := NewWave(def, &scriptedRandom{}, p, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	w.world.Formation.Destroy(0, 0)

	// Первый снаряд уходит за GameHeight на 67-м кадре, второй вылетает на 68-м.
	frames := (config.GameHeight-config.ShipBottom)/config.BoltSpeed + 3
	for i := 0; i < frames; i++ {
		w.Update(input.Snapshot{Fire: true}, 0)
	}
	shots := 0
	for _, e := range p.played {
		if e == audio.EffectShipFire {
			shots++
		}
	}
	if shots != 2 {
		t.Errorf("ship fired %d times, want 2", shots)
	}
}

func TestThreeHitsLoseTheRound(t *testing.T) {
	w := newTestWave(t, 1, 1)
	for hit := 1; hit <= config.ShipLives; hit++ {
		if !w.world.Ship.Present() {
			w.world.Ship.Set(component.StartShip())
		}
		alienBoltAtShip(w)
		w.Update(input.Snapshot{}, 0)
		if w.Lives() != config.ShipLives-hit {
			t.Fatalf("hit %d: lives = %d", hit, w.Lives())
		}
	}
	if w.Status() != component.RoundLost || !w.IsOver() {
		t.Fatalf("status = %v", w.Status())
	}
}

func TestSingleHitWithoutRespawnLeavesShipDestroyed(t *testing.T) {
	w := newTestWave(t, 1, 1)
	alienBoltAtShip(w)
	w.Update(input.Snapshot{}, 0)
	if w.Status() != component.RoundShipDestroyed || w.IsOver() {
		t.Fatalf("status = %v", w.Status())
	}
	if _, ok := w.Ship(); ok {
		t.Error("ship still present")
	}
}

func TestRespawnAfterDelay(t *testing.T) {
	def := defs.DefaultWave()
	def.Rows, def.Columns = 1, 1
	def.Respawn = defs.RespawnAfterDelay
	def.RespawnDelay = 0.1
	w, err := NewWave(def, &scriptedRandom{}, nil, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	alienBoltAtShip(w)
	w.Update(input.Snapshot{}, 0)
	if _, ok := w.Ship(); ok {
		t.Fatal("ship survived the hit")
	}
	w.Update(input.Snapshot{}, 0.05)
	w.Update(input.Snapshot{}, 0.06)
	ship, ok := w.Ship()
	if !ok || ship != component.StartShip() {
		t.Fatalf("ship = %+v ok = %v after delay", ship, ok)
	}
	if w.Lives() != config.ShipLives-1 {
		t.Errorf("lives = %d", w.Lives())
	}
}

func TestBreachLosesImmediatelyAndFreezes(t *testing.T) {
	w := newTestWave(t, 1, 2)
	a, _ := w.Formation().At(0, 0)
	a.Y = config.DefenseLine + config.AlienHeight/2.0

	w.Update(input.Snapshot{}, 0)
	if w.Status() != component.RoundLost || w.Lives() != 0 {
		t.Fatalf("status = %v lives = %d", w.Status(), w.Lives())
	}

	x := a.X
	w.Update(input.Snapshot{}, 5)
	if a.X != x {
		t.Error("formation marched after the round was lost")
	}
}

func TestWonIsReportedAndUpdatesContinue(t *testing.T) {
	w := newTestWave(t, 1, 1)
	w.world.Formation.Destroy(0, 0)
	w.Update(input.Snapshot{}, 0)
	if w.Status() != component.RoundWon || !w.IsOver() {
		t.Fatalf("status = %v", w.Status())
	}

	w.Update(input.Snapshot{Right: true}, 2)
	ship, _ := w.Ship()
	if ship.X != config.GameWidth/2+config.ShipMovement {
		t.Errorf("ship did not move after the win: x = %v", ship.X)
	}
	if len(w.Bolts()) != 0 {
		t.Error("empty formation fired")
	}
}

func TestNegativeAndNaNDeltaAreIgnored(t *testing.T) {
	w := newTestWave(t, 1, 1)
	w.Update(input.Snapshot{}, -5)
	w.Update(input.Snapshot{}, math.NaN())
	if w.world.Elapsed != 0 {
		t.Errorf("elapsed = %v", w.world.Elapsed)
	}
}

func TestDrawListOrder(t *testing.T) {
	w := newTestWave(t, 2, 2)
	w.Update(input.Snapshot{Fire: true}, 0)

	c := &spriteCollector{}
	w.Draw(c)
	kinds := make([]component.SpriteKind, len(c.sprites))
	for i, s := range c.sprites {
		kinds[i] = s.Kind
	}
	want := []component.SpriteKind{
		component.KindAlien, component.KindAlien, component.KindAlien, component.KindAlien,
		component.KindShip, component.KindDefenseLine, component.KindPlayerBolt,
	}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("sprite %d = %v, want %v", i, kinds[i], want[i])
		}
	}
}
