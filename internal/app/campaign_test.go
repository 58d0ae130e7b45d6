package app

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"go-alien-invaders/internal/component"
	"go-alien-invaders/internal/config"
	"go-alien-invaders/internal/defs"
	"go-alien-invaders/internal/input"
)

func newTestCampaign(t *testing.T) *Campaign {
	t.Helper()
	base := defs.DefaultWave()
	base.Rows, base.Columns = 1, 2
	c, err := NewCampaign(base, &scriptedRandom{}, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewCampaign: %v", err)
	}
	return c
}

func clearWave(w *Wave) {
	for row := 0; row < w.Formation().Rows(); row++ {
		for col := 0; col < w.Formation().Cols(); col++ {
			w.world.Formation.Destroy(row, col)
		}
	}
}

func TestCampaignRejectsInvalidBase(t *testing.T) {
	base := defs.DefaultWave()
	base.Lives = 0
	if _, err := NewCampaign(base, &scriptedRandom{}, nil, zerolog.Nop()); !errors.Is(err, defs.ErrInvalidDefinition) {
		t.Fatalf("err = %v", err)
	}
}

func TestCampaignAdvancesAfterDelay(t *testing.T) {
	c := newTestCampaign(t)
	first := c.Wave()
	clearWave(first)

	c.Update(input.Snapshot{}, 0)
	if first.Status() != component.RoundWon {
		t.Fatalf("status = %v", first.Status())
	}

	c.Update(input.Snapshot{}, config.NextWaveDelay/2)
	if c.Number() != 1 || c.Wave() != first {
		t.Fatal("advanced before the delay")
	}
	c.Update(input.Snapshot{}, config.NextWaveDelay/2)
	if c.Number() != 2 || c.Wave() == first {
		t.Fatalf("wave %d after the delay", c.Number())
	}
	if c.Wave().Status() != component.RoundActive || c.Wave().Formation().Count() != 2 {
		t.Errorf("new wave not fresh: %v, %d aliens", c.Wave().Status(), c.Wave().Formation().Count())
	}
	if c.Wave().Definition().AlienSpeed >= first.Definition().AlienSpeed {
		t.Error("second wave is not faster")
	}
}

func TestCampaignLostWaitsForRestart(t *testing.T) {
	c := newTestCampaign(t)
	c.Wave().world.Lives = 0
	c.Update(input.Snapshot{}, 0)
	if c.Wave().Status() != component.RoundLost {
		t.Fatalf("status = %v", c.Wave().Status())
	}
	for i := 0; i < 10; i++ {
		c.Update(input.Snapshot{}, config.NextWaveDelay)
	}
	if c.Number() != 1 || c.Wave().Status() != component.RoundLost {
		t.Fatal("lost wave was replaced without restart")
	}

	if err := c.Restart(); err != nil {
		t.Fatal(err)
	}
	if c.Wave().Status() != component.RoundActive || c.Wave().Lives() != config.ShipLives {
		t.Errorf("restart gave %v with %d lives", c.Wave().Status(), c.Wave().Lives())
	}
}

func TestCampaignPauseFreezesWave(t *testing.T) {
	c := newTestCampaign(t)
	if !c.TogglePause() || !c.Paused() {
		t.Fatal("pause did not engage")
	}
	c.Update(input.Snapshot{Right: true}, 5)
	ship, _ := c.Wave().Ship()
	if ship.X != config.GameWidth/2 || c.Wave().world.Elapsed != 0 {
		t.Error("wave advanced while paused")
	}
	if c.TogglePause() {
		t.Fatal("pause did not release")
	}
	c.Update(input.Snapshot{Right: true}, 0)
	ship, _ = c.Wave().Ship()
	if ship.X == config.GameWidth/2 {
		t.Error("ship did not move after unpausing")
	}
}
