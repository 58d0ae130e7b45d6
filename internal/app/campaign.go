// internal/app/campaign.go
package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"go-alien-invaders/internal/audio"
	"go-alien-invaders/internal/component"
	"go-alien-invaders/internal/config"
	"go-alien-invaders/internal/defs"
	"go-alien-invaders/internal/input"
	"go-alien-invaders/internal/utils"
)

// Campaign ведёт волны одну за другой: после победы через паузу строит следующую,
// после поражения ждёт Restart.
type Campaign struct {
	base   defs.WaveDefinition
	rng    utils.Random
	player audio.Player
	logger zerolog.Logger

	wave       *Wave
	number     int
	clearedFor float64 // сколько секунд текущая волна уже зачищена
	paused     bool
}

// NewCampaign проверяет базовое определение и запускает первую волну.
func NewCampaign(base defs.WaveDefinition, rng utils.Random, player audio.Player, logger zerolog.Logger) (*Campaign, error) {
	c := &Campaign{base: base, rng: rng, player: player, logger: logger}
	if err := c.start(1); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Campaign) start(n int) error {
	def := defs.ForWave(c.base, n)
	wave, err := NewWave(def, c.rng, c.player, c.logger.With().Int("wave", n).Logger())
	if err != nil {
		return fmt.Errorf("start wave %d: %w", n, err)
	}
	c.wave = wave
	c.number = n
	c.clearedFor = 0
	c.logger.Info().
		Int("wave", n).
		Float64("alien_speed", def.AlienSpeed).
		Int("bolt_rate", def.BoltRate).
		Msg("wave started")
	return nil
}

// Update продвигает текущую волну. Зачищенная волна сменяется следующей через NextWaveDelay.
func (c *Campaign) Update(in input.Input, deltaTime float64) {
	if c.paused {
		return
	}
	c.wave.Update(in, deltaTime)
	if c.wave.Status() != component.RoundWon {
		return
	}

	c.clearedFor += utils.ClampDelta(deltaTime, 0)
	if c.clearedFor < config.NextWaveDelay {
		return
	}
	if err := c.start(c.number + 1); err != nil {
		// ForWave не выводит определение за пределы Validate; сюда попадаем только с битой базой.
		c.logger.Error().Err(err).Msg("next wave")
		c.clearedFor = 0
	}
}

// Restart начинает с первой волны. Работает в любом состоянии.
func (c *Campaign) Restart() error {
	c.paused = false
	return c.start(1)
}

// TogglePause переключает паузу и возвращает новое состояние.
func (c *Campaign) TogglePause() bool {
	c.paused = !c.paused
	return c.paused
}

func (c *Campaign) Paused() bool { return c.paused }

func (c *Campaign) Wave() *Wave { return c.wave }

// Number — номер текущей волны, с 1.
func (c *Campaign) Number() int { return c.number }
