// cmd/game/main.go
package main

import (
	"errors"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"go-alien-invaders/internal/app"
	"go-alien-invaders/internal/audio/device"
	"go-alien-invaders/internal/config"
	"go-alien-invaders/internal/state"
	"go-alien-invaders/internal/utils"
)

const startFromGame = false // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := utils.ClampDelta(now.Sub(a.lastUpdateTime).Seconds(), config.MaxDeltaTime)
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.ShouldQuit() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWidth, config.GameHeight
}

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load settings")
	}
	if lvl, err := zerolog.ParseLevel(settings.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	sound := device.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, running silent")
	}
	defer sound.Close()

	rng := utils.NewPRNGService(settings.Seed)
	log.Info().Int64("seed", rng.Seed()).Msg("starting alien invaders")

	campaign, err := app.NewCampaign(app.BaseWave(settings), rng, sound, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start campaign")
	}

	fonts := state.LoadFonts()
	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewGameState(sm, campaign, fonts))
	} else {
		sm.SetState(state.NewMenuState(sm, campaign, fonts))
	}

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.GameWidth, config.GameHeight)
	ebiten.SetWindowTitle("Alien Invaders")
	ebiten.SetTPS(config.TickRate)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game exited")
	}
}
