// cmd/term/main.go
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"go-alien-invaders/internal/app"
	"go-alien-invaders/internal/audio/device"
	"go-alien-invaders/internal/component"
	"go-alien-invaders/internal/config"
	"go-alien-invaders/internal/terminal"
	"go-alien-invaders/internal/utils"
)

// Game связывает экран tcell с кампанией.
type Game struct {
	screen   tcell.Screen
	renderer *terminal.Renderer
	keys     *terminal.Keys
	campaign *app.Campaign
}

func NewGame(campaign *app.Campaign) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	w, h := screen.Size()
	return &Game{
		screen:   screen,
		renderer: terminal.NewRenderer(screen, w, h),
		keys:     terminal.NewKeys(terminal.DefaultHold),
		campaign: campaign,
	}, nil
}

// handleInput возвращает false, если игрок вышел.
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'p', 'P':
				g.keys.Reset()
				paused := g.campaign.TogglePause()
				log.Debug().Bool("paused", paused).Msg("pause toggled")
				return true
			case 'r', 'R':
				if g.campaign.Wave().Status() == component.RoundLost {
					if err := g.campaign.Restart(); err != nil {
						log.Error().Err(err).Msg("restart")
					}
					return true
				}
			}
		}
		g.keys.HandleKey(ev)

	case *tcell.EventResize:
		w, h := g.screen.Size()
		g.renderer.Resize(w, h)
		g.screen.Sync()
	}
	return true
}

func (g *Game) draw() {
	wave := g.campaign.Wave()
	g.renderer.Clear()
	wave.Draw(g.renderer)

	hud := fmt.Sprintf("WAVE %s  LIVES %d/%d", utils.ToRoman(g.campaign.Number()), wave.Lives(), wave.Definition().Lives)
	switch {
	case g.campaign.Paused():
		hud += "  PAUSED (p)"
	case wave.Status() == component.RoundLost:
		hud += "  GAME OVER (r to restart, q to quit)"
	case wave.Status() == component.RoundWon:
		hud += "  WAVE CLEARED"
	}
	g.renderer.DrawText(0, 0, hud, config.TextLightColor)
	g.screen.Show()
}

func (g *Game) run() {
	ticker := time.NewTicker(time.Second / config.TickRate)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	eventChan := terminal.PollEvents(g.screen, 100, done)

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			deltaTime := utils.ClampDelta(now.Sub(last).Seconds(), config.MaxDeltaTime)
			last = now
			g.campaign.Update(g.keys, deltaTime)
			g.draw()
		}
	}
}

func main() {
	_ = godotenv.Load()

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load settings:", err)
		os.Exit(1)
	}

	// Лог в файл, чтобы не портить экран терминала.
	logFile, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to open log file:", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.Logger = zerolog.New(logFile).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(settings.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	sound := device.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, running silent")
	}
	defer sound.Close()

	rng := utils.NewPRNGService(settings.Seed)
	log.Info().Int64("seed", rng.Seed()).Msg("starting alien invaders (terminal)")

	campaign, err := app.NewCampaign(app.BaseWave(settings), rng, sound, log.Logger)
	if err != nil {
		log.Error().Err(err).Msg("failed to start campaign")
		return
	}

	game, err := NewGame(campaign)
	if err != nil {
		log.Error().Err(err).Msg("failed to init terminal")
		fmt.Fprintln(os.Stderr, "failed to init terminal:", err)
		return
	}
	defer game.screen.Fini()

	game.run()
	log.Info().Int("wave", campaign.Number()).Msg("bye")
}
