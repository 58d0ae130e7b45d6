// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font"

	"go-alien-invaders/internal/app"
	"go-alien-invaders/internal/component"
	"go-alien-invaders/internal/config"
	"go-alien-invaders/internal/input/keyboard"
	"go-alien-invaders/internal/render"
	"go-alien-invaders/internal/ui"
)

// Fonts — шрифты, общие для всех состояний.
type Fonts struct {
	Title font.Face
	HUD   font.Face
}

func LoadFonts() Fonts {
	return Fonts{Title: ui.LoadFace(32), HUD: ui.LoadFace(16)}
}

// Убеждаемся, что GameState соответствует интерфейсу State
var _ State = (*GameState)(nil)

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	campaign      *app.Campaign
	keys          keyboard.Keyboard
	renderer      *render.Renderer
	lives         *ui.LivesIndicator
	waveIndicator *ui.WaveIndicator
	banner        *ui.Banner
}

func NewGameState(sm *StateMachine, campaign *app.Campaign, fonts Fonts) *GameState {
	return &GameState{
		sm:       sm,
		campaign: campaign,
		renderer: render.NewRenderer(render.DefaultPalette()),
		lives: ui.NewLivesIndicator(
			float32(config.HUDTextX),
			float32(config.HUDTextY)-config.IndicatorRadius,
			config.IndicatorRadius,
			fonts.HUD,
		),
		waveIndicator: ui.NewWaveIndicator(config.WaveTextX, config.WaveTextY, fonts.Title),
		banner:        ui.NewBanner(fonts.Title, fonts.HUD),
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	wave := g.campaign.Wave()
	if wave.Status() == component.RoundLost && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.campaign.Restart(); err != nil {
			log.Error().Err(err).Msg("restart")
		}
		return
	}

	g.campaign.Update(g.keys, deltaTime)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	wave := g.campaign.Wave()
	g.renderer.Begin(screen)
	wave.Draw(g.renderer)

	g.lives.Draw(screen, wave.Lives(), wave.Definition().Lives)
	g.waveIndicator.Draw(screen, g.campaign.Number())

	switch wave.Status() {
	case component.RoundLost:
		g.banner.Draw(screen, "GAME OVER", "press R to restart")
	case component.RoundWon:
		g.banner.Draw(screen, "WAVE CLEARED", "")
	}
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
