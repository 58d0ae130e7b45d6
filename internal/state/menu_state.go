// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-alien-invaders/internal/app"
	"go-alien-invaders/internal/config"
	"go-alien-invaders/internal/ui"
)

// MenuState — заставка перед первой волной
type MenuState struct {
	sm       *StateMachine
	campaign *app.Campaign
	fonts    Fonts
	banner   *ui.Banner
}

func NewMenuState(sm *StateMachine, campaign *app.Campaign, fonts Fonts) *MenuState {
	return &MenuState{
		sm:       sm,
		campaign: campaign,
		fonts:    fonts,
		banner:   ui.NewBanner(fonts.Title, fonts.HUD),
	}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.campaign, m.fonts))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.sm.Quit()
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	m.banner.Draw(screen, "ALIEN INVADERS", "press SPACE to start")
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
