// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует замороженную игру с надписью и ждёт P/Esc.
type PauseState struct {
	stateMachine *StateMachine
	game         *GameState
}

func NewPauseState(sm *StateMachine, game *GameState) *PauseState {
	return &PauseState{stateMachine: sm, game: game}
}

func (s *PauseState) Enter() {
	s.game.campaign.TogglePause()
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.game)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		s.stateMachine.Quit()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	s.game.banner.Draw(screen, "PAUSED", "P to resume, Q to quit")
}

func (s *PauseState) Exit() {
	s.game.campaign.TogglePause()
}
