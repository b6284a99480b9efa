// internal/state/defeated_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"go-wave-survivor/internal/config"
	"go-wave-survivor/internal/ui"
)

var _ State = (*DefeatedState)(nil)

// DefeatedState показывает экран поражения. Сохранение не трогается.
type DefeatedState struct {
	sm   *StateMachine
	wave int
	menu *ui.Button
}

func NewDefeatedState(sm *StateMachine) *DefeatedState {
	x := float32(config.ScreenWidth-buttonWidth) / 2
	return &DefeatedState{
		sm:   sm,
		menu: ui.NewButton(x, config.ScreenHeight/2+40, buttonWidth, buttonHeight, "MAIN MENU", sm.fontFace),
	}
}

func (s *DefeatedState) Enter() {
	s.wave = s.sm.session.Snapshot().Wave
}

func (s *DefeatedState) Update(deltaTime float64) {
	if s.menu.IsClicked() {
		s.sm.session.ReturnToMenu()
	}
}

func (s *DefeatedState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := s.sm.fontFace
	ui.DrawCentered(screen, "DEFEATED", face, config.ScreenWidth/2, config.ScreenHeight/2-40, config.LockedColor)
	ui.DrawCentered(screen, fmt.Sprintf("You fell on wave %d", s.wave), face, config.ScreenWidth/2, config.ScreenHeight/2-15, config.TextLightColor)
	s.menu.Draw(screen)
}

func (s *DefeatedState) Exit() {}
