// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-wave-survivor/internal/config"
	"go-wave-survivor/internal/ui"
)

var _ State = (*MenuState)(nil)

// MenuState главное меню
type MenuState struct {
	sm          *StateMachine
	newRun      *ui.Button
	continueRun *ui.Button
	exit        *ui.Button
}

func NewMenuState(sm *StateMachine) *MenuState {
	x := float32(config.ScreenWidth-buttonWidth) / 2
	y := float32(config.ScreenHeight) / 2
	return &MenuState{
		sm:          sm,
		newRun:      ui.NewButton(x, y, buttonWidth, buttonHeight, "NEW RUN", sm.fontFace),
		continueRun: ui.NewButton(x, y+buttonHeight+buttonGap, buttonWidth, buttonHeight, "CONTINUE", sm.fontFace),
		exit:        ui.NewButton(x, y+2*(buttonHeight+buttonGap), buttonWidth, buttonHeight, "EXIT", sm.fontFace),
	}
}

func (m *MenuState) Enter() {
	m.continueRun.Disabled = !m.sm.session.CanContinue()
}

func (m *MenuState) Update(deltaTime float64) {
	switch {
	case m.newRun.IsClicked():
		m.sm.session.NewRun()
	case m.continueRun.IsClicked():
		if !m.sm.session.Continue() {
			m.continueRun.Disabled = true
		}
	case m.exit.IsClicked():
		m.sm.Terminate()
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawCentered(screen, "BROTETO", m.sm.fontFace, config.ScreenWidth/2, config.ScreenHeight/3, config.GoldColor)
	m.newRun.Draw(screen)
	m.continueRun.Draw(screen)
	m.exit.Draw(screen)
}

func (m *MenuState) Exit() {}
