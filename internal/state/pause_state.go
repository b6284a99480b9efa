// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-wave-survivor/internal/config"
	"go-wave-survivor/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает бой поверх предыдущего состояния. Часы боя стоят,
// пока пауза активна.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	resume        *ui.Button
	quit          *ui.Button
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	x := float32(config.ScreenWidth-buttonWidth) / 2
	y := float32(config.ScreenHeight) / 2
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		resume:        ui.NewButton(x, y, buttonWidth, buttonHeight, "RESUME", sm.fontFace),
		quit:          ui.NewButton(x, y+buttonHeight+buttonGap, buttonWidth, buttonHeight, "QUIT RUN", sm.fontFace),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || s.resume.IsClicked()
	if unpause {
		s.stateMachine.SetState(s.previousState)
		return
	}
	if s.quit.IsClicked() {
		s.stateMachine.session.Quit()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
	ui.DrawCentered(screen, "PAUSED", s.stateMachine.fontFace, config.ScreenWidth/2, config.ScreenHeight/2-40, config.TextLightColor)
	s.resume.Draw(screen)
	s.quit.Draw(screen)
}

func (s *PauseState) Exit() {}
