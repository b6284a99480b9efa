// internal/state/character_select_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-wave-survivor/internal/config"
	"go-wave-survivor/internal/defs"
	"go-wave-survivor/internal/ui"
)

var _ State = (*CharacterSelectState)(nil)

// CharacterSelectState: карточка на каждого героя с его пассивками.
type CharacterSelectState struct {
	sm         *StateMachine
	characters []*defs.Character
	buttons    []*ui.Button
	back       *ui.Button
}

func NewCharacterSelectState(sm *StateMachine) *CharacterSelectState {
	characters := sm.session.Library().Characters()
	s := &CharacterSelectState{sm: sm, characters: characters}
	for i, c := range characters {
		x := rowX(i, len(characters), cardWidth, cardGap, config.ScreenWidth)
		s.buttons = append(s.buttons, ui.NewButton(x, config.ScreenHeight/2+cardHeight/2+cardGap, cardWidth, buttonHeight, c.Name, sm.fontFace))
	}
	s.back = ui.NewButton(float32(config.ScreenWidth-buttonWidth)/2, config.ScreenHeight-2*buttonHeight, buttonWidth, buttonHeight, "BACK", sm.fontFace)
	return s
}

func (s *CharacterSelectState) Enter() {}

func (s *CharacterSelectState) Update(deltaTime float64) {
	for i, b := range s.buttons {
		if b.IsClicked() {
			s.sm.session.ConfirmCharacter(s.characters[i].ID)
			return
		}
	}
	if s.back.IsClicked() {
		s.sm.session.ReturnToMenu()
	}
}

func (s *CharacterSelectState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := s.sm.fontFace
	ui.DrawCentered(screen, "CHOOSE YOUR CHARACTER", face, config.ScreenWidth/2, config.ScreenHeight/5, config.TextLightColor)

	for i, c := range s.characters {
		x := rowX(i, len(s.characters), cardWidth, cardGap, config.ScreenWidth)
		y := float32(config.ScreenHeight/2 - cardHeight/2)
		vector.DrawFilledRect(screen, x, y, cardWidth, cardHeight, config.SlotColor, true)
		vector.StrokeRect(screen, x, y, cardWidth, cardHeight, 1, config.GridColor, true)
		ui.DrawLeft(screen, c.Name, face, x+10, y+10, config.GoldColor)
		ui.DrawLeft(screen, c.Description, face, x+10, y+30, config.TextMutedColor)
		for j, line := range c.PassivesDisplay {
			ui.DrawLeft(screen, line, face, x+10, y+55+float32(j)*16, config.TextLightColor)
		}
		s.buttons[i].Draw(screen)
	}
	s.back.Draw(screen)
}

func (s *CharacterSelectState) Exit() {}
