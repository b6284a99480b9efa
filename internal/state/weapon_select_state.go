// internal/state/weapon_select_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-wave-survivor/internal/config"
	"go-wave-survivor/internal/defs"
	"go-wave-survivor/internal/ui"
)

var _ State = (*WeaponSelectState)(nil)

// WeaponSelectState показывает стартовое оружие. Оружие героя по умолчанию подсвечено.
type WeaponSelectState struct {
	sm      *StateMachine
	weapons []defs.Weapon
	buttons []*ui.Button
}

func NewWeaponSelectState(sm *StateMachine) *WeaponSelectState {
	weapons := sm.session.Library().Weapons()
	s := &WeaponSelectState{sm: sm, weapons: weapons}
	defaultID := ""
	if c := sm.session.Character(); c != nil {
		defaultID = c.StartingWeaponID
	}
	for i, w := range weapons {
		x := rowX(i, len(weapons), cardWidth, cardGap, config.ScreenWidth)
		b := ui.NewButton(x, config.ScreenHeight/2+cardHeight/2+cardGap, cardWidth, buttonHeight, w.Name, sm.fontFace)
		if w.ID == defaultID {
			b.BgColor = config.ButtonGoColor
		}
		s.buttons = append(s.buttons, b)
	}
	return s
}

func (s *WeaponSelectState) Enter() {}

func (s *WeaponSelectState) Update(deltaTime float64) {
	for i, b := range s.buttons {
		if b.IsClicked() {
			s.sm.session.ConfirmWeapon(s.weapons[i].ID)
			return
		}
	}
	// Enter подтверждает оружие героя по умолчанию.
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.sm.session.ConfirmWeapon("")
	}
}

func (s *WeaponSelectState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := s.sm.fontFace
	ui.DrawCentered(screen, "CHOOSE A STARTING WEAPON", face, config.ScreenWidth/2, config.ScreenHeight/5, config.TextLightColor)

	for i, w := range s.weapons {
		x := rowX(i, len(s.weapons), cardWidth, cardGap, config.ScreenWidth)
		y := float32(config.ScreenHeight/2 - cardHeight/2)
		vector.DrawFilledRect(screen, x, y, cardWidth, cardHeight, config.SlotColor, true)
		vector.StrokeRect(screen, x, y, cardWidth, cardHeight, 1, config.GridColor, true)
		ui.DrawLeft(screen, fmt.Sprintf("%s (%s)", w.Name, w.Type), face, x+10, y+10, config.GoldColor)
		ui.DrawLeft(screen, fmt.Sprintf("Damage %.0f", w.Stats.Damage), face, x+10, y+35, config.TextLightColor)
		ui.DrawLeft(screen, fmt.Sprintf("Cooldown %.0f ms", w.Stats.CooldownMs), face, x+10, y+53, config.TextLightColor)
		ui.DrawLeft(screen, fmt.Sprintf("Range %.0f", w.Stats.Range), face, x+10, y+71, config.TextLightColor)
		ui.DrawLeft(screen, w.Description, face, x+10, y+95, config.TextMutedColor)
		s.buttons[i].Draw(screen)
	}
}

func (s *WeaponSelectState) Exit() {}
