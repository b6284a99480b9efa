// internal/state/shop_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-wave-survivor/internal/app"
	"go-wave-survivor/internal/config"
	"go-wave-survivor/internal/ui"
)

var _ State = (*ShopState)(nil)

const shopTop = 140

// ShopState рисует магазин между волнами и передаёт нажатия в сессию.
type ShopState struct {
	sm     *StateMachine
	buy    [config.ShopSlots]*ui.Button
	lock   [config.ShopSlots]*ui.Button
	reroll *ui.Button
	next   *ui.Button
	stats  *ui.StatsPanel
	snap   app.Snapshot
}

func NewShopState(sm *StateMachine) *ShopState {
	s := &ShopState{sm: sm}
	half := float32(cardWidth-10) / 2
	for i := 0; i < config.ShopSlots; i++ {
		x := rowX(i, config.ShopSlots, cardWidth, cardGap, config.ScreenWidth-statsPanelSpace)
		y := float32(shopTop + cardHeight + 8)
		s.buy[i] = ui.NewButton(x, y, half, buttonHeight, "BUY", sm.fontFace)
		s.lock[i] = ui.NewButton(x+half+10, y, half, buttonHeight, "LOCK", sm.fontFace)
	}
	bottom := float32(config.ScreenHeight - 2*buttonHeight)
	s.reroll = ui.NewButton(40, bottom, buttonWidth, buttonHeight, "", sm.fontFace)
	s.next = ui.NewButton(40+buttonWidth+buttonGap, bottom, buttonWidth, buttonHeight, "GO", sm.fontFace)
	s.next.BgColor = config.ButtonGoColor
	s.stats = ui.NewStatsPanel(config.ScreenWidth-statsPanelSpace+20, shopTop-40, sm.fontFace)
	return s
}

const statsPanelSpace = 280

func (s *ShopState) Enter() {
	s.refresh()
}

func (s *ShopState) refresh() {
	s.snap = s.sm.session.Snapshot()
	for i, slot := range s.snap.Slots {
		s.buy[i].Disabled = slot.Empty || slot.Price > s.snap.Currency || (slot.IsWeapon && s.snap.WeaponCount >= config.MaxWeapons)
		s.lock[i].Disabled = slot.Empty
		s.lock[i].Text = "LOCK"
		s.lock[i].BgColor = config.ButtonColor
		if slot.Locked {
			s.lock[i].Text = "LOCKED"
			s.lock[i].BgColor = config.LockedColor
		}
	}
	price := s.snap.RerollPrice
	if allEmpty(s.snap.Slots) {
		price = 0
	}
	s.reroll.Text = fmt.Sprintf("REROLL (%d)", price)
	s.reroll.Disabled = price > s.snap.Currency
}

func allEmpty(slots [config.ShopSlots]app.SlotView) bool {
	for _, slot := range slots {
		if !slot.Empty {
			return false
		}
	}
	return true
}

func (s *ShopState) Update(deltaTime float64) {
	session := s.sm.session
	changed := false
	for i := 0; i < config.ShopSlots; i++ {
		if s.buy[i].IsClicked() {
			changed = session.Buy(i) || changed
		}
		if s.lock[i].IsClicked() {
			changed = session.Lock(i) || changed
		}
	}
	if s.reroll.IsClicked() {
		changed = session.Reroll() || changed
	}
	if changed {
		s.refresh()
	}
	if s.next.IsClicked() {
		session.ConfirmNextWave()
	}
}

func (s *ShopState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := s.sm.fontFace
	ui.DrawLeft(screen, fmt.Sprintf("SHOP  (WAVE %d)", s.snap.Wave), face, 40, 40, config.TextLightColor)
	ui.DrawLeft(screen, formatCurrency(s.snap.Currency), face, 40, 60, config.GoldColor)
	ui.DrawLeft(screen, fmt.Sprintf("Weapons %d/%d", s.snap.WeaponCount, config.MaxWeapons), face, 40, 80, config.TextMutedColor)

	for i, slot := range s.snap.Slots {
		x := rowX(i, config.ShopSlots, cardWidth, cardGap, config.ScreenWidth-statsPanelSpace)
		y := float32(shopTop)
		vector.DrawFilledRect(screen, x, y, cardWidth, cardHeight, config.SlotColor, true)
		border := config.GridColor
		if slot.Locked {
			border = config.LockedColor
		}
		vector.StrokeRect(screen, x, y, cardWidth, cardHeight, 2, border, true)
		if slot.Empty {
			ui.DrawCentered(screen, "SOLD", face, x+cardWidth/2, y+cardHeight/2, config.TextMutedColor)
		} else {
			kind := "ITEM"
			if slot.IsWeapon {
				kind = "WEAPON"
			}
			ui.DrawLeft(screen, slot.Name, face, x+10, y+10, config.TextLightColor)
			ui.DrawLeft(screen, kind, face, x+10, y+30, config.TextMutedColor)
			ui.DrawLeft(screen, fmt.Sprintf("%d", slot.Price), face, x+10, y+cardHeight-24, config.GoldColor)
		}
		s.buy[i].Draw(screen)
		s.lock[i].Draw(screen)
	}

	s.reroll.Draw(screen)
	s.next.Draw(screen)
	s.stats.Draw(screen, s.snap.Stats)
}

func (s *ShopState) Exit() {}

func formatCurrency(v int) string {
	return fmt.Sprintf("Materials: %d", v)
}
