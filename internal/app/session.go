// internal/app/session.go
package app

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"go-wave-survivor/internal/component"
	"go-wave-survivor/internal/config"
	"go-wave-survivor/internal/defs"
	"go-wave-survivor/internal/entity"
	"go-wave-survivor/internal/event"
	"go-wave-survivor/internal/physics"
	"go-wave-survivor/internal/run"
	"go-wave-survivor/internal/shop"
	"go-wave-survivor/internal/stats"
	"go-wave-survivor/internal/utils"
)

// Phase is a step of the run lifecycle.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseCharacterSelect
	PhaseWeaponSelect
	PhaseCombat
	PhaseShop
	PhaseDefeated
	PhaseQuit
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhaseCharacterSelect:
		return "CharacterSelect"
	case PhaseWeaponSelect:
		return "WeaponSelect"
	case PhaseCombat:
		return "Combat"
	case PhaseShop:
		return "Shop"
	case PhaseDefeated:
		return "Defeated"
	case PhaseQuit:
		return "Quit"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Session owns the active run and drives it through its phases.
// Every method is meant to be called from the single game loop goroutine.
type Session struct {
	lib             *defs.Library
	store           run.Store
	eventDispatcher *event.Dispatcher
	economy         *shop.Engine
	game            *Game

	phase     Phase
	run       *run.RunState
	character *defs.Character
	nowMs     float64

	// переходы, запрошенные событиями во время тика, применяются после него
	waveEnded bool
	defeated  bool
}

// NewSession creates a session in the Menu phase.
func NewSession(lib *defs.Library, store run.Store, rng *utils.PRNGService, detector physics.OverlapDetector) *Session {
	if detector == nil {
		detector = physics.CircleOverlap{}
	}
	s := &Session{
		lib:             lib,
		store:           store,
		eventDispatcher: event.NewDispatcher(),
		economy:         shop.NewEngine(lib, rng),
		phase:           PhaseMenu,
	}
	s.game = NewGame(lib, rng, s, s.eventDispatcher, detector)

	listener := &sessionEventListener{session: s}
	s.eventDispatcher.Subscribe(event.WaveEnded, listener)
	s.eventDispatcher.Subscribe(event.PlayerDefeated, listener)
	s.eventDispatcher.Subscribe(event.PlayerDamaged, listener)
	s.eventDispatcher.Subscribe(event.PickupCollected, listener)
	return s
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Events returns the dispatcher the presentation layer subscribes to.
func (s *Session) Events() *event.Dispatcher { return s.eventDispatcher }

// Entities exposes the combat world for drawing. Callers must not mutate it.
func (s *Session) Entities() *entity.ECS { return s.game.ECS }

// Library returns the content definitions.
func (s *Session) Library() *defs.Library { return s.lib }

// Character returns the hero of the current or pending run.
func (s *Session) Character() *defs.Character { return s.character }

// Run implements interfaces.RunContext.
func (s *Session) Run() *run.RunState { return s.run }

// Stats returns the effective stats of the active run.
func (s *Session) Stats() defs.StatVector {
	if s.run == nil {
		return stats.Base()
	}
	return stats.Effective(s.character, s.run.Stats)
}

func (s *Session) setPhase(p Phase) {
	if s.phase == p {
		return
	}
	log.Printf("Session: %s -> %s", s.phase, p)
	s.phase = p
}

// --- Run creation ---

// NewRun opens character selection from the menu.
func (s *Session) NewRun() bool {
	if s.phase != PhaseMenu {
		return false
	}
	s.character = nil
	s.run = nil
	s.setPhase(PhaseCharacterSelect)
	return true
}

// ConfirmCharacter picks the hero for the new run.
func (s *Session) ConfirmCharacter(id string) bool {
	if s.phase != PhaseCharacterSelect {
		return false
	}
	c, ok := s.lib.Character(id)
	if !ok {
		return false
	}
	s.character = c
	s.setPhase(PhaseWeaponSelect)
	return true
}

// ConfirmWeapon creates the run with the chosen starting weapon and enters combat.
// An empty id falls back to the character's default weapon.
func (s *Session) ConfirmWeapon(id string) bool {
	if s.phase != PhaseWeaponSelect || s.character == nil {
		return false
	}
	if id == "" {
		id = s.character.StartingWeaponID
	}
	if _, ok := s.lib.Weapon(id); !ok {
		return false
	}
	raw := stats.Raw(s.character, nil)
	s.run = run.New(s.character.ID, raw, run.WeaponRecord{WeaponID: id, InstanceID: uuid.NewString()})
	log.Printf("Session: new run as %s with %s", s.character.ID, id)
	s.persist()
	s.startCombat()
	return true
}

// CanContinue reports whether the store holds a loadable run.
func (s *Session) CanContinue() bool {
	_, err := run.Load(s.store)
	return err == nil
}

// Continue replaces the active run with the saved one. A mid-shop save
// resumes in the shop without rerolling; otherwise the saved wave restarts.
func (s *Session) Continue() bool {
	if s.phase != PhaseMenu {
		return false
	}
	rs, err := run.Load(s.store)
	if err != nil {
		if !errors.Is(err, run.ErrNoSave) {
			log.Printf("Session: saved run ignored: %v", err)
		}
		return false
	}
	c, ok := s.lib.Character(rs.CharacterID)
	if !ok {
		log.Printf("Session: saved run ignored: unknown character %q", rs.CharacterID)
		return false
	}
	s.run = rs
	s.character = c
	if rs.InShop {
		s.game.Clear()
		s.setPhase(PhaseShop)
		return true
	}
	s.startCombat()
	return true
}

// --- Combat ---

func (s *Session) startCombat() {
	s.run.CurrentHP = s.Stats()[defs.StatMaxHP]
	s.waveEnded, s.defeated = false, false
	s.game.StartWave(s.run.Wave, s.run.Weapons, s.nowMs)
	s.setPhase(PhaseCombat)
}

// Update advances combat by one frame. deltaMs is clamped to MaxDeltaMs.
func (s *Session) Update(nowMs, deltaMs float64, move physics.Vec2) {
	s.nowMs = nowMs
	if s.phase != PhaseCombat {
		return
	}
	if deltaMs > config.MaxDeltaMs {
		deltaMs = config.MaxDeltaMs
	}
	if deltaMs < 0 {
		deltaMs = 0
	}
	s.game.Update(nowMs, deltaMs, move)

	switch {
	case s.defeated:
		s.defeated = false
		s.setPhase(PhaseDefeated)
	case s.waveEnded:
		s.waveEnded = false
		s.enterShop()
	}
}

// NowMs returns the combat clock as of the last Update.
func (s *Session) NowMs() float64 { return s.nowMs }

// TimeRemainingMs returns what is left of the current wave.
func (s *Session) TimeRemainingMs() float64 {
	return s.game.WaveSystem.TimeRemainingMs()
}

func (s *Session) enterShop() {
	s.game.Clear()
	s.run.Wave++
	s.run.InShop = true
	s.economy.EnterWave(s.run)
	s.persist()
	s.setPhase(PhaseShop)
}

// --- Shop ---

// Buy purchases the offer in slot i.
func (s *Session) Buy(i int) bool {
	if s.phase != PhaseShop {
		return false
	}
	_, price, _ := s.run.ShopState.Slot(i)
	offer, ok := s.economy.Buy(s.run, i)
	if !ok {
		return false
	}
	s.persist()
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ItemPurchased,
		Data: event.ItemPurchasedData{Slot: i, ItemID: offer.ID, Price: price},
	})
	return true
}

// Lock toggles the lock of slot i.
func (s *Session) Lock(i int) bool {
	if s.phase != PhaseShop || !s.economy.ToggleLock(s.run, i) {
		return false
	}
	s.persist()
	return true
}

// Reroll performs a paid reroll.
func (s *Session) Reroll() bool {
	if s.phase != PhaseShop || !s.economy.PaidReroll(s.run) {
		return false
	}
	s.persist()
	return true
}

// ConfirmNextWave leaves the shop and starts the next wave at full HP.
func (s *Session) ConfirmNextWave() bool {
	if s.phase != PhaseShop {
		return false
	}
	s.run.InShop = false
	s.persist()
	s.startCombat()
	return true
}

// --- Exit ---

// Quit leaves the run. The save keeps the last persisted boundary.
func (s *Session) Quit() {
	s.setPhase(PhaseQuit)
}

// ReturnToMenu drops the in-memory run; the save is left untouched.
func (s *Session) ReturnToMenu() {
	s.game.Clear()
	s.run = nil
	s.character = nil
	s.setPhase(PhaseMenu)
}

func (s *Session) persist() {
	if s.run == nil {
		return
	}
	if err := run.Save(s.store, s.run); err != nil {
		log.Printf("Session: save failed: %v", err)
	}
}

// --- defs.HookHost ---

func (s *Session) PlayerPosition() (float64, float64) {
	return s.game.PlayerPosition()
}

func (s *Session) NearestEnemy(maxDist float64) (float64, float64, bool) {
	return s.game.NearestEnemy(maxDist)
}

func (s *Session) SpawnProjectile(spec defs.ProjectileSpec) {
	x, y := s.game.PlayerPosition()
	s.game.ProjectileSystem.Spawn(s.nowMs, x, y, spec)
}

func (s *Session) RequestSound(key string) {
	s.eventDispatcher.Dispatch(event.Event{Type: event.SoundRequested, Data: key})
}

// sessionEventListener routes combat events to the session and the character hooks.
type sessionEventListener struct {
	session *Session
}

func (l *sessionEventListener) OnEvent(e event.Event) {
	s := l.session
	switch e.Type {
	case event.WaveEnded:
		s.waveEnded = true
	case event.PlayerDefeated:
		log.Printf("Session: player defeated on wave %d", s.run.Wave)
		s.defeated = true
	case event.PlayerDamaged:
		data, ok := e.Data.(event.PlayerDamagedData)
		if ok && s.character.HasDamageHook() {
			s.character.OnDamageTaken(s, s.character, data.Amount)
		}
	case event.PickupCollected:
		data, ok := e.Data.(event.PickupCollectedData)
		if ok && s.character.HasCollectHook() {
			s.character.OnCollect(s, s.character, data.Value)
		}
	}
}

// --- Read-only views ---

// SlotView describes one shop slot for display.
type SlotView struct {
	Empty    bool
	ID       string
	Name     string
	Price    int
	Locked   bool
	IsWeapon bool
}

// Snapshot is a read-only copy of what the HUD and shop screens show.
type Snapshot struct {
	Phase           Phase
	CharacterID     string
	HP              float64
	MaxHP           float64
	Currency        int
	Wave            int
	XP              int
	Level           int
	TimeRemainingMs float64
	RerollPrice     int
	Slots           [config.ShopSlots]SlotView
	Stats           defs.StatVector
	Items           []string
	WeaponCount     int
}

// Snapshot returns the current state for presentation.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{Phase: s.phase}
	if s.run == nil {
		for i := range snap.Slots {
			snap.Slots[i].Empty = true
		}
		return snap
	}
	st := s.Stats()
	snap.CharacterID = s.run.CharacterID
	snap.HP = s.run.CurrentHP
	snap.MaxHP = st[defs.StatMaxHP]
	snap.Currency = s.run.Currency
	snap.Wave = s.run.Wave
	snap.XP = s.run.XP
	snap.Level = s.run.Level
	snap.RerollPrice = s.run.RerollPrice
	snap.Stats = st
	snap.Items = append([]string{}, s.run.Items...)
	snap.WeaponCount = len(s.run.Weapons)
	if s.phase == PhaseCombat {
		snap.TimeRemainingMs = s.TimeRemainingMs()
	}
	for i := range snap.Slots {
		id, price, ok := s.run.ShopState.Slot(i)
		if !ok {
			snap.Slots[i] = SlotView{Empty: true}
			continue
		}
		view := SlotView{ID: id, Name: id, Price: price, Locked: s.run.ShopState.IsLocked(i)}
		if offer, found := s.lib.Offer(id); found {
			view.Name = offer.Name
			view.IsWeapon = offer.IsWeapon()
		}
		snap.Slots[i] = view
	}
	return snap
}

// WeaponView is one equipped weapon instance as drawn around the player.
type WeaponView struct {
	DefID      string
	InstanceID string
	Angle      float64
	// Ready is the cooldown progress in [0, 1].
	Ready float64
}

// Weapons lists the active weapon instances.
func (s *Session) Weapons() []WeaponView {
	st := s.Stats()
	instances := s.game.WeaponSystem.Instances()
	out := make([]WeaponView, 0, len(instances))
	for _, w := range instances {
		out = append(out, weaponView(w, s.lib, st, s.nowMs))
	}
	return out
}

func weaponView(w component.WeaponInstance, lib *defs.Library, st defs.StatVector, nowMs float64) WeaponView {
	v := WeaponView{DefID: w.DefID, InstanceID: w.InstanceID, Angle: w.Angle, Ready: 1}
	if def, ok := lib.Weapon(w.DefID); ok {
		cd := stats.WeaponCooldown(def.Stats, st)
		v.Ready = utils.Clamp((nowMs-w.LastFiredAtMs)/cd, 0, 1)
	}
	return v
}

var _ defs.HookHost = (*Session)(nil)
