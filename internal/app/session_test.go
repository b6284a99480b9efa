package app

import (
	"errors"
	"testing"

	"go-wave-survivor/internal/defs"
	"go-wave-survivor/internal/event"
	"go-wave-survivor/internal/physics"
	"go-wave-survivor/internal/run"
	"go-wave-survivor/internal/run/mocks"
	"go-wave-survivor/internal/system"
	"go-wave-survivor/internal/utils"
	"go.uber.org/mock/gomock"
)

func newSession(t *testing.T, store run.Store) *Session {
	t.Helper()
	return NewSession(defs.MustDefaultLibrary(), store, utils.NewPRNGService(17), nil)
}

func startRun(t *testing.T, s *Session, character, weapon string) {
	t.Helper()
	if !s.NewRun() || !s.ConfirmCharacter(character) || !s.ConfirmWeapon(weapon) {
		t.Fatalf("could not start run as %s with %s", character, weapon)
	}
	if s.Phase() != PhaseCombat {
		t.Fatalf("phase = %v, want Combat", s.Phase())
	}
}

// endWave forces the wave timer to expire on the next tick.
func endWave(s *Session, now float64) {
	s.game.ECS.Wave.ElapsedMs = 1e9
	s.Update(now, 0, physics.Vec2{})
}

func TestNewRunStartsAtFullHP(t *testing.T) {
	store := run.NewMemoryStore()
	s := newSession(t, store)
	startRun(t, s, "osaka", "pistol")

	snap := s.Snapshot()
	if snap.MaxHP != 20 || snap.HP != 20 {
		t.Fatalf("hp %v/%v, want 20/20", snap.HP, snap.MaxHP)
	}
	if snap.Wave != 1 || snap.Currency != 0 {
		t.Fatalf("wave=%d currency=%d", snap.Wave, snap.Currency)
	}
	if store.Writes != 1 {
		t.Fatalf("run creation wrote %d times, want 1", store.Writes)
	}
	if ws := s.Weapons(); len(ws) != 1 || ws[0].DefID != "pistol" || ws[0].InstanceID == "" {
		t.Fatalf("weapons = %+v", ws)
	}
}

func TestPhaseGuards(t *testing.T) {
	s := newSession(t, run.NewMemoryStore())
	if s.Buy(0) || s.Lock(0) || s.Reroll() || s.ConfirmNextWave() {
		t.Fatal("shop action accepted in Menu")
	}
	if s.ConfirmCharacter("osaka") {
		t.Fatal("character confirmed outside CharacterSelect")
	}
	s.NewRun()
	if s.ConfirmCharacter("nobody") {
		t.Fatal("unknown character accepted")
	}
	s.ConfirmCharacter("osaka")
	if s.ConfirmWeapon("nothing") {
		t.Fatal("unknown weapon accepted")
	}
	if !s.ConfirmWeapon("") {
		t.Fatal("default starting weapon refused")
	}
	if ws := s.Weapons(); ws[0].DefID != "pistol" {
		t.Fatalf("default weapon %s, want pistol", ws[0].DefID)
	}
	if s.ConfirmNextWave() {
		t.Fatal("next wave confirmed during combat")
	}
}

func TestWaveEndEntersShopAndPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var last []byte
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().Write(gomock.Any()).DoAndReturn(func(data []byte) error {
		last = data
		return nil
	}).Times(2)

	s := newSession(t, store)
	ended := 0
	s.Events().SubscribeFunc(event.WaveEnded, func(event.Event) { ended++ })
	startRun(t, s, "teto_classic", "stick")

	endWave(s, 16)

	if s.Phase() != PhaseShop || ended != 1 {
		t.Fatalf("phase %v, WaveEnded %d", s.Phase(), ended)
	}
	saved, err := run.Decode(last)
	if err != nil {
		t.Fatalf("decode last save: %v", err)
	}
	if !saved.InShop || saved.Wave != 2 {
		t.Fatalf("saved inShop=%v wave=%d", saved.InShop, saved.Wave)
	}
	if saved.ShopState.AllEmpty() {
		t.Fatal("shop not rolled on entry")
	}
	if len(s.Entities().Enemies) != 0 || len(s.Entities().Projectiles) != 0 {
		t.Fatal("combat entities left after wave end")
	}
}

func TestShopMutationsWriteThrough(t *testing.T) {
	store := run.NewMemoryStore()
	s := newSession(t, store)
	startRun(t, s, "teto_classic", "stick")
	endWave(s, 16)
	writes := store.Writes

	s.run.Currency = 1000
	purchased := -1
	s.Events().SubscribeFunc(event.ItemPurchased, func(e event.Event) {
		purchased = e.Data.(event.ItemPurchasedData).Slot
	})

	if !s.Lock(1) {
		t.Fatal("lock refused")
	}
	if !s.Reroll() {
		t.Fatal("reroll refused")
	}
	if !s.Buy(2) {
		t.Fatal("buy refused")
	}
	if purchased != 2 {
		t.Fatalf("ItemPurchased slot = %d, want 2", purchased)
	}
	if store.Writes != writes+3 {
		t.Fatalf("writes = %d, want %d", store.Writes, writes+3)
	}
	if s.Buy(2) {
		t.Fatal("bought from an emptied slot")
	}
	if store.Writes != writes+3 {
		t.Fatal("rejected purchase was persisted")
	}

	if !s.ConfirmNextWave() || s.Phase() != PhaseCombat {
		t.Fatal("next wave not started")
	}
	saved, _ := run.Load(store)
	if saved.InShop {
		t.Fatal("inShop still set after confirming next wave")
	}
	if snap := s.Snapshot(); snap.HP != snap.MaxHP || snap.Wave != 2 {
		t.Fatalf("next wave snapshot %+v", snap)
	}
}

func TestContinueMidShopKeepsSlots(t *testing.T) {
	store := run.NewMemoryStore()
	first := newSession(t, store)
	startRun(t, first, "teto_classic", "stick")
	endWave(first, 16)
	want := first.Snapshot().Slots

	s := newSession(t, store)
	if !s.CanContinue() || !s.Continue() {
		t.Fatal("continue refused")
	}
	if s.Phase() != PhaseShop {
		t.Fatalf("phase = %v, want Shop", s.Phase())
	}
	if got := s.Snapshot().Slots; got != want {
		t.Fatalf("slots rerolled on resume:\n got %+v\nwant %+v", got, want)
	}
}

func TestContinueMidCombatRestoresFullHP(t *testing.T) {
	store := run.NewMemoryStore()
	rs := run.New("osaka", func() defs.StatVector {
		v := defs.NewStatVector()
		v[defs.StatMaxHP] = 20
		return v
	}(), run.WeaponRecord{WeaponID: "pistol", InstanceID: "x"})
	rs.CurrentHP = 3
	rs.Wave = 4
	if err := run.Save(store, rs); err != nil {
		t.Fatal(err)
	}

	s := newSession(t, store)
	if !s.Continue() || s.Phase() != PhaseCombat {
		t.Fatalf("continue: phase %v", s.Phase())
	}
	if snap := s.Snapshot(); snap.HP != 20 || snap.Wave != 4 {
		t.Fatalf("resumed hp=%v wave=%d", snap.HP, snap.Wave)
	}
}

func TestContinueWithMalformedSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	store.EXPECT().Read().Return([]byte(`{"version":1,"activeRun":{"wave":"x"}}`), nil).AnyTimes()

	s := newSession(t, store)
	if s.CanContinue() || s.Continue() {
		t.Fatal("malformed save treated as an active run")
	}
	if s.Phase() != PhaseMenu {
		t.Fatalf("phase = %v", s.Phase())
	}
}

func TestContinueWithStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	store.EXPECT().Read().Return(nil, errors.New("permission denied"))

	if newSession(t, store).Continue() {
		t.Fatal("continue succeeded on a store error")
	}
}

func TestDefeatKeepsSave(t *testing.T) {
	store := run.NewMemoryStore()
	s := newSession(t, store)
	startRun(t, s, "teto_classic", "stick")
	writes := store.Writes

	defeated := 0
	s.Events().SubscribeFunc(event.PlayerDefeated, func(event.Event) { defeated++ })
	s.run.CurrentHP = 1
	px, py := s.PlayerPosition()
	s.game.WaveSystem.SpawnEnemyAt(px, py, system.EnemyStats{HP: 1000, Damage: 5, Speed: 0, XPValue: 1})

	s.Update(16, 16, physics.Vec2{})
	s.Update(1000, 16, physics.Vec2{})

	if s.Phase() != PhaseDefeated || defeated != 1 {
		t.Fatalf("phase %v, defeated events %d", s.Phase(), defeated)
	}
	if store.Writes != writes {
		t.Fatal("defeat wrote to the store")
	}
	if !s.CanContinue() {
		t.Fatal("save deleted on defeat")
	}
	s.ReturnToMenu()
	if s.Phase() != PhaseMenu || s.Run() != nil {
		t.Fatal("ReturnToMenu kept the run")
	}
}

func TestCounterBeamOnDamage(t *testing.T) {
	s := newSession(t, run.NewMemoryStore())
	startRun(t, s, "miku", "pistol")
	s.run.CurrentHP = 100
	px, py := s.PlayerPosition()
	s.game.WaveSystem.SpawnEnemyAt(px+400, py, system.EnemyStats{HP: 1000, XPValue: 1})

	if got := s.game.CombatSystem.DamagePlayer(0, 1); got != system.OutcomeApplied {
		t.Fatalf("outcome %v", got)
	}

	beams := 0
	for _, p := range s.Entities().Projectiles {
		if p.Kind == "beam" {
			beams++
			if p.Damage != 3 || p.Pierce != 99 {
				t.Fatalf("beam damage=%v pierce=%d, want 3 and 99", p.Damage, p.Pierce)
			}
		}
	}
	if beams != 1 {
		t.Fatalf("beams = %d, want 1", beams)
	}
}

func TestCollectRequestsCharacterSound(t *testing.T) {
	s := newSession(t, run.NewMemoryStore())
	startRun(t, s, "osaka", "pistol")

	var sounds []string
	s.Events().SubscribeFunc(event.SoundRequested, func(e event.Event) {
		sounds = append(sounds, e.Data.(string))
	})
	px, py := s.PlayerPosition()
	s.game.PickupSystem.SpawnAt(px, py, 3)
	s.Update(16, 16, physics.Vec2{})

	if len(sounds) != 1 || sounds[0] != "osaka-mat-audio" {
		t.Fatalf("sounds = %v", sounds)
	}
	if snap := s.Snapshot(); snap.Currency != 3 || snap.XP != 3 {
		t.Fatalf("currency=%d xp=%d", snap.Currency, snap.XP)
	}
}

func TestUpdateClampsDelta(t *testing.T) {
	s := newSession(t, run.NewMemoryStore())
	startRun(t, s, "teto_classic", "stick")
	s.Update(5000, 5000, physics.Vec2{})
	if left := s.TimeRemainingMs(); left != 30000-60 {
		t.Fatalf("time remaining %v, want %v", left, 30000-60)
	}
}
