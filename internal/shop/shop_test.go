package shop

import (
	"testing"

	"go-wave-survivor/internal/config"
	"go-wave-survivor/internal/defs"
	"go-wave-survivor/internal/run"
	"go-wave-survivor/internal/stats"
	"go-wave-survivor/internal/utils"
)

func newTestEngine(t *testing.T) (*Engine, *run.RunState) {
	t.Helper()
	lib := defs.MustDefaultLibrary()
	e := NewEngine(lib, utils.NewPRNGService(42))
	n := 0
	e.newID = func() string {
		n++
		return "w-" + string(rune('0'+n))
	}
	rs := run.New("teto_classic", stats.Base(), run.WeaponRecord{WeaponID: "stick", InstanceID: "w-0"})
	return e, rs
}

func TestPriceRangeWaveZero(t *testing.T) {
	rng := utils.NewPRNGService(7)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		p := Price(10, 0, rng)
		if p < 5 || p > 15 {
			t.Fatalf("Price(10, 0) = %d, want in [5, 15]", p)
		}
		seen[p] = true
	}
	if len(seen) < 5 {
		t.Fatalf("jitter too narrow: only %d distinct prices", len(seen))
	}
}

func TestPriceNeverBelowOne(t *testing.T) {
	rng := utils.NewPRNGService(3)
	for i := 0; i < 500; i++ {
		if p := Price(0, 1, rng); p < 1 {
			t.Fatalf("Price(0, 1) = %d", p)
		}
	}
}

func TestEnterWaveFillsUnlockedSlots(t *testing.T) {
	e, rs := newTestEngine(t)
	rs.ShopState.Set(1, "scope", 99)
	rs.ShopState.Locks[1] = true

	e.EnterWave(rs)

	for i := 0; i < config.ShopSlots; i++ {
		if rs.ShopState.IsEmpty(i) {
			t.Fatalf("slot %d empty after EnterWave", i)
		}
	}
	if id, price, _ := rs.ShopState.Slot(1); id != "scope" || price != 99 {
		t.Fatalf("locked slot changed to (%s, %d)", id, price)
	}
	if rs.Currency != 0 || rs.RerollPrice != config.InitialRerollPrice {
		t.Fatal("free reroll must not charge")
	}
}

func TestPaidReroll(t *testing.T) {
	e, rs := newTestEngine(t)
	e.EnterWave(rs)

	rs.Currency = 10
	rs.RerollPrice = 3
	if !e.PaidReroll(rs) {
		t.Fatal("reroll with enough currency refused")
	}
	if rs.Currency != 7 || rs.RerollPrice != 4 {
		t.Fatalf("currency=%d rerollPrice=%d, want 7 and 4", rs.Currency, rs.RerollPrice)
	}

	rs.Currency = 3
	before := rs.Clone()
	if e.PaidReroll(rs) {
		t.Fatal("reroll without funds applied")
	}
	if rs.Currency != 3 || rs.RerollPrice != 4 {
		t.Fatal("failed reroll mutated the run")
	}
	for i := 0; i < config.ShopSlots; i++ {
		a, _, _ := before.ShopState.Slot(i)
		b, _, _ := rs.ShopState.Slot(i)
		if a != b {
			t.Fatalf("slot %d changed on failed reroll", i)
		}
	}
}

func TestPaidRerollFreeWhenShopEmpty(t *testing.T) {
	e, rs := newTestEngine(t)
	rs.RerollPrice = 5
	if !e.PaidReroll(rs) {
		t.Fatal("reroll of an empty shop refused")
	}
	if rs.Currency != 0 || rs.RerollPrice != 5 {
		t.Fatalf("empty-shop reroll charged: currency=%d price=%d", rs.Currency, rs.RerollPrice)
	}
	if rs.ShopState.AllEmpty() {
		t.Fatal("shop still empty")
	}
}

func TestBuyItemAppliesModifiers(t *testing.T) {
	e, rs := newTestEngine(t)
	rs.Currency = 20
	rs.ShopState.Set(0, "armor_plate", 20)
	armorBefore := rs.Stats[defs.StatArmor]

	offer, ok := e.Buy(rs, 0)
	if !ok || offer.ID != "armor_plate" {
		t.Fatalf("Buy = (%v, %v)", offer.ID, ok)
	}
	if rs.Currency != 0 {
		t.Fatalf("currency = %d, want 0", rs.Currency)
	}
	if rs.Stats[defs.StatArmor] != armorBefore+3 {
		t.Fatalf("armor = %v, want %v", rs.Stats[defs.StatArmor], armorBefore+3)
	}
	if !rs.ShopState.IsEmpty(0) || rs.ShopState.IsLocked(0) {
		t.Fatal("slot not cleared after purchase")
	}
	if len(rs.Items) != 1 || rs.Items[0] != "armor_plate" {
		t.Fatalf("items = %v", rs.Items)
	}
}

func TestBuyRejections(t *testing.T) {
	e, rs := newTestEngine(t)

	if _, ok := e.Buy(rs, 0); ok {
		t.Fatal("bought from an empty slot")
	}

	rs.ShopState.Set(1, "scope", 60)
	rs.Currency = 59
	if _, ok := e.Buy(rs, 1); ok {
		t.Fatal("bought without enough currency")
	}
	if rs.Currency != 59 || rs.ShopState.IsEmpty(1) {
		t.Fatal("rejected purchase mutated the run")
	}

	for len(rs.Weapons) < config.MaxWeapons {
		rs.Weapons = append(rs.Weapons, run.WeaponRecord{WeaponID: "stick", InstanceID: "x"})
	}
	rs.ShopState.Set(2, "pistol", 1)
	rs.Currency = 100
	if _, ok := e.Buy(rs, 2); ok {
		t.Fatal("bought a 13th weapon")
	}
	if len(rs.Weapons) != config.MaxWeapons {
		t.Fatalf("weapons = %d", len(rs.Weapons))
	}
}

func TestBuyWeaponAddsInstance(t *testing.T) {
	e, rs := newTestEngine(t)
	rs.Currency = 50
	rs.ShopState.Set(3, "pistol", 17)

	if _, ok := e.Buy(rs, 3); !ok {
		t.Fatal("weapon purchase refused")
	}
	if rs.Currency != 33 {
		t.Fatalf("currency = %d, want 33", rs.Currency)
	}
	last := rs.Weapons[len(rs.Weapons)-1]
	if last.WeaponID != "pistol" || last.InstanceID == "" || last.InstanceID == "w-0" {
		t.Fatalf("new weapon record %+v", last)
	}
}

func TestToggleLock(t *testing.T) {
	e, rs := newTestEngine(t)
	if e.ToggleLock(rs, 0) {
		t.Fatal("locked an empty slot")
	}
	rs.ShopState.Set(0, "coffee", 15)
	if !e.ToggleLock(rs, 0) || !rs.ShopState.IsLocked(0) {
		t.Fatal("lock not set")
	}
	if !e.ToggleLock(rs, 0) || rs.ShopState.IsLocked(0) {
		t.Fatal("lock not cleared")
	}
}

func TestDefaultEngineUsesUUID(t *testing.T) {
	e := NewEngine(defs.MustDefaultLibrary(), utils.NewPRNGService(1))
	rs := run.New("teto_classic", stats.Base(), run.WeaponRecord{})
	rs.Currency = 100
	rs.ShopState.Set(0, "stick", 1)
	if _, ok := e.Buy(rs, 0); !ok {
		t.Fatal("purchase refused")
	}
	if id := rs.Weapons[0].InstanceID; len(id) != 36 {
		t.Fatalf("instanceId %q is not a UUID", id)
	}
}
