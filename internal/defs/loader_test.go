package defs

import (
	"math"
	"strings"
	"testing"
)

func TestDefaultLibrary(t *testing.T) {
	lib, err := DefaultLibrary()
	if err != nil {
		t.Fatalf("DefaultLibrary: %v", err)
	}

	if got := len(lib.Characters()); got != 3 {
		t.Errorf("characters = %d, want 3", got)
	}
	if got := len(lib.Pool()); got != 10 {
		t.Errorf("pool size = %d, want 10", got)
	}

	osaka, ok := lib.Character("osaka")
	if !ok {
		t.Fatal("osaka not found")
	}
	if osaka.Passive == nil || osaka.OnCollect == nil || osaka.HasDamageHook() {
		t.Errorf("osaka hooks not bound as declared")
	}
	miku, _ := lib.Character("miku")
	if !miku.HasDamageHook() {
		t.Errorf("miku has no damage hook")
	}

	offer, ok := lib.Offer("pistol")
	if !ok || !offer.IsWeapon() {
		t.Errorf("pistol offer = %+v, %v", offer, ok)
	}
	offer, ok = lib.Offer("armor_plate")
	if !ok || offer.IsWeapon() || offer.BasePrice != 20 {
		t.Errorf("armor_plate offer = %+v, %v", offer, ok)
	}
	if _, ok := lib.Offer("missing"); ok {
		t.Error("unknown offer resolved")
	}
}

func TestLoadLibraryRejects(t *testing.T) {
	const weapon = `
weapons:
  - id: stick
    name: Stick
    base_price: 10
    type: Melee
    stats: { damage: 8, cooldown_ms: 1000, range: 150 }
`
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "items: [", "unmarshal"},
		{"empty", "items: []", "no items or weapons"},
		{"unknown stat", "items:\n  - id: x\n    modifiers:\n      - { stat: mana, value: 1 }\n", "unknown stat"},
		{"negative price", "items:\n  - id: x\n    base_price: -1\n", "negative base price"},
		{"bad weapon type", "weapons:\n  - id: w\n    type: Magic\n    stats: { cooldown_ms: 100 }\n", "unknown weapon type"},
		{"zero cooldown", "weapons:\n  - id: w\n    type: Melee\n", "cooldown must be positive"},
		{"duplicate id", weapon + "items:\n  - id: stick\n", "duplicate offer id"},
		{"unknown starting weapon", weapon + "characters:\n  - id: c\n    starting_weapon: axe\n", "unknown starting weapon"},
		{"unknown hook", weapon + "characters:\n  - id: c\n    on_collect: jingle\n", "unknown collect hook"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadLibrary([]byte(tt.content), DefaultHooks())
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestDodgeFromMaxHP(t *testing.T) {
	tests := []struct {
		maxHP float64
		want  float64
	}{
		{0, 0},
		{25, 30},
		{20, 60.0 * 40 / 90},
	}
	for _, tt := range tests {
		if got := DodgeFromMaxHP(tt.maxHP); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DodgeFromMaxHP(%v) = %v, want %v", tt.maxHP, got, tt.want)
		}
	}
	if got := DodgeFromMaxHP(1e9); got >= 60 {
		t.Errorf("DodgeFromMaxHP(huge) = %v, want < 60", got)
	}
}

func TestStatVectorNormalize(t *testing.T) {
	v := StatVector{StatArmor: 3, "mana": 7}
	n := v.Normalize()
	if len(n) != len(AllStats) {
		t.Errorf("normalized keys = %d, want %d", len(n), len(AllStats))
	}
	if n[StatArmor] != 3 {
		t.Errorf("armor = %v, want 3", n[StatArmor])
	}
	if _, ok := n["mana"]; ok {
		t.Error("unknown key survived Normalize")
	}
}
