package stats

import (
	"math"
	"testing"

	"go-wave-survivor/internal/defs"
)

func TestArmorReduction(t *testing.T) {
	if got := ArmorReduction(0); got != 0 {
		t.Fatalf("ArmorReduction(0) = %v, want 0", got)
	}
	if got := ArmorReduction(15); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("ArmorReduction(15) = %v, want 0.5", got)
	}
	prev := 0.0
	for a := 1.0; a <= 200; a++ {
		r := ArmorReduction(a)
		if r <= prev || r >= 1 {
			t.Fatalf("ArmorReduction(%v) = %v, want in (%v, 1)", a, r, prev)
		}
		prev = r
	}
}

func TestArmorMultiplier(t *testing.T) {
	if got := ArmorMultiplier(0); got != 1 {
		t.Fatalf("ArmorMultiplier(0) = %v, want 1", got)
	}
	if got := ArmorMultiplier(-15); math.Abs(got-1.5) > 1e-9 {
		t.Fatalf("ArmorMultiplier(-15) = %v, want 1.5", got)
	}
	for _, a := range []float64{-1, -5, -30, -1000} {
		m := ArmorMultiplier(a)
		if m <= 1 || m >= 2 {
			t.Errorf("ArmorMultiplier(%v) = %v, want in (1, 2)", a, m)
		}
	}
	if got := ArmorMultiplier(15); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("ArmorMultiplier(15) = %v, want 0.5", got)
	}
}

func TestWeaponCooldown(t *testing.T) {
	ws := defs.WeaponStats{CooldownMs: 1000}
	tests := []struct {
		attackSpeed float64
		want        float64
	}{
		{0, 1000},
		{100, 500},
		{-50, 2000},
		{-95, 10000},
		{-500, 10000},
	}
	for _, tt := range tests {
		s := defs.NewStatVector()
		s[defs.StatAttackSpeed] = tt.attackSpeed
		if got := WeaponCooldown(ws, s); math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("attackSpeed %v: cooldown = %v, want %v", tt.attackSpeed, got, tt.want)
		}
	}
}

func TestWeaponDamage(t *testing.T) {
	ws := defs.WeaponStats{
		Damage:  10,
		Scaling: map[defs.StatType]float64{defs.StatMeleeDamage: 0.5},
	}
	s := defs.NewStatVector()
	s[defs.StatMeleeDamage] = 5
	s[defs.StatDamage] = 20
	// (10 + 2.5) * 1.2 = 15
	if got := WeaponDamage(ws, s); got != 15 {
		t.Fatalf("WeaponDamage = %v, want 15", got)
	}

	s[defs.StatDamage] = -200
	if got := WeaponDamage(ws, s); got != 1 {
		t.Fatalf("WeaponDamage with -200%% damage = %v, want floor of 1", got)
	}
}

func TestComposeAppliesPassiveOnTopOfRaw(t *testing.T) {
	lib := defs.MustDefaultLibrary()
	osaka, ok := lib.Character("osaka")
	if !ok {
		t.Fatal("osaka missing from default library")
	}

	raw := Raw(osaka, nil)
	if raw[defs.StatMaxHP] != 20 {
		t.Fatalf("raw maxHp = %v, want 20", raw[defs.StatMaxHP])
	}
	if raw[defs.StatDodgeChance] != 0 {
		t.Fatalf("raw dodge = %v, passive must not leak into raw stats", raw[defs.StatDodgeChance])
	}

	eff := Effective(osaka, raw)
	want := defs.DodgeFromMaxHP(20)
	if math.Abs(eff[defs.StatDodgeChance]-want) > 1e-9 {
		t.Fatalf("effective dodge = %v, want %v", eff[defs.StatDodgeChance], want)
	}
	if raw[defs.StatDodgeChance] != 0 {
		t.Fatal("Effective mutated its input")
	}

	// повторное применение не накапливается
	again := Effective(osaka, raw)
	if again[defs.StatDodgeChance] != eff[defs.StatDodgeChance] {
		t.Fatalf("passive applied twice: %v vs %v", again[defs.StatDodgeChance], eff[defs.StatDodgeChance])
	}
}

func TestRawSumsItemModifiers(t *testing.T) {
	items := []defs.Item{
		{ID: "a", Modifiers: []defs.StatModifier{{Stat: defs.StatArmor, Value: 3}}},
		{ID: "b", Modifiers: []defs.StatModifier{{Stat: defs.StatArmor, Value: -1}, {Stat: defs.StatSpeed, Value: 10}}},
	}
	v := Raw(nil, items)
	if v[defs.StatArmor] != 2 || v[defs.StatSpeed] != 10 {
		t.Fatalf("armor=%v speed=%v, want 2 and 10", v[defs.StatArmor], v[defs.StatSpeed])
	}
	if got := MoveSpeed(v); math.Abs(got-220) > 1e-9 {
		t.Fatalf("MoveSpeed = %v, want 220", MoveSpeed(v))
	}
}
