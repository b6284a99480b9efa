// Package stats derives effective combat values from a stat vector.
// Every function is pure: values are recomputed from the vector on each call.
package stats

import (
	"math"

	"go-wave-survivor/internal/config"
	"go-wave-survivor/internal/defs"
)

// Base returns the default stat vector every run starts from.
func Base() defs.StatVector {
	v := defs.NewStatVector()
	v[defs.StatMaxHP] = 10
	v[defs.StatDamage] = 20
	v[defs.StatPickupRange] = config.DefaultPickupRange
	return v
}

// Raw sums base stats, the character's starting stats and every item modifier.
// The character passive is not applied; see Effective.
func Raw(character *defs.Character, items []defs.Item) defs.StatVector {
	v := Base()
	if character != nil {
		v.Add(character.StartingStats)
	}
	for _, it := range items {
		for _, m := range it.Modifiers {
			v[m.Stat] += m.Value
		}
	}
	return v
}

// Effective returns a copy of raw with the character passive applied.
func Effective(character *defs.Character, raw defs.StatVector) defs.StatVector {
	v := raw.Clone()
	if character != nil && character.Passive != nil {
		character.Passive(v)
	}
	return v
}

// Compose is Raw followed by the character passive.
func Compose(character *defs.Character, items []defs.Item) defs.StatVector {
	return Effective(character, Raw(character, items))
}

// WeaponCooldown returns the cooldown in ms; attack speed can shrink the
// multiplier down to 0.1 but never below.
func WeaponCooldown(ws defs.WeaponStats, s defs.StatVector) float64 {
	speedMultiplier := 1 + s[defs.StatAttackSpeed]/100
	return ws.CooldownMs / math.Max(config.MinAttackSpeedRatio, speedMultiplier)
}

// WeaponDamage returns base damage plus stat scaling, amplified by the damage percent.
func WeaponDamage(ws defs.WeaponStats, s defs.StatVector) float64 {
	bonus := 0.0
	for stat, ratio := range ws.Scaling {
		bonus += s[stat] * ratio
	}
	total := (ws.Damage + bonus) * (1 + s[defs.StatDamage]/100)
	return math.Floor(math.Max(1, total))
}

// WeaponRange returns the weapon reach in pixels.
func WeaponRange(ws defs.WeaponStats, s defs.StatVector) float64 {
	return ws.Range + s[defs.StatRange]
}

// ArmorReduction is the fraction of damage absorbed by non-negative armor, in [0, 1).
func ArmorReduction(armor float64) float64 {
	if armor <= 0 {
		return 0
	}
	return armor / (armor + config.ArmorConstant)
}

// ArmorMultiplier is the factor applied to incoming damage.
// Negative armor grows the factor toward 2.
func ArmorMultiplier(armor float64) float64 {
	if armor > 0 {
		return 1 - ArmorReduction(armor)
	}
	return 2 - config.ArmorConstant/(config.ArmorConstant-armor)
}

// MoveSpeed returns the player speed in pixels per second.
func MoveSpeed(s defs.StatVector) float64 {
	return config.PlayerBaseSpeed * (1 + s[defs.StatSpeed]/100)
}

// PickupRange returns the magnet radius, falling back to the default when unset.
func PickupRange(s defs.StatVector) float64 {
	if r := s[defs.StatPickupRange]; r > 0 {
		return r
	}
	return config.DefaultPickupRange
}
