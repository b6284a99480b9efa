package defs

import (
	"fmt"
	"math"

	"go-wave-survivor/internal/config"
)

// ProjectileSpec describes a projectile a hook wants to spawn at the player.
type ProjectileSpec struct {
	Angle      float64
	Speed      float64
	Damage     float64
	DurationMs float64
	Knockback  float64
	Pierce     int
	Kind       string
}

// HookHost is the slice of the running session a character hook may use.
type HookHost interface {
	PlayerPosition() (x, y float64)
	Stats() StatVector
	NearestEnemy(maxDist float64) (x, y float64, ok bool)
	SpawnProjectile(spec ProjectileSpec)
	RequestSound(key string)
}

// PassiveFunc adjusts a freshly composed stat vector in place.
type PassiveFunc func(stats StatVector)

// DamageHook runs after the player lost HP; amount is the post-armor damage.
type DamageHook func(host HookHost, c *Character, amount float64)

// CollectHook runs after the player collected a pickup.
type CollectHook func(host HookHost, c *Character, value int)

// HookTable maps hook names used in content files to implementations.
type HookTable struct {
	Passives     map[string]PassiveFunc
	DamageHooks  map[string]DamageHook
	CollectHooks map[string]CollectHook
}

// DefaultHooks returns the built-in hook table.
func DefaultHooks() HookTable {
	return HookTable{
		Passives: map[string]PassiveFunc{
			"hp_to_dodge": hpToDodge,
		},
		DamageHooks: map[string]DamageHook{
			"counter_beam": counterBeam,
		},
		CollectHooks: map[string]CollectHook{
			"material_sound": materialSound,
		},
	}
}

// DodgeFromMaxHP converts max HP into a dodge bonus on a hyperbolic curve capped at 60:
// dumbness = 2·maxHp, bonus = 60·dumbness / (dumbness + 50).
func DodgeFromMaxHP(maxHP float64) float64 {
	dumbness := maxHP * config.DumbnessPerMaxHP
	if dumbness+config.DodgeHalfPoint <= 0 {
		return 0
	}
	return config.DodgeCapNumerator * dumbness / (dumbness + config.DodgeHalfPoint)
}

func hpToDodge(stats StatVector) {
	stats[StatDodgeChance] += DodgeFromMaxHP(stats[StatMaxHP])
}

// counterBeam стреляет лучом в ближайшего врага, урон равен rangedDamage.
func counterBeam(host HookHost, _ *Character, _ float64) {
	px, py := host.PlayerPosition()
	ex, ey, ok := host.NearestEnemy(config.CounterBeamDist)
	if !ok {
		return
	}
	host.SpawnProjectile(ProjectileSpec{
		Angle:      math.Atan2(ey-py, ex-px),
		Speed:      config.CounterBeamSpd,
		Damage:     host.Stats()[StatRangedDamage],
		DurationMs: config.CounterBeamMs,
		Knockback:  10,
		Pierce:     99,
		Kind:       "beam",
	})
}

func materialSound(host HookHost, c *Character, _ int) {
	if c.CollectSound == "" {
		return
	}
	host.RequestSound(c.CollectSound)
}

// resolve binds the named hooks of c to implementations from t.
func (t HookTable) resolve(c *Character) error {
	if c.PassiveName != "" {
		fn, ok := t.Passives[c.PassiveName]
		if !ok {
			return fmt.Errorf("character %s: unknown passive %q", c.ID, c.PassiveName)
		}
		c.Passive = fn
	}
	if c.DamageHookName != "" {
		fn, ok := t.DamageHooks[c.DamageHookName]
		if !ok {
			return fmt.Errorf("character %s: unknown damage hook %q", c.ID, c.DamageHookName)
		}
		c.OnDamageTaken = fn
	}
	if c.CollectHookName != "" {
		fn, ok := t.CollectHooks[c.CollectHookName]
		if !ok {
			return fmt.Errorf("character %s: unknown collect hook %q", c.ID, c.CollectHookName)
		}
		c.OnCollect = fn
	}
	return nil
}
