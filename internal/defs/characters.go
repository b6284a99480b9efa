package defs

// Character is a selectable hero. Behavior that differs per character is declared as
// optional hooks resolved by name from the hook tables, never by type.
type Character struct {
	ID               string               `yaml:"id"`
	Name             string               `yaml:"name"`
	Description      string               `yaml:"description"`
	SpriteKey        string               `yaml:"sprite_key"`
	CollectSound     string               `yaml:"collect_sound"`
	StartingStats    map[StatType]float64 `yaml:"starting_stats"`
	StartingWeaponID string               `yaml:"starting_weapon"`
	PassivesDisplay  []string             `yaml:"passives_display"`

	PassiveName     string `yaml:"passive,omitempty"`
	DamageHookName  string `yaml:"on_damage_taken,omitempty"`
	CollectHookName string `yaml:"on_collect,omitempty"`

	Passive       PassiveFunc `yaml:"-"`
	OnDamageTaken DamageHook  `yaml:"-"`
	OnCollect     CollectHook `yaml:"-"`
}

// HasDamageHook reports whether the character reacts to taking damage.
func (c *Character) HasDamageHook() bool { return c != nil && c.OnDamageTaken != nil }

// HasCollectHook reports whether the character reacts to collecting pickups.
func (c *Character) HasCollectHook() bool { return c != nil && c.OnCollect != nil }
