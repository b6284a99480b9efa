package defs

// Rarity of a shop offer.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityLegendary Rarity = "Legendary"
)

// Item is a passive purchase whose modifiers are added to the run stats.
type Item struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Rarity      Rarity         `yaml:"rarity"`
	BasePrice   int            `yaml:"base_price"`
	Tags        []string       `yaml:"tags"`
	Modifiers   []StatModifier `yaml:"modifiers"`
}

// WeaponType defines how a weapon delivers damage.
type WeaponType string

const (
	WeaponMelee  WeaponType = "Melee"
	WeaponRanged WeaponType = "Ranged"
)

// WeaponStats contains the combat parameters of a weapon definition.
// Zero ProjectileSpeed/DurationMs mean "use the default".
type WeaponStats struct {
	Damage          float64              `yaml:"damage"`
	CooldownMs      float64              `yaml:"cooldown_ms"`
	Range           float64              `yaml:"range"`
	Knockback       float64              `yaml:"knockback"`
	ProjectileSpeed float64              `yaml:"projectile_speed,omitempty"`
	DurationMs      float64              `yaml:"duration_ms,omitempty"`
	PierceCount     int                  `yaml:"pierce_count,omitempty"`
	Scaling         map[StatType]float64 `yaml:"scaling"`
}

// Weapon extends Item with combat stats.
type Weapon struct {
	Item          `yaml:",inline"`
	Type          WeaponType  `yaml:"type"`
	Stats         WeaponStats `yaml:"stats"`
	ProjectileKey string      `yaml:"projectile_key,omitempty"`
}

// Offer is anything the shop can place into a slot.
type Offer struct {
	ID        string
	Name      string
	BasePrice int
	Weapon    *Weapon // nil for items
	Item      *Item   // nil for weapons
}

// IsWeapon reports whether the offer is a weapon.
func (o Offer) IsWeapon() bool { return o.Weapon != nil }
