package defs

// StatType names one entry of the closed stat key set.
type StatType string

const (
	StatMaxHP           StatType = "maxHp"
	StatHPRegen         StatType = "hpRegen"
	StatLifesteal       StatType = "lifesteal"
	StatDamage          StatType = "damage" // percent
	StatMeleeDamage     StatType = "meleeDamage"
	StatRangedDamage    StatType = "rangedDamage"
	StatElementalDamage StatType = "elementalDamage"
	StatAttackSpeed     StatType = "attackSpeed" // percent
	StatCritChance      StatType = "critChance"
	StatDodgeChance     StatType = "dodgeChance"
	StatSpeed           StatType = "speed" // percent
	StatArmor           StatType = "armor"
	StatRange           StatType = "range"
	StatLuck            StatType = "luck"
	StatHarvest         StatType = "harvest"
	StatPickupRange     StatType = "pickupRange"
)

// AllStats lists every stat key in display order.
var AllStats = []StatType{
	StatMaxHP, StatHPRegen, StatLifesteal, StatDamage, StatMeleeDamage, StatRangedDamage,
	StatElementalDamage, StatAttackSpeed, StatCritChance, StatDodgeChance, StatSpeed,
	StatArmor, StatRange, StatLuck, StatHarvest, StatPickupRange,
}

// IsValid reports whether s belongs to the stat key set.
func (s StatType) IsValid() bool {
	for _, k := range AllStats {
		if k == s {
			return true
		}
	}
	return false
}

// StatVector maps every stat key to a value. Vectors built by NewStatVector
// always carry all keys.
type StatVector map[StatType]float64

// NewStatVector returns a zero-initialized vector.
func NewStatVector() StatVector {
	v := make(StatVector, len(AllStats))
	for _, k := range AllStats {
		v[k] = 0
	}
	return v
}

// Clone returns an independent copy.
func (v StatVector) Clone() StatVector {
	out := NewStatVector()
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Add adds every entry of other into v.
func (v StatVector) Add(other map[StatType]float64) {
	for k, val := range other {
		v[k] += val
	}
}

// Normalize restores missing keys and drops unknown ones, e.g. after JSON decoding.
func (v StatVector) Normalize() StatVector {
	out := NewStatVector()
	for k, val := range v {
		if k.IsValid() {
			out[k] = val
		}
	}
	return out
}

// StatModifier is an additive adjustment of one stat.
type StatModifier struct {
	Stat  StatType `yaml:"stat" json:"stat"`
	Value float64  `yaml:"value" json:"value"`
}
