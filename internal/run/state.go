// Package run holds the persisted aggregate of a playthrough and its save format.
package run

import (
	"errors"
	"fmt"

	"go-wave-survivor/internal/config"
	"go-wave-survivor/internal/defs"
)

// ErrMalformed marks a save that decoded but violates RunState invariants.
var ErrMalformed = errors.New("malformed run state")

// WeaponRecord is one owned weapon instance.
type WeaponRecord struct {
	WeaponID   string `json:"weaponId"`
	InstanceID string `json:"instanceId"`
}

// ShopState keeps the four shop slots as parallel arrays; nil marks an empty slot.
type ShopState struct {
	ItemIDs []*string `json:"itemIds"`
	Locks   []bool    `json:"locks"`
	Prices  []*int    `json:"prices"`
}

// NewShopState returns a shop with every slot empty and unlocked.
func NewShopState() ShopState {
	return ShopState{
		ItemIDs: make([]*string, config.ShopSlots),
		Locks:   make([]bool, config.ShopSlots),
		Prices:  make([]*int, config.ShopSlots),
	}
}

// Slot returns the offer id and price held by slot i.
func (s *ShopState) Slot(i int) (id string, price int, ok bool) {
	if i < 0 || i >= len(s.ItemIDs) || s.ItemIDs[i] == nil {
		return "", 0, false
	}
	if s.Prices[i] != nil {
		price = *s.Prices[i]
	}
	return *s.ItemIDs[i], price, true
}

// IsEmpty reports whether slot i holds nothing.
func (s *ShopState) IsEmpty(i int) bool {
	_, _, ok := s.Slot(i)
	return !ok
}

// AllEmpty reports whether no slot holds an offer.
func (s *ShopState) AllEmpty() bool {
	for i := range s.ItemIDs {
		if !s.IsEmpty(i) {
			return false
		}
	}
	return true
}

// IsLocked reports the lock flag of slot i.
func (s *ShopState) IsLocked(i int) bool {
	return i >= 0 && i < len(s.Locks) && s.Locks[i]
}

// Set places an offer with its price into slot i.
func (s *ShopState) Set(i int, id string, price int) {
	s.ItemIDs[i] = &id
	s.Prices[i] = &price
}

// Clear empties slot i, dropping its price and lock.
func (s *ShopState) Clear(i int) {
	s.ItemIDs[i] = nil
	s.Prices[i] = nil
	s.Locks[i] = false
}

func (s ShopState) clone() ShopState {
	out := NewShopState()
	for i := 0; i < config.ShopSlots; i++ {
		if id, price, ok := s.Slot(i); ok {
			out.Set(i, id, price)
		}
		out.Locks[i] = s.IsLocked(i)
	}
	return out
}

// RunState is the single persisted aggregate of a run.
type RunState struct {
	CharacterID string          `json:"characterId"`
	Wave        int             `json:"wave"`
	Currency    int             `json:"currency"`
	CurrentHP   float64         `json:"currentHp"`
	XP          int             `json:"xp"`
	Level       int             `json:"level"`
	Stats       defs.StatVector `json:"stats"`
	Items       []string        `json:"items"`
	Weapons     []WeaponRecord  `json:"weapons"`
	RerollPrice int             `json:"rerollPrice"`
	ShopState   ShopState       `json:"shopState"`
	InShop      bool            `json:"inShop"`
}

// New creates the state of a fresh run.
func New(characterID string, stats defs.StatVector, startingWeapon WeaponRecord) *RunState {
	rs := &RunState{
		CharacterID: characterID,
		Wave:        config.StartingWave,
		Level:       config.StartLevel,
		Stats:       stats.Clone(),
		CurrentHP:   stats[defs.StatMaxHP],
		Items:       []string{},
		Weapons:     []WeaponRecord{},
		RerollPrice: config.InitialRerollPrice,
		ShopState:   NewShopState(),
	}
	if startingWeapon.WeaponID != "" {
		rs.Weapons = append(rs.Weapons, startingWeapon)
	}
	return rs
}

// Clone returns a deep copy.
func (rs *RunState) Clone() *RunState {
	out := *rs
	out.Stats = rs.Stats.Clone()
	out.Items = append([]string{}, rs.Items...)
	out.Weapons = append([]WeaponRecord{}, rs.Weapons...)
	out.ShopState = rs.ShopState.clone()
	return &out
}

// Validate checks the invariants a loaded run must satisfy.
func (rs *RunState) Validate() error {
	switch {
	case rs.CharacterID == "":
		return fmt.Errorf("%w: missing characterId", ErrMalformed)
	case rs.Wave < 1:
		return fmt.Errorf("%w: wave %d", ErrMalformed, rs.Wave)
	case rs.Currency < 0:
		return fmt.Errorf("%w: currency %d", ErrMalformed, rs.Currency)
	case rs.RerollPrice < 0:
		return fmt.Errorf("%w: rerollPrice %d", ErrMalformed, rs.RerollPrice)
	case rs.Level < 1:
		return fmt.Errorf("%w: level %d", ErrMalformed, rs.Level)
	case rs.Stats == nil:
		return fmt.Errorf("%w: missing stats", ErrMalformed)
	case len(rs.Weapons) > config.MaxWeapons:
		return fmt.Errorf("%w: %d weapons", ErrMalformed, len(rs.Weapons))
	}
	shop := rs.ShopState
	if shop.ItemIDs == nil && shop.Locks == nil && shop.Prices == nil {
		return nil
	}
	if len(shop.ItemIDs) != config.ShopSlots || len(shop.Locks) != config.ShopSlots || len(shop.Prices) != config.ShopSlots {
		return fmt.Errorf("%w: shop slots must have %d entries", ErrMalformed, config.ShopSlots)
	}
	for i := range shop.Prices {
		if (shop.ItemIDs[i] == nil) != (shop.Prices[i] == nil) {
			return fmt.Errorf("%w: slot %d has id and price out of step", ErrMalformed, i)
		}
		if shop.Prices[i] != nil && *shop.Prices[i] < 1 {
			return fmt.Errorf("%w: price %d in slot %d", ErrMalformed, *shop.Prices[i], i)
		}
	}
	return nil
}

// normalize fills optional parts a valid save may omit.
func (rs *RunState) normalize() {
	rs.Stats = rs.Stats.Normalize()
	if rs.Items == nil {
		rs.Items = []string{}
	}
	if rs.Weapons == nil {
		rs.Weapons = []WeaponRecord{}
	}
	if rs.ShopState.ItemIDs == nil {
		rs.ShopState = NewShopState()
	}
}
