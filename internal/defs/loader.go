package defs

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/content.yaml
var defaultContent []byte

// contentFile is the on-disk layout of a content definition file.
type contentFile struct {
	Items      []Item       `yaml:"items"`
	Weapons    []Weapon     `yaml:"weapons"`
	Characters []*Character `yaml:"characters"`
}

// Library holds all item, weapon and character definitions of a run.
// Iteration helpers keep file order so seeded runs are reproducible.
type Library struct {
	items      map[string]Item
	weapons    map[string]Weapon
	characters map[string]*Character

	itemOrder      []string
	weaponOrder    []string
	characterOrder []string
}

// DefaultLibrary loads the embedded content with the built-in hooks.
func DefaultLibrary() (*Library, error) {
	return LoadLibrary(defaultContent, DefaultHooks())
}

// MustDefaultLibrary is DefaultLibrary for callers that treat broken embedded data as fatal.
func MustDefaultLibrary() *Library {
	lib, err := DefaultLibrary()
	if err != nil {
		panic(err)
	}
	return lib
}

// LoadLibraryFile reads a content file from disk.
func LoadLibraryFile(path string, hooks HookTable) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	return LoadLibrary(data, hooks)
}

// LoadLibrary decodes and validates YAML content.
func LoadLibrary(data []byte, hooks HookTable) (*Library, error) {
	var content contentFile
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("failed to unmarshal content: %w", err)
	}

	lib := &Library{
		items:      make(map[string]Item),
		weapons:    make(map[string]Weapon),
		characters: make(map[string]*Character),
	}

	for _, it := range content.Items {
		if err := validateItem(it); err != nil {
			return nil, err
		}
		if lib.hasOffer(it.ID) {
			return nil, fmt.Errorf("duplicate offer id %q", it.ID)
		}
		lib.items[it.ID] = it
		lib.itemOrder = append(lib.itemOrder, it.ID)
	}
	for _, w := range content.Weapons {
		if err := validateWeapon(w); err != nil {
			return nil, err
		}
		if lib.hasOffer(w.ID) {
			return nil, fmt.Errorf("duplicate offer id %q", w.ID)
		}
		lib.weapons[w.ID] = w
		lib.weaponOrder = append(lib.weaponOrder, w.ID)
	}
	for _, c := range content.Characters {
		if c == nil || c.ID == "" {
			return nil, errors.New("character without id")
		}
		if _, dup := lib.characters[c.ID]; dup {
			return nil, fmt.Errorf("duplicate character id %q", c.ID)
		}
		for k := range c.StartingStats {
			if !k.IsValid() {
				return nil, fmt.Errorf("character %s: unknown stat %q", c.ID, k)
			}
		}
		if c.StartingWeaponID != "" {
			if _, ok := lib.weapons[c.StartingWeaponID]; !ok {
				return nil, fmt.Errorf("character %s: unknown starting weapon %q", c.ID, c.StartingWeaponID)
			}
		}
		if err := hooks.resolve(c); err != nil {
			return nil, err
		}
		lib.characters[c.ID] = c
		lib.characterOrder = append(lib.characterOrder, c.ID)
	}

	if len(lib.itemOrder)+len(lib.weaponOrder) == 0 {
		return nil, errors.New("content defines no items or weapons")
	}

	log.Printf("Loaded %d item, %d weapon and %d character definitions",
		len(lib.items), len(lib.weapons), len(lib.characters))
	return lib, nil
}

func validateItem(it Item) error {
	if it.ID == "" {
		return errors.New("item without id")
	}
	if it.BasePrice < 0 {
		return fmt.Errorf("%s: negative base price %d", it.ID, it.BasePrice)
	}
	for _, m := range it.Modifiers {
		if !m.Stat.IsValid() {
			return fmt.Errorf("%s: unknown stat %q", it.ID, m.Stat)
		}
	}
	return nil
}

func validateWeapon(w Weapon) error {
	if err := validateItem(w.Item); err != nil {
		return err
	}
	if w.Type != WeaponMelee && w.Type != WeaponRanged {
		return fmt.Errorf("%s: unknown weapon type %q", w.ID, w.Type)
	}
	if w.Stats.CooldownMs <= 0 {
		return fmt.Errorf("%s: cooldown must be positive, got %v", w.ID, w.Stats.CooldownMs)
	}
	for k := range w.Stats.Scaling {
		if !k.IsValid() {
			return fmt.Errorf("%s: unknown scaling stat %q", w.ID, k)
		}
	}
	return nil
}

func (l *Library) hasOffer(id string) bool {
	_, isItem := l.items[id]
	_, isWeapon := l.weapons[id]
	return isItem || isWeapon
}

// Item returns an item definition by id.
func (l *Library) Item(id string) (Item, bool) {
	it, ok := l.items[id]
	return it, ok
}

// Weapon returns a weapon definition by id.
func (l *Library) Weapon(id string) (Weapon, bool) {
	w, ok := l.weapons[id]
	return w, ok
}

// Character returns a character definition by id.
func (l *Library) Character(id string) (*Character, bool) {
	c, ok := l.characters[id]
	return c, ok
}

// Characters returns all characters in file order.
func (l *Library) Characters() []*Character {
	out := make([]*Character, 0, len(l.characterOrder))
	for _, id := range l.characterOrder {
		out = append(out, l.characters[id])
	}
	return out
}

// Weapons returns all weapons in file order.
func (l *Library) Weapons() []Weapon {
	out := make([]Weapon, 0, len(l.weaponOrder))
	for _, id := range l.weaponOrder {
		out = append(out, l.weapons[id])
	}
	return out
}

// Offer resolves an item or weapon id into a shop offer.
func (l *Library) Offer(id string) (Offer, bool) {
	if it, ok := l.items[id]; ok {
		return Offer{ID: it.ID, Name: it.Name, BasePrice: it.BasePrice, Item: &it}, true
	}
	if w, ok := l.weapons[id]; ok {
		return Offer{ID: w.ID, Name: w.Name, BasePrice: w.BasePrice, Weapon: &w}, true
	}
	return Offer{}, false
}

// Pool returns the combined shop pool: items first, then weapons.
func (l *Library) Pool() []Offer {
	out := make([]Offer, 0, len(l.itemOrder)+len(l.weaponOrder))
	for _, id := range l.itemOrder {
		o, _ := l.Offer(id)
		out = append(out, o)
	}
	for _, id := range l.weaponOrder {
		o, _ := l.Offer(id)
		out = append(out, o)
	}
	return out
}
