// Package armory holds the kill-count unlock tables for weapons and
// utilities, and the stat effects utilities apply to a player profile.
package armory

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed items.yaml
var defaultItems []byte

type RangedWeapon struct {
	Name               string  `yaml:"name"`
	KillsRequired      int     `yaml:"kills_required"`
	Damage             float64 `yaml:"damage"`
	FireRateSeconds    float64 `yaml:"fire_rate_seconds"`
	MagazineSize       int     `yaml:"magazine_size"`
	ReloadTimeSeconds  float64 `yaml:"reload_time_seconds"`
	HeadshotMultiplier float64 `yaml:"headshot_multiplier"`
	Spread             int     `yaml:"spread"`
	ExtraHits          int     `yaml:"extra_hits"`
	Range              int     `yaml:"range"`
}

type MeleeWeapon struct {
	Name            string   `yaml:"name"`
	KillsRequired   int      `yaml:"kills_required"`
	Damage          float64  `yaml:"damage"`
	HealthOnHit     float64  `yaml:"health_on_hit"`
	DelaySeconds    float64  `yaml:"delay_seconds"`
	CooldownSeconds float64  `yaml:"cooldown_seconds"`
	Knockback       int      `yaml:"knockback"`
	ThrowingDamage  *float64 `yaml:"throwing_damage"` // nil when the weapon can't be thrown
}

type Utility struct {
	Name          string `yaml:"name"`
	KillsRequired int    `yaml:"kills_required"`
	Description   string `yaml:"description"`
}

// Catalog is the full unlock table plus a name index built at load time.
type Catalog struct {
	Ranged    []RangedWeapon `yaml:"ranged"`
	Melee     []MeleeWeapon  `yaml:"melee"`
	Utilities []Utility      `yaml:"utilities"`

	killsRequiredByName map[string]int
}

// LoadCatalog parses a YAML unlock table and indexes it by item name.
func LoadCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("armory: unmarshal catalog: %w", err)
	}
	if err := c.BuildLookup(); err != nil {
		return nil, err
	}
	return &c, nil
}

// DefaultCatalog returns the built-in unlock table. It panics if the
// embedded table is malformed.
func DefaultCatalog() *Catalog {
	c, err := LoadCatalog(defaultItems)
	if err != nil {
		panic(err)
	}
	return c
}

// BuildLookup rebuilds the name index. Call it after editing the slices
// directly. Names must be unique across all categories.
func (c *Catalog) BuildLookup() error {
	c.killsRequiredByName = make(map[string]int, len(c.Ranged)+len(c.Melee)+len(c.Utilities))

	add := func(name string, kills int) error {
		if name == "" {
			return fmt.Errorf("armory: item with empty name")
		}
		if _, dup := c.killsRequiredByName[name]; dup {
			return fmt.Errorf("armory: duplicate item %q", name)
		}
		c.killsRequiredByName[name] = kills
		return nil
	}

	for _, w := range c.Ranged {
		if err := add(w.Name, w.KillsRequired); err != nil {
			return err
		}
	}
	for _, w := range c.Melee {
		if err := add(w.Name, w.KillsRequired); err != nil {
			return err
		}
	}
	for _, u := range c.Utilities {
		if err := add(u.Name, u.KillsRequired); err != nil {
			return err
		}
	}
	return nil
}

// KillsRequired returns the unlock threshold for name.
func (c *Catalog) KillsRequired(name string) (int, bool) {
	k, ok := c.killsRequiredByName[name]
	return k, ok
}

// Utility looks up a utility entry by name.
func (c *Catalog) Utility(name string) (Utility, bool) {
	for _, u := range c.Utilities {
		if u.Name == name {
			return u, true
		}
	}
	return Utility{}, false
}

// CanUse reports whether an item is unlocked at the given kill count.
// Unknown names are never usable.
func (c *Catalog) CanUse(name string, kills int) bool {
	req, ok := c.killsRequiredByName[name]
	if !ok {
		return false
	}
	return kills >= req
}

// UnlocksForKills lists every item unlocked at kills: ranged first, then
// melee, then utilities, each in table order.
func (c *Catalog) UnlocksForKills(kills int) []Unlock {
	var unlocked []Unlock
	for _, w := range c.Ranged {
		if kills >= w.KillsRequired {
			unlocked = append(unlocked, Unlock{Category: CategoryRanged, Name: w.Name})
		}
	}
	for _, w := range c.Melee {
		if kills >= w.KillsRequired {
			unlocked = append(unlocked, Unlock{Category: CategoryMelee, Name: w.Name})
		}
	}
	for _, u := range c.Utilities {
		if kills >= u.KillsRequired {
			unlocked = append(unlocked, Unlock{Category: CategoryUtility, Name: u.Name})
		}
	}
	return unlocked
}

type Category int

const (
	CategoryRanged Category = iota
	CategoryMelee
	CategoryUtility
)

func (c Category) String() string {
	switch c {
	case CategoryRanged:
		return "Ranged"
	case CategoryMelee:
		return "Melee"
	case CategoryUtility:
		return "Utility"
	}
	return "Unknown"
}

// Unlock names one unlocked item.
type Unlock struct {
	Category Category
	Name     string
}

func (u Unlock) String() string {
	return u.Category.String() + ": " + u.Name
}
