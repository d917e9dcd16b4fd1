package armory

// Profile is a player's stat block as seen by the unlock tables.
type Profile struct {
	Kills     int
	Health    float64
	MaxHealth float64
	WalkSpeed float64
	RunSpeed  float64

	MaxStamina float64

	MeleeDelayMultiplier    float64
	MeleeCooldownMultiplier float64
	BulletSpreadMultiplier  float64
}

// NewProfile returns a fresh profile with base stats and no kills.
func NewProfile() Profile {
	return Profile{
		Health:                  100,
		MaxHealth:               100,
		WalkSpeed:               24,
		RunSpeed:                26,
		MaxStamina:              100,
		MeleeDelayMultiplier:    1,
		MeleeCooldownMultiplier: 1,
		BulletSpreadMultiplier:  1,
	}
}

// setArmor replaces max health and speeds, clamping current health down.
func (p *Profile) setArmor(maxHealth, walk, run float64) {
	p.MaxHealth = maxHealth
	p.Health = min(p.Health, p.MaxHealth)
	p.WalkSpeed = walk
	p.RunSpeed = run
}

// ApplyUtility mutates p with the named utility's stat effect. It returns
// false for unknown utilities and for utilities with no stat effect.
// Unlock gating is the caller's concern; see Catalog.CanUse.
func ApplyUtility(name string, p *Profile) bool {
	switch name {
	case "Light Armor":
		p.setArmor(120, 15, 26)
	case "Heavy Armor":
		p.setArmor(150, 14, 24)
	case "Super Heavy Armor":
		p.setArmor(190, 13, 22)
		p.MeleeDelayMultiplier *= 1.30
		p.MeleeCooldownMultiplier *= 1.30
	case "Gloves":
		p.MeleeDelayMultiplier *= 0.75
		p.MeleeCooldownMultiplier *= 0.75
	case "Marksman's Arm":
		p.BulletSpreadMultiplier *= 0.70
		p.MaxHealth -= 30
		p.Health = min(p.Health, p.MaxHealth)
	default:
		return false
	}
	return true
}
