package systems

import (
	"github.com/automoto/dashrun/components"
	"github.com/automoto/dashrun/shared/armory"
	"github.com/yohamta/donburi"
)

// AwardKills adds n kills to the player's profile and returns the new total.
// Negative n is ignored.
func AwardKills(entry *donburi.Entry, n int) int {
	profile := components.Profile.Get(entry)
	if n > 0 {
		profile.Stats.Kills += n
	}
	return profile.Stats.Kills
}

// UnlocksFor lists everything the player has unlocked at their kill count
func UnlocksFor(catalog *armory.Catalog, entry *donburi.Entry) []armory.Unlock {
	return catalog.UnlocksForKills(components.Profile.Get(entry).Stats.Kills)
}

// EquipUtility applies a utility's stat effect if the player has unlocked
// it. Utilities without a stat effect are recorded but change nothing.
// Weapons and unknown names are refused.
func EquipUtility(catalog *armory.Catalog, entry *donburi.Entry, name string) bool {
	profile := components.Profile.Get(entry)
	if _, ok := catalog.Utility(name); !ok {
		return false
	}
	if !catalog.CanUse(name, profile.Stats.Kills) {
		return false
	}
	armory.ApplyUtility(name, &profile.Stats)
	profile.Equipped = append(profile.Equipped, name)
	return true
}
