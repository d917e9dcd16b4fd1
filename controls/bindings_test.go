package controls

import (
	"testing"

	cfg "github.com/automoto/dashrun/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestEverySchemeBindsEveryAction(t *testing.T) {
	for id, scheme := range Schemes {
		for a := cfg.ActionMoveUp; a < cfg.ActionCount; a++ {
			assert.NotEmpty(t, scheme[a].Keys, "%s has no key for %s", cfg.ControlSchemeID(id), a)
		}
	}
}

func TestSchemesDoNotShareMovementKeys(t *testing.T) {
	seen := map[ebiten.Key]cfg.ControlSchemeID{}
	for id, scheme := range Schemes {
		for a, b := range scheme {
			if a == cfg.ActionBack {
				continue
			}
			for _, k := range b.Keys {
				other, dup := seen[k]
				assert.False(t, dup, "key %v bound by %s and %s", k, other, cfg.ControlSchemeID(id))
				seen[k] = cfg.ControlSchemeID(id)
			}
		}
	}
}
