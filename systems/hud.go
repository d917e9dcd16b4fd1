package systems

import (
	"fmt"

	"github.com/automoto/dashrun/components"
	cfg "github.com/automoto/dashrun/config"
	"github.com/automoto/dashrun/fonts"
	"github.com/automoto/dashrun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 8
	hudLineHeight = 16
)

// DrawHUD renders one status line per player in the top-left corner and a
// controls hint along the bottom.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	fontFace := fonts.Regular.Get()

	var lines []string
	var colors []int
	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		lines = append(lines, PlayerHUDLine(entry))
		colors = append(colors, components.PlayerInput.Get(entry).PlayerIndex)
	})

	if len(lines) > 0 {
		vector.FillRect(screen, hudMargin/2, hudMargin/2,
			float32(cfg.C.Width-hudMargin), float32(len(lines)*hudLineHeight+hudMargin/2),
			cfg.BlackOverlay, false)
	}
	for i, line := range lines {
		text.Draw(screen, line, fontFace, hudMargin, hudMargin+(i+1)*hudLineHeight-4, PlayerColor(colors[i]))
	}

	hint := "WASD + LShift + Space | Arrows + RShift + Enter | Esc: lobby"
	text.Draw(screen, hint, fonts.Small.Get(), hudMargin, cfg.C.Height-hudMargin, cfg.White)
}

// PlayerHUDLine formats a player's name, kinematic state and dash state.
func PlayerHUDLine(entry *donburi.Entry) string {
	profile := components.Profile.Get(entry)
	c := components.Movement.Get(entry).Controller
	if c == nil {
		return profile.Name
	}

	dash := "READY"
	if !c.DashReady() {
		dash = fmt.Sprintf("%.1fs", c.DashCooldownRemaining())
	}
	pos, vel := c.Position(), c.Velocity()
	return fmt.Sprintf("%s  Pos(%.2f, %.2f)  Vel(%.2f, %.2f)  Speed %.2f  Dash %s",
		profile.Name, pos.X, pos.Y, vel.X, vel.Y, vel.Length(), dash)
}
