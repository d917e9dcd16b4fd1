package systems

import (
	"github.com/automoto/dashrun/components"
	cfg "github.com/automoto/dashrun/config"
	"github.com/automoto/dashrun/shared/movement"
	"github.com/automoto/dashrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement advances every player's controller by one fixed tick.
// Must run AFTER input sampling in the system order.
func UpdateMovement(ecs *ecs.ECS) {
	dt := cfg.FrameDelta()
	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		StepPlayer(entry, dt)
	})
}

// StepPlayer feeds one frame of the entry's sampled input to its controller.
func StepPlayer(entry *donburi.Entry, dt float64) {
	move := components.Movement.Get(entry)
	if move.Controller == nil {
		return
	}

	snapshot := SnapshotFromInput(components.PlayerInput.Get(entry))
	move.Controller.Update(dt, snapshot)
	move.LastInput = snapshot
}

// SnapshotFromInput converts held actions into a controller snapshot. Dash
// is reported only on the frame its action went down.
func SnapshotFromInput(input *components.PlayerInputData) movement.InputSnapshot {
	return movement.InputSnapshot{
		Up:     input.Pressed(cfg.ActionMoveUp),
		Down:   input.Pressed(cfg.ActionMoveDown),
		Left:   input.Pressed(cfg.ActionMoveLeft),
		Right:  input.Pressed(cfg.ActionMoveRight),
		Sprint: input.Pressed(cfg.ActionSprint),
		Dash:   input.JustPressed(cfg.ActionDash),
	}
}

// TuningFromConfig returns the controller tuning from the global config.
func TuningFromConfig() movement.Tuning {
	return movement.Tuning(cfg.Movement)
}

// ApplyTuning pushes the current global tuning into every player's
// controller, e.g. after a config reload.
func ApplyTuning(w donburi.World) {
	t := TuningFromConfig()
	tags.Player.Each(w, func(entry *donburi.Entry) {
		if c := components.Movement.Get(entry).Controller; c != nil {
			c.SetTuning(t)
		}
	})
}
