package sim

import "github.com/automoto/dashrun/shared/movement"

// Script supplies one frame of input for a given frame index.
type Script func(frame int) movement.InputSnapshot

// DashFrame is the frame on which DemoScript turns and dashes.
const DashFrame = 90

// DemoScript walks up until DashFrame, then sprints right and dashes once
// on the turning frame.
func DemoScript(frame int) movement.InputSnapshot {
	if frame < DashFrame {
		return movement.InputSnapshot{Up: true}
	}
	return movement.InputSnapshot{
		Right:  true,
		Sprint: true,
		Dash:   frame == DashFrame,
	}
}

// Idle never presses anything.
func Idle(int) movement.InputSnapshot {
	return movement.InputSnapshot{}
}
