package movement

import "github.com/automoto/dashrun/shared/gamemath"

// InputSnapshot is one frame of sampled intent. Dash is edge-triggered: the
// sampler sets it only on the frame the button went down.
type InputSnapshot struct {
	Up, Down, Left, Right bool
	Sprint                bool
	Dash                  bool
}

// RawDirection returns the unnormalised axis intent, each component in
// {-1, 0, 1}. Up is +Y.
func (in InputSnapshot) RawDirection() gamemath.Vec2 {
	return gamemath.Vec2{
		X: gamemath.AxisIntent(in.Right, in.Left),
		Y: gamemath.AxisIntent(in.Up, in.Down),
	}
}

// Direction returns the unit move direction, or the zero vector when no
// net direction is held.
func (in InputSnapshot) Direction() gamemath.Vec2 {
	return in.RawDirection().Normalize()
}
