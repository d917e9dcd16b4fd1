// Package movement implements the per-frame character controller: steering
// toward a commanded velocity at a bounded rate, plus a cooldown-gated dash.
package movement

import "github.com/automoto/dashrun/shared/gamemath"

// Tuning holds the controller constants. Speeds are in units/second,
// Acceleration in units/second², DashCooldown in seconds.
type Tuning struct {
	WalkSpeed    float64
	SprintSpeed  float64
	Acceleration float64
	DashBoost    float64 // speed added instantly along the move direction
	DashCooldown float64
}

// DefaultTuning returns the stock movement constants.
func DefaultTuning() Tuning {
	return Tuning{
		WalkSpeed:    4.5,
		SprintSpeed:  7.0,
		Acceleration: 18.0,
		DashBoost:    10.0,
		DashCooldown: 0.8,
	}
}

// Controller owns one character's kinematic state. It is not safe for
// concurrent use; a single driver calls Update once per tick.
type Controller struct {
	tuning Tuning

	position gamemath.Vec2
	velocity gamemath.Vec2

	// Seconds until the next dash is allowed. Only its sign is meaningful
	// once it has been decremented past zero.
	dashCooldownRemaining float64

	dashed bool
}

// New creates a controller at spawn with zero velocity and a ready dash.
func New(spawn gamemath.Vec2) *Controller {
	return NewWithTuning(spawn, DefaultTuning())
}

func NewWithTuning(spawn gamemath.Vec2, t Tuning) *Controller {
	return &Controller{
		tuning:   t,
		position: spawn,
	}
}

// Update advances the controller by deltaTime seconds using one frame of
// input. deltaTime must be >= 0; negative values are not checked and give
// unspecified results.
func (c *Controller) Update(deltaTime float64, input InputSnapshot) {
	dir := input.Direction()

	target := dir.Scale(c.targetSpeed(input))
	c.velocity = gamemath.MoveToward(c.velocity, target, c.tuning.Acceleration*deltaTime)

	if c.dashCooldownRemaining > 0 {
		c.dashCooldownRemaining -= deltaTime
	}

	c.dashed = input.Dash && c.DashReady() && !dir.IsZero()
	if c.dashed {
		c.velocity = c.velocity.Add(dir.Scale(c.tuning.DashBoost))
		c.dashCooldownRemaining = c.tuning.DashCooldown
	}

	c.position = c.position.Add(c.velocity.Scale(deltaTime))
}

func (c *Controller) targetSpeed(input InputSnapshot) float64 {
	if input.Sprint {
		return c.tuning.SprintSpeed
	}
	return c.tuning.WalkSpeed
}

func (c *Controller) Position() gamemath.Vec2 {
	return c.position
}

func (c *Controller) Velocity() gamemath.Vec2 {
	return c.velocity
}

// DashCooldownRemaining returns the raw cooldown timer. It may be slightly
// negative after the cooldown has elapsed.
func (c *Controller) DashCooldownRemaining() float64 {
	return c.dashCooldownRemaining
}

// DashReady reports whether the dash cooldown has elapsed.
func (c *Controller) DashReady() bool {
	return c.dashCooldownRemaining <= 0
}

// Dashed reports whether the most recent Update fired a dash.
func (c *Controller) Dashed() bool {
	return c.dashed
}

func (c *Controller) Tuning() Tuning {
	return c.tuning
}

// SetTuning swaps the constants in place. State is kept, so a running
// cooldown finishes against the old duration.
func (c *Controller) SetTuning(t Tuning) {
	c.tuning = t
}
