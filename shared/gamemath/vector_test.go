package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: -3, Y: 0.5}

	assert.Equal(t, Vec2{X: -2, Y: 2.5}, a.Add(b))
	assert.Equal(t, Vec2{X: 4, Y: 1.5}, a.Sub(b))
	assert.Equal(t, Vec2{X: 2.5, Y: 5}, a.Scale(2.5))
	assert.Equal(t, Vec2{X: 1, Y: 2}, a, "operations must not mutate the receiver")
	assert.Equal(t, 5.0, Vec2{X: 3, Y: 4}.Length())
	assert.Equal(t, 5.0, Vec2{X: 1, Y: 1}.Distance(Vec2{X: 4, Y: 5}))
}

func TestVec2Normalize(t *testing.T) {
	cases := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"zero", Zero, Zero},
		{"below_epsilon", Vec2{X: 5e-5, Y: 0}, Zero},
		{"axis", Vec2{X: 0, Y: -3}, Vec2{X: 0, Y: -1}},
		{"diagonal", Vec2{X: 1, Y: 1}, Vec2{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.in.Normalize()
			assert.InDelta(t, c.want.X, got.X, 1e-9)
			assert.InDelta(t, c.want.Y, got.Y, 1e-9)
		})
	}
}

func TestMoveToward(t *testing.T) {
	cases := []struct {
		name     string
		current  Vec2
		target   Vec2
		maxDelta float64
		want     Vec2
	}{
		{"snaps_within_step", Vec2{X: 1}, Vec2{X: 1.2}, 0.3, Vec2{X: 1.2}},
		{"snaps_exact_step", Vec2{}, Vec2{Y: 0.3}, 0.3, Vec2{Y: 0.3}},
		{"snaps_below_epsilon_with_zero_step", Vec2{X: 2}, Vec2{X: 2 + 1e-5}, 0, Vec2{X: 2 + 1e-5}},
		{"steps_along_delta", Vec2{}, Vec2{X: 3, Y: 4}, 1, Vec2{X: 0.6, Y: 0.8}},
		{"zero_step_holds", Vec2{X: 1}, Vec2{X: 5}, 0, Vec2{X: 1}},
		{"decelerates_toward_zero", Vec2{X: -4}, Zero, 0.5, Vec2{X: -3.5}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := MoveToward(c.current, c.target, c.maxDelta)
			assert.InDelta(t, c.want.X, got.X, 1e-9)
			assert.InDelta(t, c.want.Y, got.Y, 1e-9)
		})
	}
}

func TestMoveTowardNeverOvershoots(t *testing.T) {
	v := Vec2{X: 3, Y: -2}
	for i := 0; i < 100; i++ {
		next := MoveToward(v, Zero, 0.35)
		assert.LessOrEqual(t, next.Length(), v.Length())
		assert.GreaterOrEqual(t, next.X, 0.0)
		assert.LessOrEqual(t, next.Y, 0.0)
		v = next
	}
	assert.Equal(t, Zero, v)
}

func TestAxisIntent(t *testing.T) {
	assert.Equal(t, 0.0, AxisIntent(false, false))
	assert.Equal(t, 1.0, AxisIntent(true, false))
	assert.Equal(t, -1.0, AxisIntent(false, true))
	assert.Equal(t, 0.0, AxisIntent(true, true))
}
