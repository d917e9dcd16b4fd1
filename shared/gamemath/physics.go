package gamemath

// MoveToward moves current toward target by at most maxDelta, measured as
// straight-line distance. It returns target exactly when the remaining gap
// is within one step or below Epsilon.
func MoveToward(current, target Vec2, maxDelta float64) Vec2 {
	delta := target.Sub(current)
	dist := delta.Length()

	if dist <= maxDelta || dist <= Epsilon {
		return target
	}

	return current.Add(delta.Normalize().Scale(maxDelta))
}

// AxisIntent maps a pair of opposing held flags to -1, 0 or 1.
func AxisIntent(positive, negative bool) float64 {
	var v float64
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}
