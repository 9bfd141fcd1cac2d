package anim

import "math"

// Normalize simulates every position write in the script, without touching a
// surface, and returns the minimum x and y any element reaches. Positions
// reached only through dx/dy chains count. Delete actions leave the tracked
// value in place; an element's extreme still counts after it is gone.
func Normalize(script Script) (Origin, error) {
	tracked := [2]map[ElementID]float64{{}, {}}
	low := [2]float64{math.Inf(1), math.Inf(1)}

	for i, step := range script {
		for j, a := range step {
			if a.Kind == KindDelete {
				continue
			}
			fail := func(err error) (Origin, error) {
				return Origin{}, &StepError{Step: i, Action: j, Element: a.Element, Wrapped: err}
			}
			for _, axis := range []Axis{AxisX, AxisY} {
				if v := a.Props.abs(axis); v != nil {
					if !finite(*v) {
						return fail(ErrNonNumeric)
					}
					tracked[axis][a.Element] = *v
					low[axis] = math.Min(low[axis], *v)
				}
			}
			for _, axis := range []Axis{AxisX, AxisY} {
				d := a.Props.delta(axis)
				if d == 0 {
					continue
				}
				if !finite(d) {
					return fail(ErrNonNumeric)
				}
				cur, ok := tracked[axis][a.Element]
				if !ok {
					return fail(ErrUnpositionedOffset)
				}
				tracked[axis][a.Element] = cur + d
				low[axis] = math.Min(low[axis], cur+d)
			}
		}
	}

	if math.IsInf(low[AxisX], 1) || math.IsInf(low[AxisY], 1) {
		return Origin{}, ErrNoCoordinates
	}
	return Origin{X: low[AxisX], Y: low[AxisY]}, nil
}
