package geom_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/waypath/waypath/geom"
)

// coordRange bounds generated coordinates; wide enough to be interesting,
// narrow enough to keep floating-point slack meaningful.
const coordRange = 1e4

// triangleSlack absorbs rounding in the triangle-inequality check.
const triangleSlack = 1e-6

// TestDistanceLaws verifies the metric-space laws of Distance with
// randomly generated planar points. These laws must hold for every input
// the planner can construct.
func TestDistanceLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	coord := gen.Float64Range(-coordRange, coordRange)

	properties.Property("distance is symmetric and non-negative", prop.ForAll(
		func(px, py, qx, qy float64) bool {
			p := geom.Point{px, py}
			q := geom.Point{qx, qy}

			dpq, err1 := geom.Distance(p, q)
			dqp, err2 := geom.Distance(q, p)
			if err1 != nil || err2 != nil {
				return false
			}

			return dpq == dqp && dpq >= 0
		},
		coord, coord, coord, coord,
	))

	properties.Property("distance to self is zero, to a distinct point positive", prop.ForAll(
		func(px, py, dx float64) bool {
			p := geom.Point{px, py}

			self, err := geom.Distance(p, p)
			if err != nil || self != 0 {
				return false
			}

			// Shift one coordinate by a guaranteed non-zero offset.
			q := geom.Point{px + dx, py}
			d, err := geom.Distance(p, q)
			if err != nil {
				return false
			}

			return d > 0
		},
		coord, coord, gen.Float64Range(1, coordRange),
	))

	properties.Property("triangle inequality", prop.ForAll(
		func(px, py, qx, qy, rx, ry float64) bool {
			p := geom.Point{px, py}
			q := geom.Point{qx, qy}
			r := geom.Point{rx, ry}

			dpq, err1 := geom.Distance(p, q)
			dqr, err2 := geom.Distance(q, r)
			dpr, err3 := geom.Distance(p, r)
			if err1 != nil || err2 != nil || err3 != nil {
				return false
			}

			return dpr <= dpq+dqr+triangleSlack
		},
		coord, coord, coord, coord, coord, coord,
	))

	properties.Property("projection lies no farther than either endpoint", prop.ForAll(
		func(ax, ay, bx, by, px, py float64) bool {
			a := geom.Point{ax, ay}
			b := geom.Point{bx, by}
			p := geom.Point{px, py}

			foot, err := geom.Project(a, b, p)
			if err != nil {
				return false
			}

			dFoot, _ := geom.Distance(p, foot)
			dA, _ := geom.Distance(p, a)
			dB, _ := geom.Distance(p, b)

			return dFoot <= dA+triangleSlack && dFoot <= dB+triangleSlack
		},
		coord, coord, coord, coord, coord, coord,
	))

	properties.TestingRun(t)
}
