package geom

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrDimensionMismatch indicates points of differing dimensionality were
// combined, or a non-planar point reached a 2-D-only operation.
var ErrDimensionMismatch = errors.New("geom: point dimensions do not match")

// euclideanNorm selects the L2 norm for floats.Distance.
const euclideanNorm = 2

// planeDim is the dimensionality required by Project.
const planeDim = 2

// Point is a location in n-dimensional Euclidean space.
// The planner itself works in the plane (len == 2); Distance accepts any
// dimension so the same primitive serves 3-D presentations of the data.
type Point []float64

// Distance returns the Euclidean distance between p and q.
//
// Both points must have the same dimensionality; otherwise
// ErrDimensionMismatch is returned with the offending sizes attached.
//
// Complexity: O(d) time, O(1) space, d = len(p).
func Distance(p, q Point) (float64, error) {
	// floats.Distance panics on unequal lengths, so guard first and turn
	// the condition into the package sentinel.
	if len(p) != len(q) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(p), len(q))
	}

	return floats.Distance(p, q, euclideanNorm), nil
}

// Project returns the orthogonal projection of p onto the segment a–b.
//
// The projected parameter t along a–b is clamped to [0,1]: if the foot of
// the perpendicular falls outside the segment, the nearer endpoint is
// returned instead. A degenerate segment (a == b) projects onto a.
//
// All three points must be 2-dimensional; ErrDimensionMismatch otherwise.
//
// Complexity: O(1).
func Project(a, b, p Point) (Point, error) {
	if len(a) != planeDim || len(b) != planeDim || len(p) != planeDim {
		return nil, fmt.Errorf("%w: Project requires 2-D points", ErrDimensionMismatch)
	}

	var (
		av = r2.Vec{X: a[0], Y: a[1]}
		bv = r2.Vec{X: b[0], Y: b[1]}
		pv = r2.Vec{X: p[0], Y: p[1]}
	)

	// Direction of the segment and its squared length.
	seg := r2.Sub(bv, av)
	l2 := r2.Dot(seg, seg)
	if l2 == 0 {
		// a == b: the whole segment is a single point.
		return Point{av.X, av.Y}, nil
	}

	// Parameter of the perpendicular foot, clamped onto the segment.
	t := r2.Dot(r2.Sub(pv, av), seg) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	foot := r2.Add(av, r2.Scale(t, seg))

	return Point{foot.X, foot.Y}, nil
}
