// Package geom_test validates the distance and projection primitives,
// including the exact boundary cases the repairer depends on.
package geom_test

import (
	"errors"
	"math"
	"testing"

	"github.com/waypath/waypath/geom"
)

const epsGeom = 1e-9

func TestDistance_Basic(t *testing.T) {
	// Classic 3-4-5 triangle.
	d, err := geom.Distance(geom.Point{0, 0}, geom.Point{3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(d-5) > epsGeom {
		t.Errorf("Distance = %v; want 5", d)
	}
}

func TestDistance_HigherDimensions(t *testing.T) {
	// Distance must accept any matching dimensionality, not just 2-D.
	d, err := geom.Distance(geom.Point{1, 2, 2}, geom.Point{1, 2, 2})
	if err != nil {
		t.Fatal(err)
	}
	if d != 0 {
		t.Errorf("Distance of identical 3-D points = %v; want 0", d)
	}
}

func TestDistance_DimensionMismatch(t *testing.T) {
	_, err := geom.Distance(geom.Point{1, 2}, geom.Point{1, 2, 3})
	if !errors.Is(err, geom.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestProject_Interior(t *testing.T) {
	// Foot of the perpendicular lands inside the segment.
	got, err := geom.Project(geom.Point{0, 0}, geom.Point{10, 0}, geom.Point{5, 5})
	if err != nil {
		t.Fatal(err)
	}
	assertPoint(t, got, geom.Point{5, 0})
}

func TestProject_ClampedToEndpoint(t *testing.T) {
	// Foot falls before a; the nearer endpoint a is returned.
	got, err := geom.Project(geom.Point{0, 0}, geom.Point{10, 0}, geom.Point{-3, 5})
	if err != nil {
		t.Fatal(err)
	}
	assertPoint(t, got, geom.Point{0, 0})

	// And symmetrically past b.
	got, err = geom.Project(geom.Point{0, 0}, geom.Point{10, 0}, geom.Point{14, -2})
	if err != nil {
		t.Fatal(err)
	}
	assertPoint(t, got, geom.Point{10, 0})
}

func TestProject_DegenerateSegment(t *testing.T) {
	// a == b: the segment is a point; the projection is that point.
	got, err := geom.Project(geom.Point{2, 3}, geom.Point{2, 3}, geom.Point{7, 7})
	if err != nil {
		t.Fatal(err)
	}
	assertPoint(t, got, geom.Point{2, 3})
}

func TestProject_RejectsNonPlanar(t *testing.T) {
	_, err := geom.Project(geom.Point{0, 0, 0}, geom.Point{1, 0, 0}, geom.Point{0, 1, 0})
	if !errors.Is(err, geom.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch for 3-D input, got %v", err)
	}
}

// assertPoint compares two points coordinate-wise within epsGeom.
func assertPoint(t *testing.T, got, want geom.Point) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("point dimension = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > epsGeom {
			t.Fatalf("point = %v; want %v", got, want)
		}
	}
}
