package math

import (
	"math"
	"testing"
)

func TestLineThroughSolve(t *testing.T) {
	l := LineThrough(Vec3{0, 0, 0}, Vec3{2, 4, 8})

	if got := l.AtX(1); got != (Vec3{1, 2, 4}) {
		t.Errorf("AtX(1) = %v, want (1, 2, 4)", got)
	}
	if got := l.AtY(1); got != (Vec3{0.5, 1, 2}) {
		t.Errorf("AtY(1) = %v, want (0.5, 1, 2)", got)
	}
	if got := l.AtZ(-8); got != (Vec3{-2, -4, -8}) {
		t.Errorf("AtZ(-8) = %v, want (-2, -4, -8)", got)
	}
}

func TestLineThroughSolvedCoordinateIsExact(t *testing.T) {
	l := LineThrough(Vec3{0.1, 0.7, 0.3}, Vec3{0.05, 1.2, 2.9})
	depth := 0.123456789

	if got := l.AtZ(depth); got.Z != depth {
		t.Errorf("AtZ(%v).Z = %v", depth, got.Z)
	}
	if got := l.AtX(depth); got.X != depth {
		t.Errorf("AtX(%v).X = %v", depth, got.X)
	}
}

func TestLineThroughZeroExtentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero Z extent")
		}
	}()

	LineThrough(Vec3{0, 0, 1}, Vec3{1, 1, 1}).AtZ(2)
}

// onLine reports whether q lies on the line through r.Point with heading r.Angle.
func onLine(q Vec2, r Ray2) float64 {
	d := q.Sub(r.Point)
	return math.Abs(d.X*math.Sin(r.Angle) - d.Y*math.Cos(r.Angle))
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Ray2
	}{
		{"diagonals", Ray2{Vec2{0, 0}, math.Pi / 4}, Ray2{Vec2{2, 0}, 3 * math.Pi / 4}},
		{"shallow", Ray2{Vec2{-1, 3}, 0.1}, Ray2{Vec2{5, -2}, 1.2}},
		{"horizontal and sloped", Ray2{Vec2{0.3, 1.1}, 0}, Ray2{Vec2{0.2, 0.4}, 1.4}},
		{"negative slopes", Ray2{Vec2{1, 1}, -0.7}, Ray2{Vec2{-3, 2}, 2.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Intersect(tt.a, tt.b)
			if d := onLine(p, tt.a); d > 1e-6 {
				t.Errorf("point %v is %g off line a", p, d)
			}
			if d := onLine(p, tt.b); d > 1e-6 {
				t.Errorf("point %v is %g off line b", p, d)
			}
		})
	}
}

func TestIntersectOrthogonal(t *testing.T) {
	v := Ray2{Vec2{0.25, 9}, math.Pi / 2}
	h := Ray2{Vec2{-7, 1.75}, 0}

	if got := Intersect(v, h); got != (Vec2{0.25, 1.75}) {
		t.Errorf("vertical x horizontal = %v, want (0.25, 1.75)", got)
	}
	if got := Intersect(h, v); got != (Vec2{0.25, 1.75}) {
		t.Errorf("horizontal x vertical = %v, want (0.25, 1.75)", got)
	}

	// A right angle built from degrees still takes the exact branch.
	v.Angle = DegToRad(90 - 0)
	if got := Intersect(v, h); got != (Vec2{0.25, 1.75}) {
		t.Errorf("degree-built vertical = %v, want (0.25, 1.75)", got)
	}
}

func TestIntersectParallel(t *testing.T) {
	a := Ray2{Vec2{1, 2}, 0.5}
	b := Ray2{Vec2{3, 9}, 0.5}

	if got := Intersect(a, b); got != a.Point {
		t.Errorf("parallel lines = %v, want first point %v", got, a.Point)
	}
}
