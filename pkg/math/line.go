package math

import "math"

// Line3 is the line through two points, stored parametrically as
// P(t) = origin + dir*t.
type Line3 struct {
	origin Vec3
	dir    Vec3
}

// LineThrough returns the line passing through a and b.
func LineThrough(a, b Vec3) Line3 {
	return Line3{origin: a, dir: b.Sub(a)}
}

// AtX returns the point on the line whose X coordinate is x.
// The line must not be perpendicular to the X axis.
func (l Line3) AtX(x float64) Vec3 {
	t := solve(x, l.origin.X, l.dir.X, "x")
	return Vec3{x, l.origin.Y + l.dir.Y*t, l.origin.Z + l.dir.Z*t}
}

// AtY returns the point on the line whose Y coordinate is y.
// The line must not be perpendicular to the Y axis.
func (l Line3) AtY(y float64) Vec3 {
	t := solve(y, l.origin.Y, l.dir.Y, "y")
	return Vec3{l.origin.X + l.dir.X*t, y, l.origin.Z + l.dir.Z*t}
}

// AtZ returns the point on the line whose Z coordinate is z.
// The line must not be perpendicular to the Z axis.
func (l Line3) AtZ(z float64) Vec3 {
	t := solve(z, l.origin.Z, l.dir.Z, "z")
	return Vec3{l.origin.X + l.dir.X*t, l.origin.Y + l.dir.Y*t, z}
}

func solve(target, origin, extent float64, axis string) float64 {
	if extent == 0 {
		panic("math: line has zero extent along " + axis)
	}
	return (target - origin) / extent
}

// Ray2 is a 2D line given by a point and its heading, in radians, measured
// from the horizontal axis.
type Ray2 struct {
	Point Vec2
	Angle float64
}

const angleEpsilon = 1e-12

func sameAngle(a, b float64) bool {
	return math.Abs(a-b) <= angleEpsilon
}

// Intersect returns the intersection point of two lines.
//
// A vertical line (π/2) crossing a horizontal one (0) is read straight from
// the coordinates without evaluating tan(π/2). Lines with equal headings are
// parallel or coincident; for those the point of a is returned as is.
func Intersect(a, b Ray2) Vec2 {
	if sameAngle(a.Angle, math.Pi/2) && sameAngle(b.Angle, 0) {
		return Vec2{a.Point.X, b.Point.Y}
	}
	if sameAngle(b.Angle, math.Pi/2) && sameAngle(a.Angle, 0) {
		return Vec2{b.Point.X, a.Point.Y}
	}
	if a.Angle == b.Angle {
		return a.Point
	}

	// y = m*x + c
	m1 := math.Tan(a.Angle)
	c1 := a.Point.Y - m1*a.Point.X

	m2 := math.Tan(b.Angle)
	c2 := b.Point.Y - m2*b.Point.X

	x := (c2 - c1) / (m1 - m2)
	y := m1*x + c1

	return Vec2{x, y}
}
