package ring

import (
	gomath "math"

	"github.com/Faultbox/bodymark/pkg/math"
)

// Parameterization selects the knot spacing of a Catmull-Rom curve.
type Parameterization int

// Knot spacings.
const (
	Centripetal Parameterization = iota
	Chordal
	Uniform
)

// arcDivisions is the number of chords used to approximate arc length.
const arcDivisions = 200

// Curve is a closed Catmull-Rom spline through a set of control points.
type Curve struct {
	points  []math.Vec3
	kind    Parameterization
	tension float64

	lengths []float64 // cumulative chord lengths, lazily built
}

// NewCurve returns a closed curve through points. tension only affects
// Uniform curves.
func NewCurve(points []math.Vec3, kind Parameterization, tension float64) *Curve {
	return &Curve{points: points, kind: kind, tension: tension}
}

// NewRingCurve returns the closed chordal curve used for measurement rings.
func NewRingCurve(points []math.Vec3) *Curve {
	return NewCurve(points, Chordal, 1.0)
}

// Point returns the curve position at t in [0, 1]. Point(0) and Point(1)
// coincide on the first control point.
func (c *Curve) Point(t float64) math.Vec3 {
	n := len(c.points)
	switch n {
	case 0:
		return math.Vec3{}
	case 1:
		return c.points[0]
	}

	p := float64(n) * t
	i := int(gomath.Floor(p))
	w := p - float64(i)
	i = ((i % n) + n) % n

	p0 := c.points[(i-1+n)%n]
	p1 := c.points[i]
	p2 := c.points[(i+1)%n]
	p3 := c.points[(i+2)%n]

	if c.kind == Uniform {
		return math.Vec3{
			X: uniform(p0.X, p1.X, p2.X, p3.X, c.tension).at(w),
			Y: uniform(p0.Y, p1.Y, p2.Y, p3.Y, c.tension).at(w),
			Z: uniform(p0.Z, p1.Z, p2.Z, p3.Z, c.tension).at(w),
		}
	}

	pow := 0.25
	if c.kind == Chordal {
		pow = 0.5
	}
	dt0 := gomath.Pow(p1.Sub(p0).LengthSq(), pow)
	dt1 := gomath.Pow(p2.Sub(p1).LengthSq(), pow)
	dt2 := gomath.Pow(p3.Sub(p2).LengthSq(), pow)

	// Guard against repeated points.
	if dt1 < 1e-4 {
		dt1 = 1
	}
	if dt0 < 1e-4 {
		dt0 = dt1
	}
	if dt2 < 1e-4 {
		dt2 = dt1
	}

	return math.Vec3{
		X: nonUniform(p0.X, p1.X, p2.X, p3.X, dt0, dt1, dt2).at(w),
		Y: nonUniform(p0.Y, p1.Y, p2.Y, p3.Y, dt0, dt1, dt2).at(w),
		Z: nonUniform(p0.Z, p1.Z, p2.Z, p3.Z, dt0, dt1, dt2).at(w),
	}
}

// Length returns the approximate arc length of the curve.
func (c *Curve) Length() float64 {
	l := c.arcLengths()
	return l[len(l)-1]
}

// PointAt returns the point at fraction u of the arc length.
func (c *Curve) PointAt(u float64) math.Vec3 {
	return c.Point(c.arcToT(u))
}

// Sample returns n+1 points evenly spaced by arc length; the first and last
// coincide because the curve is closed.
func (c *Curve) Sample(n int) []math.Vec3 {
	out := make([]math.Vec3, n+1)
	for i := range out {
		out[i] = c.PointAt(float64(i) / float64(n))
	}
	return out
}

func (c *Curve) arcLengths() []float64 {
	if c.lengths != nil {
		return c.lengths
	}
	lengths := make([]float64, arcDivisions+1)
	prev := c.Point(0)
	for i := 1; i <= arcDivisions; i++ {
		cur := c.Point(float64(i) / arcDivisions)
		lengths[i] = lengths[i-1] + cur.Distance(prev)
		prev = cur
	}
	c.lengths = lengths
	return lengths
}

// arcToT maps an arc-length fraction to the curve parameter.
func (c *Curve) arcToT(u float64) float64 {
	lengths := c.arcLengths()
	total := lengths[len(lengths)-1]
	if total == 0 {
		return u
	}
	target := u * total

	lo, hi := 0, len(lengths)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch d := lengths[mid] - target; {
		case d < 0:
			lo = mid + 1
		case d > 0:
			hi = mid - 1
		default:
			return float64(mid) / arcDivisions
		}
	}
	i := hi
	if i < 0 {
		return 0
	}
	if i >= len(lengths)-1 {
		return 1
	}

	before := lengths[i]
	seg := lengths[i+1] - before
	frac := (target - before) / seg
	return (float64(i) + frac) / arcDivisions
}

// cubic holds the coefficients of c0 + c1*t + c2*t^2 + c3*t^3.
type cubic struct {
	c0, c1, c2, c3 float64
}

func (p cubic) at(t float64) float64 {
	t2 := t * t
	return p.c0 + p.c1*t + p.c2*t2 + p.c3*t2*t
}

// hermite builds the cubic from x0 to x1 with tangents t0 and t1.
func hermite(x0, x1, t0, t1 float64) cubic {
	return cubic{
		c0: x0,
		c1: t0,
		c2: -3*x0 + 3*x1 - 2*t0 - t1,
		c3: 2*x0 - 2*x1 + t0 + t1,
	}
}

func uniform(x0, x1, x2, x3, tension float64) cubic {
	return hermite(x1, x2, tension*(x2-x0), tension*(x3-x1))
}

func nonUniform(x0, x1, x2, x3, dt0, dt1, dt2 float64) cubic {
	t1 := (x1-x0)/dt0 - (x2-x0)/(dt0+dt1) + (x2-x1)/dt1
	t2 := (x2-x1)/dt1 - (x3-x1)/(dt1+dt2) + (x3-x2)/dt2

	// Rescale tangents for parameterization in [0, 1].
	return hermite(x1, x2, t1*dt1, t2*dt1)
}
