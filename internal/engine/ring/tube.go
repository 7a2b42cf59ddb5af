package ring

import (
	gomath "math"
	"slices"

	"github.com/Faultbox/bodymark/pkg/math"
)

// Tube defaults for measurement rings.
const (
	DefaultTubularSegments = 100
	DefaultRadialSegments  = 8
	DefaultRadius          = 0.01
)

const tangentDelta = 1e-4

// Tube is a constant-radius tube swept along a closed curve. Rings[i] holds
// RadialSegments+1 vertices around Path[i]; the last vertex of every ring
// repeats the first, and the last ring repeats the first ring.
type Tube struct {
	Radius float64       `yaml:"radius"`
	Path   []math.Vec3   `yaml:"path"`
	Rings  [][]math.Vec3 `yaml:"rings"`
}

// Clone returns a deep copy of t.
func (t Tube) Clone() Tube {
	t.Path = slices.Clone(t.Path)
	if t.Rings != nil {
		rings := make([][]math.Vec3, len(t.Rings))
		for i, r := range t.Rings {
			rings[i] = slices.Clone(r)
		}
		t.Rings = rings
	}
	return t
}

// NewTube sweeps a circle of the given radius along c using
// rotation-minimizing frames, twisted evenly so the seam closes.
func NewTube(c *Curve, tubularSegments, radialSegments int, radius float64) Tube {
	n := tubularSegments

	path := make([]math.Vec3, n+1)
	tangents := make([]math.Vec3, n+1)
	for i := 0; i <= n; i++ {
		u := float64(i) / float64(n)
		path[i] = c.PointAt(u)
		tangents[i] = tangentAt(c, u)
	}

	normals, binormals := frames(tangents)

	rings := make([][]math.Vec3, n+1)
	for i := range rings {
		ring := make([]math.Vec3, radialSegments+1)
		for j := range ring {
			v := float64(j) / float64(radialSegments) * 2 * gomath.Pi
			sin, cos := gomath.Sin(v), -gomath.Cos(v)
			dir := normals[i].Scale(cos).Add(binormals[i].Scale(sin)).Normalize()
			ring[j] = path[i].Add(dir.Scale(radius))
		}
		rings[i] = ring
	}

	return Tube{Radius: radius, Path: path, Rings: rings}
}

func tangentAt(c *Curve, u float64) math.Vec3 {
	a := wrap(u - tangentDelta)
	b := wrap(u + tangentDelta)
	return c.PointAt(b).Sub(c.PointAt(a)).Normalize()
}

func wrap(u float64) float64 {
	u -= gomath.Floor(u)
	return u
}

// frames returns parallel-transported normals and binormals for a closed
// path whose first and last tangents are equal.
func frames(tangents []math.Vec3) (normals, binormals []math.Vec3) {
	n := len(tangents) - 1
	normals = make([]math.Vec3, n+1)
	binormals = make([]math.Vec3, n+1)

	// Seed the first normal from the axis least aligned with the tangent.
	t0 := tangents[0]
	axis := math.Vec3{X: 1}
	least := gomath.Abs(t0.X)
	if ay := gomath.Abs(t0.Y); ay <= least {
		least, axis = ay, math.Vec3{Y: 1}
	}
	if az := gomath.Abs(t0.Z); az <= least {
		axis = math.Vec3{Z: 1}
	}
	side := t0.Cross(axis).Normalize()
	normals[0] = t0.Cross(side)
	binormals[0] = t0.Cross(normals[0])

	for i := 1; i <= n; i++ {
		normals[i] = normals[i-1]
		turn := tangents[i-1].Cross(tangents[i])
		if turn.Length() > 1e-12 {
			theta := gomath.Acos(clamp(tangents[i-1].Dot(tangents[i])))
			normals[i] = normals[i].Rotate(turn.Normalize(), theta)
		}
		binormals[i] = tangents[i].Cross(normals[i])
	}

	// Spread the residual twist so the last frame lands on the first.
	theta := gomath.Acos(clamp(normals[0].Dot(normals[n]))) / float64(n)
	if t0.Dot(normals[0].Cross(normals[n])) > 0 {
		theta = -theta
	}
	for i := 1; i <= n; i++ {
		normals[i] = normals[i].Rotate(tangents[i], theta*float64(i))
		binormals[i] = tangents[i].Cross(normals[i])
	}

	return normals, binormals
}

func clamp(v float64) float64 {
	return gomath.Max(-1, gomath.Min(1, v))
}
