package camera

import (
	gomath "math"

	"github.com/Faultbox/bodymark/pkg/math"
)

// Viewport is the canvas size in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

// ScreenToWorld casts a ray from the camera through pixel (x, y) and returns
// where it crosses the z = 0 plane. ok is false when the ray runs parallel
// to the plane or the viewport is degenerate.
func ScreenToWorld(x, y float64, s *State, vp Viewport) (p math.Vec3, ok bool) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return math.Vec3{}, false
	}

	// Screen to normalized device coords (-1 to 1), Y flipped.
	ndcX := x/vp.Width*2 - 1
	ndcY := -(y/vp.Height)*2 + 1

	invViewProj := s.Projection().Mul(s.View()).Inverse()
	far := invViewProj.TransformVec3(math.Vec3{X: ndcX, Y: ndcY, Z: 1})

	dir := far.Sub(s.Position).Normalize()
	if gomath.Abs(dir.Z) < 1e-9 {
		return math.Vec3{}, false
	}

	distance := -s.Position.Z / dir.Z
	return s.Position.Add(dir.Scale(distance)), true
}
