// Package debug provides debug visualization geometry.
package debug

import "github.com/Faultbox/bodymark/pkg/math"

// BoxWireframeVertexCount is the number of vertices for a box wireframe (12 edges × 2).
const BoxWireframeVertexCount = 24

// BoxWireframe returns line vertices for the edges of b grown by padding on
// every side, two endpoints per edge. An empty box yields nil.
func BoxWireframe(b math.Box3, padding float64) []math.Vec3 {
	if b.IsEmpty() {
		return nil
	}
	lo := b.Min.Sub(math.Vec3{X: padding, Y: padding, Z: padding})
	hi := b.Max.Add(math.Vec3{X: padding, Y: padding, Z: padding})

	c := func(x, y, z float64) math.Vec3 { return math.Vec3{X: x, Y: y, Z: z} }
	return []math.Vec3{
		// Bottom face
		c(lo.X, lo.Y, lo.Z), c(hi.X, lo.Y, lo.Z),
		c(hi.X, lo.Y, lo.Z), c(hi.X, lo.Y, hi.Z),
		c(hi.X, lo.Y, hi.Z), c(lo.X, lo.Y, hi.Z),
		c(lo.X, lo.Y, hi.Z), c(lo.X, lo.Y, lo.Z),
		// Top face
		c(lo.X, hi.Y, lo.Z), c(hi.X, hi.Y, lo.Z),
		c(hi.X, hi.Y, lo.Z), c(hi.X, hi.Y, hi.Z),
		c(hi.X, hi.Y, hi.Z), c(lo.X, hi.Y, hi.Z),
		c(lo.X, hi.Y, hi.Z), c(lo.X, hi.Y, lo.Z),
		// Vertical edges
		c(lo.X, lo.Y, lo.Z), c(lo.X, hi.Y, lo.Z),
		c(hi.X, lo.Y, lo.Z), c(hi.X, hi.Y, lo.Z),
		c(hi.X, lo.Y, hi.Z), c(hi.X, hi.Y, hi.Z),
		c(lo.X, lo.Y, hi.Z), c(lo.X, hi.Y, hi.Z),
	}
}
