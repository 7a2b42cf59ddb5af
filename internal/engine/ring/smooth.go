// Package ring turns raw ring landmark points into a smooth closed curve and
// the tube drawn along it.
package ring

import "github.com/Faultbox/bodymark/pkg/math"

// Nudge is how far each point is pushed away from the centroid on X and Z.
const Nudge = 0.01

// Smooth flattens a ring contour onto the plane through its leftmost and
// rightmost points and pushes every point slightly away from the centroid,
// which keeps the closed spline from folding over near-colinear points.
//
// Each point's Y is interpolated by its X between the heights of the min-X
// and max-X points; those two points must differ in X. points must not be
// empty.
func Smooth(points []math.Vec3) []math.Vec3 {
	ext := math.Extrema(points)
	centroid := math.Centroid(points)

	x0, x1 := ext.MinX.X, ext.MaxX.X
	y0, y1 := ext.MinX.Y, ext.MaxX.Y

	out := make([]math.Vec3, len(points))
	for i, p := range points {
		out[i] = math.Vec3{
			X: p.X + away(centroid.X, p.X),
			Y: lerp(p.X, x0, x1, y0, y1),
			Z: p.Z + away(centroid.Z, p.Z),
		}
	}
	return out
}

// away returns the nudge pointing from c toward v. Points level with the
// centroid move in the positive direction.
func away(c, v float64) float64 {
	if c > v {
		return -Nudge
	}
	return Nudge
}

func lerp(x, x0, x1, y0, y1 float64) float64 {
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}
