// Package posture builds camera-projected overlay segments that depict
// posture deviation angles against dashed reference lines.
package posture

import (
	gomath "math"

	"github.com/Faultbox/bodymark/pkg/math"
)

// Segment is a drawable line segment.
type Segment [2]math.Vec3

// Length returns the distance between the endpoints.
func (s Segment) Length() float64 {
	return s[0].Distance(s[1])
}

// HorizontalSegment returns a segment centered on anchor, tilted by angle
// (radians) in the anchor's X-Y plane, with half-length width/2. Each
// endpoint is pushed along its line of sight from the camera until it sits
// at Z = depth, so both ends lie on the same plane facing the camera.
//
// Neither offset point may share the camera's Z coordinate.
func HorizontalSegment(anchor math.Vec3, width, angle, depth float64, cam math.Vec3) Segment {
	radius := width / 2

	dx := radius * gomath.Cos(angle)
	dy := radius * gomath.Sin(angle)

	start := math.Vec3{X: anchor.X + dx, Y: anchor.Y + dy, Z: anchor.Z}
	end := math.Vec3{X: anchor.X - dx, Y: anchor.Y - dy, Z: anchor.Z}

	return Segment{
		math.LineThrough(start, cam).AtZ(depth),
		math.LineThrough(end, cam).AtZ(depth),
	}
}

// VerticalSegment is the Y-Z plane counterpart of HorizontalSegment, solved
// at X = depth. angle is measured from the Y axis. When midpoint is false the
// anchor is the start of the segment and height is its full length.
func VerticalSegment(anchor math.Vec3, height, angle, depth float64, cam math.Vec3, midpoint bool) Segment {
	radius := height
	if midpoint {
		radius = height / 2
	}

	dy := radius * gomath.Cos(angle)
	dz := radius * gomath.Sin(angle)

	start := anchor
	end := math.Vec3{X: anchor.X, Y: anchor.Y + dy, Z: anchor.Z + dz}
	if midpoint {
		start = math.Vec3{X: anchor.X, Y: anchor.Y + dy, Z: anchor.Z + dz}
		end = math.Vec3{X: anchor.X, Y: anchor.Y - dy, Z: anchor.Z - dz}
	}

	return Segment{
		math.LineThrough(start, cam).AtX(depth),
		math.LineThrough(end, cam).AtX(depth),
	}
}

// chainSegment links from to the level of to along a line leaning angle
// degrees off vertical in the Z-Y plane, then projects both ends onto
// X = depth. from may already be a projected point.
func chainSegment(from, to math.Vec3, angle, depth float64, cam math.Vec3) Segment {
	hit := math.Intersect(
		math.Ray2{Point: from.ZY(), Angle: math.DegToRad(90 - angle)},
		math.Ray2{Point: to.ZY(), Angle: 0},
	)
	bend := math.Vec3{X: to.X, Y: hit.Y, Z: hit.X}

	return Segment{
		math.LineThrough(from, cam).AtX(depth),
		math.LineThrough(bend, cam).AtX(depth),
	}
}
