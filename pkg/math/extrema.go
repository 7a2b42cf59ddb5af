package math

// Extremes holds, for each axis, the first point reaching the maximum and
// the first point reaching the minimum coordinate.
type Extremes struct {
	MaxX, MinX Vec3
	MaxY, MinY Vec3
	MaxZ, MinZ Vec3
}

// Extrema scans points once and returns the axis-wise extreme points.
// Ties keep the earliest point. points must not be empty.
func Extrema(points []Vec3) Extremes {
	if len(points) == 0 {
		panic("math: Extrema of empty point set")
	}

	p := points[0]
	e := Extremes{MaxX: p, MinX: p, MaxY: p, MinY: p, MaxZ: p, MinZ: p}

	for _, c := range points[1:] {
		if c.X > e.MaxX.X {
			e.MaxX = c
		}
		if c.X < e.MinX.X {
			e.MinX = c
		}

		if c.Y > e.MaxY.Y {
			e.MaxY = c
		}
		if c.Y < e.MinY.Y {
			e.MinY = c
		}

		if c.Z > e.MaxZ.Z {
			e.MaxZ = c
		}
		if c.Z < e.MinZ.Z {
			e.MinZ = c
		}
	}

	return e
}

// Centroid returns the mean of points, or the origin for an empty set.
func Centroid(points []Vec3) Vec3 {
	if len(points) == 0 {
		return Vec3{}
	}
	var sum Vec3
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(points)))
}
