package ring

import (
	"slices"

	"github.com/Faultbox/bodymark/pkg/math"
)

// Options controls how a ring contour becomes overlay geometry.
type Options struct {
	TubularSegments int     `yaml:"tubular_segments" toml:"tubular_segments"`
	RadialSegments  int     `yaml:"radial_segments" toml:"radial_segments"`
	Radius          float64 `yaml:"radius" toml:"radius"`

	// Debug skips smoothing and returns the raw contour points.
	Debug bool `yaml:"debug" toml:"debug"`
}

// DefaultOptions returns the tube parameters used for measurement rings.
func DefaultOptions() Options {
	return Options{
		TubularSegments: DefaultTubularSegments,
		RadialSegments:  DefaultRadialSegments,
		Radius:          DefaultRadius,
	}
}

// Geometry is the overlay built for one ring.
type Geometry struct {
	Name     string      `yaml:"name"`
	Raw      []math.Vec3 `yaml:"raw,omitempty"`
	Smoothed []math.Vec3 `yaml:"smoothed,omitempty"`
	Tube     *Tube       `yaml:"tube,omitempty"`
}

// Clone returns a deep copy of g.
func (g Geometry) Clone() Geometry {
	g.Raw = slices.Clone(g.Raw)
	g.Smoothed = slices.Clone(g.Smoothed)
	if g.Tube != nil {
		t := g.Tube.Clone()
		g.Tube = &t
	}
	return g
}

// Build smooths points and sweeps a tube along them. In debug mode only the
// raw points are returned. Fewer than three points produce no curve.
func Build(name string, points []math.Vec3, opts Options) Geometry {
	g := Geometry{Name: name}
	if opts.Debug || len(points) < 3 {
		g.Raw = points
		return g
	}

	g.Smoothed = Smooth(points)
	tube := NewTube(NewRingCurve(g.Smoothed), opts.TubularSegments, opts.RadialSegments, opts.Radius)
	g.Tube = &tube
	return g
}
