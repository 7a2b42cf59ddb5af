package debug

import "github.com/Faultbox/bodymark/pkg/math"

// Marker is a colored point drawn at a raw ring landmark.
type Marker struct {
	Ring     string     `yaml:"ring"`
	Position math.Vec3  `yaml:"position"`
	Color    [3]float32 `yaml:"color,flow"`
}

// palette cycles per ring so neighbouring contours stay distinguishable.
var palette = [][3]float32{
	{1, 0, 0},
	{0, 0.8, 0},
	{0, 0.4, 1},
	{1, 0.6, 0},
	{0.8, 0, 0.8},
	{0, 0.8, 0.8},
}

// RingMarkers returns one marker per point of each ring, colored by ring
// position in names.
func RingMarkers(names []string, points [][]math.Vec3) []Marker {
	var out []Marker
	for i, name := range names {
		if i >= len(points) {
			break
		}
		color := palette[i%len(palette)]
		for _, p := range points[i] {
			out = append(out, Marker{Ring: name, Position: p, Color: color})
		}
	}
	return out
}
