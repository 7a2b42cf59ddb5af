package landmark

import (
	"errors"

	"github.com/Faultbox/bodymark/internal/mesh"
	"github.com/Faultbox/bodymark/pkg/math"
)

// ErrUnknownRing is returned for ring names outside the fixed set.
var ErrUnknownRing = errors.New("unknown measurement ring")

// Index returns the flat-buffer index of l for variant v.
func Index(v mesh.Variant, l Landmark) (int, bool) {
	t := tableFor(v)
	if t == nil || l < 0 || l >= numLandmarks {
		return 0, false
	}
	return t[l], true
}

// Locate resolves l on m. Meshes without tables yield the origin.
func Locate(m *mesh.Mesh, l Landmark) math.Vec3 {
	i, ok := Index(m.Variant(), l)
	if !ok {
		return math.Vec3{}
	}
	return m.Vertex(i)
}

// RingIndices returns the ordered contour indices of r for variant v.
// The slice is shared and must not be modified.
func RingIndices(v mesh.Variant, r Ring) ([]int, bool) {
	for _, d := range ringsFor(v) {
		if d.ring == r {
			return d.indices, true
		}
	}
	return nil, false
}

// RingPoints resolves the contour of r on m, or nil when m has no
// definition for r.
func RingPoints(m *mesh.Mesh, r Ring) []math.Vec3 {
	idx, ok := RingIndices(m.Variant(), r)
	if !ok {
		return nil
	}
	pts := make([]math.Vec3, len(idx))
	for i, vi := range idx {
		pts[i] = m.Vertex(vi)
	}
	return pts
}

// Rings lists the rings defined for v in table order.
func Rings(v mesh.Variant) []Ring {
	defs := ringsFor(v)
	out := make([]Ring, len(defs))
	for i, d := range defs {
		out[i] = d.ring
	}
	return out
}

func tableFor(v mesh.Variant) *Table {
	switch v {
	case mesh.VariantPhoto:
		return &photoLandmarks
	case mesh.VariantStats:
		return &statsLandmarks
	}
	return nil
}

func ringsFor(v mesh.Variant) []ringDef {
	switch v {
	case mesh.VariantPhoto:
		return photoRings
	case mesh.VariantStats:
		return statsRings
	}
	return nil
}
