// Package meshtest builds synthetic body meshes with the exact buffer
// lengths of the supported variants, for tests.
package meshtest

import (
	gomath "math"

	"github.com/Faultbox/bodymark/internal/landmark"
	"github.com/Faultbox/bodymark/internal/mesh"
	"github.com/Faultbox/bodymark/pkg/math"
)

// Body proportions of the synthetic subject, in meters.
const (
	Height    = 1.8
	HalfWidth = 0.25
	HalfDepth = 0.15
)

// Landmarks holds where each posture landmark is placed.
var Landmarks = map[landmark.Landmark]math.Vec3{
	landmark.MidPointOfEyes:      {X: 0, Y: 1.625, Z: 0.0625},
	landmark.MidPointOfShoulders: {X: 0, Y: 1.5, Z: 0.03125},
	landmark.MidPointOfPelvis:    {X: 0, Y: 0.9375, Z: 0.0625},
	landmark.LeftChest:           {X: 0.125, Y: 1.25, Z: 0.09375},
	landmark.LeftAnkle:           {X: 0.125, Y: 0.0625, Z: 0},
	landmark.LeftKnee:            {X: 0.125, Y: 0.5, Z: 0.03125},
	landmark.LeftHip:             {X: 0.125, Y: 0.9375, Z: 0},
	landmark.LeftShoulder:        {X: 0.125, Y: 1.5, Z: -0.015625},
}

// RingHeights holds the height of each ring's ellipse.
var RingHeights = map[landmark.Ring]float64{
	landmark.CalfGirthR:     0.35,
	landmark.ThighGirthR:    0.7,
	landmark.HipGirth:       0.9,
	landmark.WaistGirth:     1.05,
	landmark.BustGirth:      1.3,
	landmark.UpperArmGirthR: 1.35,
}

// Stats returns a stats-variant mesh.
func Stats() *mesh.Mesh {
	return mesh.New(Buffer(mesh.StatsBufferLen, mesh.VariantStats), mesh.Options{})
}

// Photo returns a photo-variant mesh.
func Photo() *mesh.Mesh {
	return mesh.New(Buffer(mesh.PhotoBufferLen, mesh.VariantPhoto), mesh.Options{})
}

// Buffer fills n floats with vertices scattered over an elliptic cylinder,
// then places the landmarks and ring contours of variant v.
func Buffer(n int, v mesh.Variant) []float32 {
	buf := make([]float32, n)

	const golden = 2.399963229728653
	for k := 0; 3*k+2 < n; k++ {
		theta := float64(k) * golden
		frac := gomath.Mod(float64(k)*0.6180339887498949, 1)
		put(buf, 3*k, math.Vec3{
			X: HalfWidth * gomath.Cos(theta),
			Y: Height * frac,
			Z: HalfDepth * gomath.Sin(theta),
		})
	}
	// Pin the extremes so the bounds are exact.
	put(buf, 0, math.Vec3{X: -HalfWidth, Y: 0, Z: -HalfDepth})
	put(buf, 3, math.Vec3{X: HalfWidth, Y: Height, Z: HalfDepth})

	for _, r := range landmark.Rings(v) {
		idx, _ := landmark.RingIndices(v, r)
		for i, p := range RingContour(r, len(idx)) {
			put(buf, idx[i], p)
		}
	}

	for l, p := range Landmarks {
		if i, ok := landmark.Index(v, l); ok {
			put(buf, i, p)
		}
	}

	return buf
}

// RingContour returns n points on a slightly tilted ellipse around the ring's height.
func RingContour(r landmark.Ring, n int) []math.Vec3 {
	h := RingHeights[r]
	pts := make([]math.Vec3, n)
	for i := range pts {
		a := 2 * gomath.Pi * float64(i) / float64(n)
		pts[i] = math.Vec3{
			X: 0.15 * gomath.Cos(a),
			Y: h + 0.02*gomath.Cos(a) + 0.005*gomath.Sin(3*a),
			Z: 0.1 * gomath.Sin(a),
		}
	}
	return pts
}

func put(buf []float32, i int, p math.Vec3) {
	buf[i] = float32(p.X)
	buf[i+1] = float32(p.Y)
	buf[i+2] = float32(p.Z)
}
