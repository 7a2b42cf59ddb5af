package landmark

import (
	"testing"

	"github.com/Faultbox/bodymark/internal/mesh"
	"github.com/Faultbox/bodymark/pkg/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rampMesh returns a mesh of the given length whose float at index i is
// i/n, so every resolved point is distinct and non-zero.
func rampMesh(n int) *mesh.Mesh {
	buf := make([]float32, n)
	for i := range buf {
		buf[i] = float32(i+1) / float32(n)
	}
	return mesh.New(buf, mesh.Options{})
}

func TestTablesStayInsideBuffer(t *testing.T) {
	for _, tc := range []struct {
		v mesh.Variant
		n int
	}{
		{mesh.VariantPhoto, mesh.PhotoBufferLen},
		{mesh.VariantStats, mesh.StatsBufferLen},
	} {
		t.Run(tc.v.String(), func(t *testing.T) {
			for _, l := range All() {
				i, ok := Index(tc.v, l)
				require.True(t, ok, l.String())
				assert.Zero(t, i%3, "%s index %d is not a vertex start", l, i)
				assert.Less(t, i+2, tc.n, l.String())
			}
			for _, r := range Rings(tc.v) {
				idx, ok := RingIndices(tc.v, r)
				require.True(t, ok)
				require.NotEmpty(t, idx)
				for _, i := range idx {
					assert.Zero(t, i%3, "%s index %d is not a vertex start", r, i)
					assert.Less(t, i+2, tc.n, string(r))
				}
			}
		})
	}
}

func TestLocateWithinBounds(t *testing.T) {
	for _, n := range []int{mesh.PhotoBufferLen, mesh.StatsBufferLen} {
		m := rampMesh(n)
		b := m.Bounds()
		for _, l := range All() {
			p := Locate(m, l)
			assert.False(t, p.IsZero(), l.String())
			assert.True(t, b.Contains(p), "%s at %v outside %v", l, p, b)
		}
	}
}

func TestLocateUnsupported(t *testing.T) {
	m := rampMesh(999)
	require.Equal(t, mesh.VariantUnsupported, m.Variant())

	for _, l := range All() {
		assert.Equal(t, math.Vec3{}, Locate(m, l))
	}
	assert.Nil(t, RingPoints(m, WaistGirth))
	assert.Empty(t, Rings(m.Variant()))
}

func TestRingPoints(t *testing.T) {
	m := rampMesh(mesh.StatsBufferLen)

	pts := RingPoints(m, WaistGirth)
	require.Len(t, pts, 22)

	idx, _ := RingIndices(mesh.VariantStats, WaistGirth)
	assert.Equal(t, m.Vertex(idx[0]), pts[0])
	assert.Equal(t, m.Vertex(idx[21]), pts[21])
}

func TestRingCounts(t *testing.T) {
	want := map[mesh.Variant]map[Ring]int{
		mesh.VariantPhoto: {ThighGirthR: 34, HipGirth: 25, WaistGirth: 46, CalfGirthR: 19, UpperArmGirthR: 10, BustGirth: 31},
		mesh.VariantStats: {CalfGirthR: 10, ThighGirthR: 16, HipGirth: 21, WaistGirth: 22, UpperArmGirthR: 8, BustGirth: 14},
	}
	for v, rings := range want {
		for r, n := range rings {
			idx, ok := RingIndices(v, r)
			require.True(t, ok)
			assert.Len(t, idx, n, "%s %s", v, r)
		}
	}
}

func TestParseRing(t *testing.T) {
	r, err := ParseRing("waistGirth")
	require.NoError(t, err)
	assert.Equal(t, WaistGirth, r)

	_, err = ParseRing("neckGirth")
	assert.ErrorIs(t, err, ErrUnknownRing)
}

func TestLandmarkString(t *testing.T) {
	assert.Equal(t, "mid-point-of-eyes", MidPointOfEyes.String())
	assert.Equal(t, "left-shoulder", LeftShoulder.String())
	assert.Equal(t, "Landmark(42)", Landmark(42).String())
}
