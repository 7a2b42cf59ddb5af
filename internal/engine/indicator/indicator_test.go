package indicator

import (
	"errors"
	"testing"

	"github.com/Faultbox/bodymark/internal/engine/camera"
	"github.com/Faultbox/bodymark/internal/landmark"
	"github.com/Faultbox/bodymark/internal/mesh"
	"github.com/Faultbox/bodymark/internal/meshtest"
	"github.com/Faultbox/bodymark/pkg/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSide(t *testing.T) {
	s, err := ParseSide("right")
	require.NoError(t, err)
	assert.Equal(t, Right, s)

	_, err = ParseSide("top")
	assert.True(t, errors.Is(err, ErrUnknownSide))
}

func TestLayoutSingle(t *testing.T) {
	got := Layout(1.8, []Indicator{{Name: landmark.WaistGirth, Side: Left}})
	assert.Equal(t, map[landmark.Ring]float64{landmark.WaistGirth: 0.9}, got)
}

func TestLayoutSpread(t *testing.T) {
	got := Layout(3, []Indicator{
		{Name: landmark.BustGirth, Side: Right},
		{Name: landmark.WaistGirth, Side: Right},
		{Name: landmark.CalfGirthR, Side: Right},
	})
	assert.Equal(t, 3.0, got[landmark.BustGirth])
	assert.Equal(t, 1.5, got[landmark.WaistGirth])
	assert.Equal(t, 0.0, got[landmark.CalfGirthR])
}

func TestLayoutSidesIndependent(t *testing.T) {
	got := Layout(2, []Indicator{
		{Name: landmark.BustGirth, Side: Left},
		{Name: landmark.WaistGirth, Side: Right},
		{Name: landmark.HipGirth, Side: Left},
		{Name: landmark.ThighGirthR, Side: Left},
	})
	assert.Equal(t, 1.0, got[landmark.WaistGirth])
	assert.Equal(t, 2.0, got[landmark.BustGirth])
	assert.Equal(t, 1.0, got[landmark.HipGirth])
	assert.Equal(t, 0.0, got[landmark.ThighGirthR])
}

func TestLayoutGapsSumToHeight(t *testing.T) {
	rings := []landmark.Ring{
		landmark.BustGirth, landmark.UpperArmGirthR, landmark.WaistGirth,
		landmark.HipGirth, landmark.ThighGirthR, landmark.CalfGirthR,
	}
	for n := 2; n <= len(rings); n++ {
		inds := make([]Indicator, n)
		for i := range inds {
			inds[i] = Indicator{Name: rings[i], Side: Right}
		}
		got := Layout(1.7, inds)

		var sum float64
		for i := 1; i < n; i++ {
			gap := got[rings[i-1]] - got[rings[i]]
			assert.Greater(t, gap, 0.0)
			sum += gap
		}
		assert.InDelta(t, 1.7, sum, 1e-12, "n=%d", n)
	}
}

func TestLayoutSkipsUnnamed(t *testing.T) {
	got := Layout(2, []Indicator{
		{Side: Right},
		{Name: landmark.HipGirth, Side: Right},
		{Name: landmark.WaistGirth, Side: "up"},
	})
	assert.Equal(t, map[landmark.Ring]float64{landmark.HipGirth: 0}, got)
}

func fitted(m *mesh.Mesh) *camera.State {
	s := camera.NewState(50, 1, 0.1, 100)
	s.FitToBounds(m.Bounds(), camera.Front, camera.DefaultFitOffset)
	return s
}

func TestAnchors(t *testing.T) {
	m := meshtest.Stats()
	cam := fitted(m)
	vp := camera.Viewport{Width: 500, Height: 500}

	anchors, ok := NewPlacer(DefaultOptions(), nil).Anchors(m, cam, vp, []Indicator{
		{Name: landmark.WaistGirth, Side: Right},
		{Name: landmark.Ring("neckGirth"), Side: Right},
		{Name: landmark.HipGirth, Side: Left, HideLine: true},
	})
	require.True(t, ok)
	require.Len(t, anchors, 2)

	edge, ok := camera.ScreenToWorld(DefaultExpectedWidth, 0, cam, vp)
	require.True(t, ok)
	assert.Less(t, edge.X, 0.0)

	waist := anchors[0]
	assert.Equal(t, landmark.WaistGirth, waist.Name)
	assert.Equal(t, math.Extrema(landmark.RingPoints(m, landmark.WaistGirth)).MaxX, waist.Edge)
	assert.Equal(t, -edge.X, waist.Position.X)
	assert.Equal(t, edge.Z, waist.Position.Z)
	assert.InDelta(t, meshtest.Height/2, waist.Position.Y, 1e-6)
	require.NotNil(t, waist.Leader)
	assert.Equal(t, waist.Position, waist.Leader.From)
	assert.Equal(t, waist.Edge, waist.Leader.To)
	assert.Equal(t, DefaultLeaderDash, waist.Leader.Dash)
	assert.Equal(t, DefaultLeaderDash, waist.Leader.Gap)

	hip := anchors[1]
	assert.Equal(t, math.Extrema(landmark.RingPoints(m, landmark.HipGirth)).MinX, hip.Edge)
	assert.Equal(t, edge.X, hip.Position.X)
	assert.Nil(t, hip.Leader)
}

func TestAnchorsUnsupportedMesh(t *testing.T) {
	m := mesh.New(make([]float32, 300), mesh.Options{})
	anchors, ok := NewPlacer(DefaultOptions(), nil).Anchors(m, camera.NewState(50, 1, 0.1, 100),
		camera.Viewport{Width: 500, Height: 500}, []Indicator{{Name: landmark.WaistGirth, Side: Right}})
	assert.True(t, ok)
	assert.Empty(t, anchors)
}

func TestAnchorsDegenerateViewport(t *testing.T) {
	m := meshtest.Stats()
	_, ok := NewPlacer(DefaultOptions(), nil).Anchors(m, fitted(m), camera.Viewport{},
		[]Indicator{{Name: landmark.WaistGirth, Side: Right}})
	assert.False(t, ok)
}
