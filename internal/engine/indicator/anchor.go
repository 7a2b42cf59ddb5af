package indicator

import (
	"go.uber.org/zap"

	"github.com/Faultbox/bodymark/internal/engine/camera"
	"github.com/Faultbox/bodymark/internal/landmark"
	"github.com/Faultbox/bodymark/internal/mesh"
	"github.com/Faultbox/bodymark/pkg/math"
)

// Defaults for indicator placement.
const (
	DefaultExpectedWidth = 110 // pixels
	DefaultLeaderDash    = 0.02
)

// Options controls indicator placement.
type Options struct {
	ExpectedWidth float64 `yaml:"expected_width" toml:"expected_width"`
	LeaderDash    float64 `yaml:"leader_dash" toml:"leader_dash"`
}

// DefaultOptions returns the placement used by the viewer.
func DefaultOptions() Options {
	return Options{ExpectedWidth: DefaultExpectedWidth, LeaderDash: DefaultLeaderDash}
}

// Leader is the dashed line from an indicator to its ring.
type Leader struct {
	From math.Vec3 `yaml:"from"`
	To   math.Vec3 `yaml:"to"`
	Dash float64   `yaml:"dash"`
	Gap  float64   `yaml:"gap"`
}

// Anchor is the computed placement of one indicator.
type Anchor struct {
	Name     landmark.Ring `yaml:"name"`
	Side     Side          `yaml:"side"`
	Position math.Vec3     `yaml:"position"`
	Edge     math.Vec3     `yaml:"edge"`
	Leader   *Leader       `yaml:"leader,omitempty"`
}

// Clone returns a copy of a with its own leader.
func (a Anchor) Clone() Anchor {
	if a.Leader != nil {
		l := *a.Leader
		a.Leader = &l
	}
	return a
}

// Placer computes indicator anchors for a camera snapshot.
type Placer struct {
	opts Options
	log  *zap.Logger
}

// NewPlacer creates a placer. A nil logger discards output.
func NewPlacer(opts Options, log *zap.Logger) *Placer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Placer{opts: opts, log: log}
}

// Anchors places every indicator whose ring is defined for m. Each label sits
// at its layout height, laterally at the world point under the screen pixel
// (ExpectedWidth, 0), mirrored for the right side. Its leader ends at the
// ring's outermost point on that side. ok is false when the camera ray does
// not reach the z = 0 plane.
func (p *Placer) Anchors(m *mesh.Mesh, cam *camera.State, vp camera.Viewport, indicators []Indicator) ([]Anchor, bool) {
	type placed struct {
		Indicator
		points []math.Vec3
	}

	var usable []placed
	var kept []Indicator
	for _, ind := range indicators {
		pts := landmark.RingPoints(m, ind.Name)
		if len(pts) == 0 {
			p.log.Debug("indicator ring not defined for mesh",
				zap.String("ring", string(ind.Name)),
				zap.Stringer("variant", m.Variant()))
			continue
		}
		usable = append(usable, placed{ind, pts})
		kept = append(kept, ind)
	}
	if len(usable) == 0 {
		return nil, true
	}

	edge, ok := camera.ScreenToWorld(p.opts.ExpectedWidth, 0, cam, vp)
	if !ok {
		return nil, false
	}

	heights := Layout(m.Bounds().Size().Y, kept)

	out := make([]Anchor, 0, len(usable))
	for _, u := range usable {
		if u.Name == "" || (u.Side != Left && u.Side != Right) {
			continue
		}

		ext := math.Extrema(u.points)
		end, mirror := ext.MinX, 1.0
		if u.Side == Right {
			end, mirror = ext.MaxX, -1
		}

		a := Anchor{
			Name:     u.Name,
			Side:     u.Side,
			Position: math.Vec3{X: edge.X * mirror, Y: heights[u.Name], Z: edge.Z},
			Edge:     end,
		}
		if !u.HideLine {
			a.Leader = &Leader{From: a.Position, To: end, Dash: p.opts.LeaderDash, Gap: p.opts.LeaderDash}
		}
		out = append(out, a)
	}
	return out, true
}
