package posture

import (
	"slices"

	"github.com/Faultbox/bodymark/internal/engine/camera"
	"github.com/Faultbox/bodymark/internal/landmark"
	"github.com/Faultbox/bodymark/internal/mesh"
	"github.com/Faultbox/bodymark/pkg/math"
	"go.uber.org/zap"
)

// Dash describes the dash pattern of a reference line.
type Dash struct {
	Length float64 `yaml:"length"`
	Gap    float64 `yaml:"gap"`
}

// Line is a dashed reference line plus the solid measured polyline drawn
// against it. Measured holds one segment for front lines and the five-link
// ankle to head chain for the side line.
type Line struct {
	Landmark  string    `yaml:"landmark"`
	Angle     float64   `yaml:"angle"`
	Reference Segment   `yaml:"reference"`
	Dash      Dash      `yaml:"dash"`
	Measured  []Segment `yaml:"measured"`
}

// Clone returns a copy of l that shares no memory with it.
func (l Line) Clone() Line {
	l.Measured = slices.Clone(l.Measured)
	return l
}

// FrontAngles are front-view tilt angles in degrees. Nil entries were not
// measured and produce no line.
type FrontAngles struct {
	Ear      *float64 `yaml:"ear,omitempty"`
	Shoulder *float64 `yaml:"shoulder,omitempty"`
	TopHip   *float64 `yaml:"top_hip,omitempty"`
}

// SideAngles are side-view body line angles in degrees, in the order
// ankle, knee, hip, shoulder.
type SideAngles [4]float64

// ChainLinks is the number of segments in a side posture chain:
// start to ankle, ankle to knee, knee to hip, hip to shoulder, shoulder to head.
const ChainLinks = 5

// Options tunes line proportions.
type Options struct {
	ReferenceWidthScale float64 `yaml:"reference_width_scale" toml:"reference_width_scale"` // relative to the body width
	MeasuredWidthScale  float64 `yaml:"measured_width_scale" toml:"measured_width_scale"`   // relative to the body width
	FrontDashDivisor    float64 `yaml:"front_dash_divisor" toml:"front_dash_divisor"`       // reference length / dash length
	SideDashDivisor     float64 `yaml:"side_dash_divisor" toml:"side_dash_divisor"`         // reference length / dash length
}

// DefaultOptions returns the standard line proportions.
func DefaultOptions() Options {
	return Options{
		ReferenceWidthScale: 1.1,
		MeasuredWidthScale:  0.9,
		FrontDashDivisor:    30,
		SideDashDivisor:     40,
	}
}

// Builder composes posture lines for one mesh.
type Builder struct {
	opts Options
	log  *zap.Logger
}

// NewBuilder returns a builder. A nil logger discards output.
func NewBuilder(opts Options, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{opts: opts, log: log}
}

// Front builds one horizontal line per measured front angle. ok is false
// when the camera is not looking at the front of the body or the mesh has
// no landmark table; no geometry is produced then.
func (b *Builder) Front(m *mesh.Mesh, cam *camera.State, angles FrontAngles) ([]Line, bool) {
	if cam.Direction != camera.Front {
		b.log.Debug("front posture lines need a front camera", zap.String("direction", string(cam.Direction)))
		return nil, false
	}
	if !m.Variant().Annotatable() {
		return nil, false
	}

	box := m.Bounds()
	width := box.Max.X - box.Min.X
	if width < 0 {
		width = -width
	}
	depth := box.Max.Z

	requests := []struct {
		at    landmark.Landmark
		angle *float64
	}{
		{landmark.MidPointOfEyes, angles.Ear},
		{landmark.MidPointOfShoulders, angles.Shoulder},
		{landmark.MidPointOfPelvis, angles.TopHip},
	}

	lines := make([]Line, 0, len(requests))
	for _, r := range requests {
		if r.angle == nil {
			continue
		}
		anchor := landmark.Locate(m, r.at)

		ref := HorizontalSegment(anchor, width*b.opts.ReferenceWidthScale, 0, depth, cam.Position)
		dash := ref.Length() / b.opts.FrontDashDivisor

		measured := HorizontalSegment(anchor, width*b.opts.MeasuredWidthScale, math.DegToRad(*r.angle), depth, cam.Position)

		lines = append(lines, Line{
			Landmark:  r.at.String(),
			Angle:     *r.angle,
			Reference: ref,
			Dash:      Dash{Length: dash, Gap: dash},
			Measured:  []Segment{measured},
		})
	}

	return lines, true
}

// Side builds the vertical reference through the chest and the connected
// ankle, knee, hip, shoulder, head chain. ok is false unless the camera
// looks at the right side of the body and the mesh has a landmark table.
func (b *Builder) Side(m *mesh.Mesh, cam *camera.State, angles SideAngles) (Line, bool) {
	if cam.Direction != camera.Right {
		b.log.Debug("side posture line needs a right camera", zap.String("direction", string(cam.Direction)))
		return Line{}, false
	}
	if !m.Variant().Annotatable() {
		return Line{}, false
	}

	box := m.Bounds()
	height := box.Size().Y
	depth := box.Max.X
	eye := cam.Position

	ref := VerticalSegment(landmark.Locate(m, landmark.LeftChest), height, 0, depth, eye, true)
	head, floor := ref[0], ref[1]
	dash := ref.Length() / b.opts.SideDashDivisor

	ankle := landmark.Locate(m, landmark.LeftAnkle)
	knee := landmark.Locate(m, landmark.LeftKnee)
	hip := landmark.Locate(m, landmark.LeftHip)
	shoulder := landmark.Locate(m, landmark.LeftShoulder)

	chain := make([]Segment, 0, ChainLinks)
	chain = append(chain, chainSegment(ankle, floor, 0, depth, eye))
	chain = append(chain, chainSegment(ankle, knee, angles[0], depth, eye))
	chain = append(chain, chainSegment(chain[1][1], hip, angles[1], depth, eye))
	chain = append(chain, chainSegment(chain[2][1], shoulder, angles[2], depth, eye))
	chain = append(chain, chainSegment(chain[3][1], head, angles[3], depth, eye))

	return Line{
		Landmark:  landmark.LeftChest.String(),
		Reference: ref,
		Dash:      Dash{Length: dash, Gap: dash},
		Measured:  chain,
	}, true
}
