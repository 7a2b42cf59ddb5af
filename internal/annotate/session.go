// Package annotate ties the overlay builders to one subject mesh. A Session
// is the explicit annotation context: it owns the mesh for the lifetime of a
// subject and recomputes overlays from the camera snapshot passed to each
// call.
package annotate

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/bodymark/internal/engine/camera"
	"github.com/Faultbox/bodymark/internal/engine/debug"
	"github.com/Faultbox/bodymark/internal/engine/indicator"
	"github.com/Faultbox/bodymark/internal/engine/posture"
	"github.com/Faultbox/bodymark/internal/engine/ring"
	"github.com/Faultbox/bodymark/internal/landmark"
	"github.com/Faultbox/bodymark/internal/mesh"
	"github.com/Faultbox/bodymark/pkg/math"
)

// ErrUnsupportedSubject is returned for meshes without landmark tables.
var ErrUnsupportedSubject = errors.New("annotation unavailable for this subject")

// Options configures every overlay builder of a session.
type Options struct {
	Ring      ring.Options
	Posture   posture.Options
	Indicator indicator.Options
	FitOffset float64
}

// DefaultOptions returns the viewer defaults.
func DefaultOptions() Options {
	return Options{
		Ring:      ring.DefaultOptions(),
		Posture:   posture.DefaultOptions(),
		Indicator: indicator.DefaultOptions(),
		FitOffset: camera.DefaultFitOffset,
	}
}

// Overlay is the debug geometry of a subject.
type Overlay struct {
	Box     []math.Vec3    `yaml:"box"`
	Markers []debug.Marker `yaml:"markers"`
}

// Fit is a computed camera placement.
type Fit struct {
	Direction camera.Direction `yaml:"direction"`
	Distance  float64          `yaml:"distance"`
	Position  math.Vec3        `yaml:"position"`
	Target    math.Vec3        `yaml:"target"`
}

type frontKey struct {
	cam                   camera.State
	ear, shoulder, topHip float64
	has                   [3]bool
}

type sideKey struct {
	cam    camera.State
	angles posture.SideAngles
}

type indicatorKey struct {
	cam  camera.State
	vp   camera.Viewport
	inds string
}

type fitKey struct {
	dir    camera.Direction
	fov    float64
	offset float64
}

// Session annotates one mesh. It memoizes the last result of each operation
// and is not safe for concurrent use.
type Session struct {
	mesh *mesh.Mesh
	opts Options
	log  *zap.Logger

	posture *posture.Builder
	placer  *indicator.Placer

	rings      memo[struct{}, []ring.Geometry]
	front      memo[frontKey, []posture.Line]
	side       memo[sideKey, posture.Line]
	indicators memo[indicatorKey, []indicator.Anchor]
	fit        memo[fitKey, Fit]
}

// NewSession starts annotating m. A nil logger discards output.
func NewSession(m *mesh.Mesh, opts Options, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		mesh:    m,
		opts:    opts,
		log:     log,
		posture: posture.NewBuilder(opts.Posture, log.Named("posture")),
		placer:  indicator.NewPlacer(opts.Indicator, log.Named("indicator")),
	}
}

// Mesh returns the annotated mesh.
func (s *Session) Mesh() *mesh.Mesh {
	return s.mesh
}

// Variant returns the mesh variant.
func (s *Session) Variant() mesh.Variant {
	return s.mesh.Variant()
}

func (s *Session) check() error {
	if v := s.mesh.Variant(); !v.Annotatable() {
		return fmt.Errorf("%w: variant %s, %d floats", ErrUnsupportedSubject, v, s.mesh.Len())
	}
	return nil
}

// Rings builds the overlay of every ring defined for the mesh, in table order.
func (s *Session) Rings() ([]ring.Geometry, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	out, _, hit := s.rings.get(struct{}{}, func() ([]ring.Geometry, bool) {
		names := landmark.Rings(s.mesh.Variant())
		out := make([]ring.Geometry, 0, len(names))
		for _, r := range names {
			out = append(out, ring.Build(string(r), landmark.RingPoints(s.mesh, r), s.opts.Ring))
		}
		return out, true
	})
	s.logComputed("rings", hit)
	return cloneEach(out, ring.Geometry.Clone), nil
}

// FrontPosture builds the front posture lines for cam. ok is false when cam
// does not look at the front of the body.
func (s *Session) FrontPosture(cam camera.State, angles posture.FrontAngles) (lines []posture.Line, ok bool, err error) {
	if err := s.check(); err != nil {
		return nil, false, err
	}
	key := frontKey{cam: cam}
	for i, a := range []*float64{angles.Ear, angles.Shoulder, angles.TopHip} {
		if a == nil {
			continue
		}
		key.has[i] = true
		switch i {
		case 0:
			key.ear = *a
		case 1:
			key.shoulder = *a
		case 2:
			key.topHip = *a
		}
	}

	lines, ok, hit := s.front.get(key, func() ([]posture.Line, bool) {
		return s.posture.Front(s.mesh, &cam, angles)
	})
	s.logComputed("front posture", hit)
	return cloneEach(lines, posture.Line.Clone), ok, nil
}

// SidePosture builds the side posture chain for cam. ok is false when cam
// does not look at the right side of the body.
func (s *Session) SidePosture(cam camera.State, angles posture.SideAngles) (line posture.Line, ok bool, err error) {
	if err := s.check(); err != nil {
		return posture.Line{}, false, err
	}
	line, ok, hit := s.side.get(sideKey{cam: cam, angles: angles}, func() (posture.Line, bool) {
		return s.posture.Side(s.mesh, &cam, angles)
	})
	s.logComputed("side posture", hit)
	return line.Clone(), ok, nil
}

// Indicators places inds for cam on a canvas of size vp. ok is false when
// the screen edge cannot be resolved in world space.
func (s *Session) Indicators(cam camera.State, vp camera.Viewport, inds []indicator.Indicator) (anchors []indicator.Anchor, ok bool, err error) {
	if err := s.check(); err != nil {
		return nil, false, err
	}
	key := indicatorKey{cam: cam, vp: vp, inds: indicatorsKey(inds)}
	anchors, ok, hit := s.indicators.get(key, func() ([]indicator.Anchor, bool) {
		return s.placer.Anchors(s.mesh, &cam, vp, inds)
	})
	s.logComputed("indicators", hit)
	return cloneEach(anchors, indicator.Anchor.Clone), ok, nil
}

func indicatorsKey(inds []indicator.Indicator) string {
	var b strings.Builder
	for _, ind := range inds {
		fmt.Fprintf(&b, "%s|%s|%t;", ind.Name, ind.Side, ind.HideLine)
	}
	return b.String()
}

// Fit places cam so the mesh fills the view from dir and returns the
// placement. Only cam's projection settings are read. cam is left untouched
// when the mesh is empty or flat, or the offset leaves no positive distance.
func (s *Session) Fit(cam *camera.State, dir camera.Direction) (Fit, error) {
	if s.mesh.Len() == 0 {
		return Fit{}, fmt.Errorf("%w: empty mesh", ErrUnsupportedSubject)
	}
	fit, ok, hit := s.fit.get(fitKey{dir: dir, fov: cam.FOV, offset: s.opts.FitOffset}, func() (Fit, bool) {
		c := *cam
		d := c.FitToBounds(s.mesh.Bounds(), dir, s.opts.FitOffset)
		return Fit{Direction: dir, Distance: d, Position: c.Position, Target: c.Target}, d > 0
	})
	s.logComputed("fit", hit)
	if !ok {
		return Fit{}, fmt.Errorf("%w: fit distance %v is not positive", ErrUnsupportedSubject, fit.Distance)
	}

	cam.Position = fit.Position
	cam.Target = fit.Target
	cam.Direction = fit.Direction
	return fit, nil
}

// Debug returns the bounding box wireframe and raw ring markers.
func (s *Session) Debug() (Overlay, error) {
	if err := s.check(); err != nil {
		return Overlay{}, err
	}
	names := landmark.Rings(s.mesh.Variant())
	labels := make([]string, len(names))
	points := make([][]math.Vec3, len(names))
	for i, r := range names {
		labels[i] = string(r)
		points[i] = landmark.RingPoints(s.mesh, r)
	}
	return Overlay{
		Box:     debug.BoxWireframe(s.mesh.Bounds(), 0),
		Markers: debug.RingMarkers(labels, points),
	}, nil
}

// cloneEach copies cached results so callers cannot write through to the memo.
func cloneEach[T any](in []T, clone func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}

func (s *Session) logComputed(op string, hit bool) {
	if hit {
		return
	}
	s.log.Debug("overlay computed",
		zap.String("op", op),
		zap.Stringer("variant", s.mesh.Variant()))
}
