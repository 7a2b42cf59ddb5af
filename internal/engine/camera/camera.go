// Package camera holds the perspective camera snapshot read by the overlay
// builders and the one-shot placement that frames a body in view.
package camera

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/bodymark/pkg/math"
)

// Direction names the side of the subject the camera looks from.
type Direction string

// Camera directions.
const (
	Front Direction = "front"
	Back  Direction = "back"
	Left  Direction = "left"
	Right Direction = "right"
)

// ErrUnknownDirection is returned by ParseDirection.
var ErrUnknownDirection = errors.New("unknown camera direction")

// ParseDirection validates a direction tag.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case Front, Back, Left, Right:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// axis returns the unit offset from the subject to the camera.
func (d Direction) axis() math.Vec3 {
	switch d {
	case Back:
		return math.Vec3{Z: -1}
	case Right:
		return math.Vec3{X: 1}
	case Left:
		return math.Vec3{X: -1}
	default:
		return math.Vec3{Z: 1}
	}
}

// DefaultFitOffset shrinks the fitted distance by 10% so the body fills the frame.
const DefaultFitOffset = -0.1

// State is a snapshot of a perspective camera.
type State struct {
	Position  math.Vec3
	Target    math.Vec3
	Direction Direction

	FOV    float64 // vertical field of view, degrees
	Aspect float64 // width / height
	Near   float64
	Far    float64
}

// NewState returns a front-facing camera with the given projection settings.
func NewState(fov, aspect, near, far float64) *State {
	return &State{
		Position:  math.Vec3{Z: 5},
		Direction: Front,
		FOV:       fov,
		Aspect:    aspect,
		Near:      near,
		Far:       far,
	}
}

// View returns the view matrix for this camera.
func (s *State) View() math.Mat4 {
	up := math.Vec3{Y: 1}
	return math.LookAt(s.Position, s.Target, up)
}

// Projection returns the perspective projection matrix.
func (s *State) Projection() math.Mat4 {
	return math.Perspective(math.DegToRad(s.FOV), s.Aspect, s.Near, s.Far)
}

// FitDistance returns how far from a box center the camera must sit for a
// box whose largest dimension is maxDim to fill a frustum of vertical field
// of view fov (radians). offset scales the result by (1 + offset).
func FitDistance(maxDim, fov, offset float64) float64 {
	return gomath.Abs(maxDim/4*gomath.Tan(fov)) * (1 + offset)
}

// FitToBounds places the camera looking at the center of box from the given
// direction, at FitDistance from it. This is the only operation that writes
// to a State.
func (s *State) FitToBounds(box math.Box3, from Direction, offset float64) float64 {
	center := box.Center()
	distance := FitDistance(box.MaxDim(), math.DegToRad(s.FOV), offset)

	s.Position = center.Add(from.axis().Scale(distance))
	s.Target = center
	s.Direction = from

	return distance
}
