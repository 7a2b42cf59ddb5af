// Package landmark maps named anatomical landmarks and measurement rings to
// flat-buffer indices for each supported mesh variant.
package landmark

import "fmt"

// Landmark names a single anatomical point.
type Landmark int

// Landmarks used by posture lines.
const (
	MidPointOfEyes      Landmark = iota // tragion line, ISO 8559-1 3.1.3
	MidPointOfShoulders                 // ISO 8559-1 3.1.1
	MidPointOfPelvis                    // ISO 8559-1 3.1.16
	LeftChest
	LeftAnkle
	LeftKnee
	LeftHip
	LeftShoulder

	numLandmarks
)

var landmarkNames = [numLandmarks]string{
	MidPointOfEyes:      "mid-point-of-eyes",
	MidPointOfShoulders: "mid-point-of-shoulders",
	MidPointOfPelvis:    "mid-point-of-pelvis",
	LeftChest:           "left-chest",
	LeftAnkle:           "left-ankle",
	LeftKnee:            "left-knee",
	LeftHip:             "left-hip",
	LeftShoulder:        "left-shoulder",
}

// String returns the kebab-case landmark name.
func (l Landmark) String() string {
	if l < 0 || l >= numLandmarks {
		return fmt.Sprintf("Landmark(%d)", int(l))
	}
	return landmarkNames[l]
}

// All returns every landmark in declaration order.
func All() []Landmark {
	out := make([]Landmark, numLandmarks)
	for i := range out {
		out[i] = Landmark(i)
	}
	return out
}

// Ring names a closed measurement contour.
type Ring string

// Measurement rings.
const (
	CalfGirthR     Ring = "calfGirthR"
	HipGirth       Ring = "hipGirth"
	ThighGirthR    Ring = "thighGirthR"
	UpperArmGirthR Ring = "upperArmGirthR"
	WaistGirth     Ring = "waistGirth"
	BustGirth      Ring = "bustGirth"
)

// ParseRing validates a ring name.
func ParseRing(s string) (Ring, error) {
	switch r := Ring(s); r {
	case CalfGirthR, HipGirth, ThighGirthR, UpperArmGirthR, WaistGirth, BustGirth:
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRing, s)
}
