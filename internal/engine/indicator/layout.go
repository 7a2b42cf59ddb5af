// Package indicator places off-mesh measurement labels beside the body and
// the leader lines tying them to their rings.
package indicator

import (
	"errors"
	"fmt"

	"github.com/Faultbox/bodymark/internal/landmark"
)

// Side is the screen side an indicator is shown on.
type Side string

// Screen sides.
const (
	Left  Side = "left"
	Right Side = "right"
)

// ErrUnknownSide is returned by ParseSide.
var ErrUnknownSide = errors.New("unknown indicator side")

// ParseSide validates a side tag.
func ParseSide(s string) (Side, error) {
	switch sd := Side(s); sd {
	case Left, Right:
		return sd, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSide, s)
}

// Indicator requests a label for a measurement ring. The label payload
// belongs to the caller.
type Indicator struct {
	Name landmark.Ring `yaml:"name" toml:"name"`
	Side Side          `yaml:"side" toml:"side"`

	// HideLine suppresses the leader line.
	HideLine bool `yaml:"hide_line,omitempty" toml:"hide_line"`
}

// Layout spreads the indicators of each side over height: a lone indicator
// sits at height/2, otherwise they run evenly from height down to 0 in the
// order given. Indicators without a name or a known side are skipped.
func Layout(height float64, indicators []Indicator) map[landmark.Ring]float64 {
	coords := make(map[landmark.Ring]float64, len(indicators))
	for _, side := range []Side{Right, Left} {
		var group []Indicator
		for _, ind := range indicators {
			if ind.Side == side {
				group = append(group, ind)
			}
		}

		n := len(group)
		for i, ind := range group {
			if ind.Name == "" {
				continue
			}
			if n == 1 {
				coords[ind.Name] = height / 2
				continue
			}
			step := height / float64(n-1)
			coords[ind.Name] = height - step*float64(i)
		}
	}
	return coords
}
