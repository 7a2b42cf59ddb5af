package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Faultbox/bodymark/internal/engine/camera"
	"github.com/Faultbox/bodymark/internal/engine/indicator"
	"github.com/Faultbox/bodymark/internal/engine/posture"
	"github.com/Faultbox/bodymark/internal/engine/ring"
	"github.com/Faultbox/bodymark/internal/landmark"
	"github.com/Faultbox/bodymark/internal/mesh"
	"github.com/Faultbox/bodymark/pkg/math"
)

type boundsReport struct {
	Min  math.Vec3 `yaml:"min"`
	Max  math.Vec3 `yaml:"max"`
	Size math.Vec3 `yaml:"size"`
}

type infoReport struct {
	Path     string          `yaml:"path"`
	Floats   int             `yaml:"floats"`
	Vertices int             `yaml:"vertices"`
	Variant  mesh.Variant    `yaml:"variant"`
	Schema   string          `yaml:"schema,omitempty"`
	Sniffed  bool            `yaml:"sniffed"`
	Bounds   boundsReport    `yaml:"bounds"`
	Rings    []landmark.Ring `yaml:"rings,omitempty"`

	Landmarks map[string]math.Vec3 `yaml:"landmarks,omitempty"`
}

func newInfoReport(path string, m *mesh.Mesh) infoReport {
	b := m.Bounds()
	return infoReport{
		Path:     path,
		Floats:   m.Len(),
		Vertices: m.VertexCount(),
		Variant:  m.Variant(),
		Schema:   m.Schema(),
		Sniffed:  m.Sniffed(),
		Bounds:   boundsReport{Min: b.Min, Max: b.Max, Size: b.Size()},
		Rings:    landmark.Rings(m.Variant()),

		Landmarks: landmarks(m),
	}
}

// landmarks resolves every landmark of an annotatable mesh.
func landmarks(m *mesh.Mesh) map[string]math.Vec3 {
	if !m.Variant().Annotatable() {
		return nil
	}
	out := make(map[string]math.Vec3)
	for _, l := range landmark.All() {
		out[l.String()] = landmark.Locate(m, l)
	}
	return out
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show mesh size, variant and available rings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadMesh()
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), newInfoReport(a.cfg.Mesh.Path, m))
		},
	}
}

type ringsReport struct {
	Rings []ring.Geometry `yaml:"rings"`
}

func (a *app) ringsCmd() *cobra.Command {
	var only []string

	cmd := &cobra.Command{
		Use:   "rings",
		Short: "Build the smoothed measurement ring tubes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}
			rings, err := s.Rings()
			if err != nil {
				return err
			}
			if len(only) > 0 {
				rings, err = filterRings(rings, only)
				if err != nil {
					return err
				}
			}
			return writeYAML(cmd.OutOrStdout(), ringsReport{Rings: rings})
		},
	}
	cmd.Flags().StringSliceVar(&only, "ring", nil, "Only emit these rings (e.g. waistGirth,hipGirth)")
	return cmd
}

func filterRings(rings []ring.Geometry, names []string) ([]ring.Geometry, error) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		r, err := landmark.ParseRing(n)
		if err != nil {
			return nil, err
		}
		want[string(r)] = true
	}
	var out []ring.Geometry
	for _, g := range rings {
		if want[g.Name] {
			out = append(out, g)
		}
	}
	return out, nil
}

type postureReport struct {
	Direction  camera.Direction `yaml:"direction"`
	Applicable bool             `yaml:"applicable"`
	Lines      []posture.Line   `yaml:"lines,omitempty"`
}

func (a *app) postureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posture",
		Short: "Build posture deviation lines",
	}

	var ear, shoulder, topHip float64
	front := &cobra.Command{
		Use:   "front",
		Short: "Horizontal ear, shoulder and hip lines seen from the front",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}
			dir := a.direction(cmd, camera.Front)
			cam, err := a.fittedCamera(s, dir)
			if err != nil {
				return err
			}

			var angles posture.FrontAngles
			if cmd.Flags().Changed("ear") {
				angles.Ear = &ear
			}
			if cmd.Flags().Changed("shoulder") {
				angles.Shoulder = &shoulder
			}
			if cmd.Flags().Changed("top-hip") {
				angles.TopHip = &topHip
			}

			lines, ok, err := s.FrontPosture(cam, angles)
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), postureReport{Direction: dir, Applicable: ok, Lines: lines})
		},
	}
	front.Flags().Float64Var(&ear, "ear", 0, "Ear line tilt in degrees")
	front.Flags().Float64Var(&shoulder, "shoulder", 0, "Shoulder line tilt in degrees")
	front.Flags().Float64Var(&topHip, "top-hip", 0, "Top hip line tilt in degrees")

	var chain []float64
	side := &cobra.Command{
		Use:   "side",
		Short: "Ankle to head body line seen from the right",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(chain) != len(posture.SideAngles{}) {
				return fmt.Errorf("--angles needs %d values (ankle, knee, hip, shoulder), got %d",
					len(posture.SideAngles{}), len(chain))
			}
			s, err := a.session()
			if err != nil {
				return err
			}
			dir := a.direction(cmd, camera.Right)
			cam, err := a.fittedCamera(s, dir)
			if err != nil {
				return err
			}

			var angles posture.SideAngles
			copy(angles[:], chain)
			line, ok, err := s.SidePosture(cam, angles)
			if err != nil {
				return err
			}
			rep := postureReport{Direction: dir, Applicable: ok}
			if ok {
				rep.Lines = []posture.Line{line}
			}
			return writeYAML(cmd.OutOrStdout(), rep)
		},
	}
	side.Flags().Float64SliceVar(&chain, "angles", []float64{0, 0, 0, 0}, "Ankle, knee, hip and shoulder angles in degrees")

	cmd.AddCommand(front, side)
	return cmd
}

type indicatorsReport struct {
	Direction  camera.Direction   `yaml:"direction"`
	Applicable bool               `yaml:"applicable"`
	Heights    map[string]float64 `yaml:"heights"`
	Anchors    []indicator.Anchor `yaml:"anchors,omitempty"`
}

func (a *app) indicatorsCmd() *cobra.Command {
	var specs []string

	cmd := &cobra.Command{
		Use:   "indicators",
		Short: "Place ring indicators and their leader lines",
		Long: `Place ring indicators beside the body.

Each --indicator is ring:side with an optional :noline suffix, for example
waistGirth:right or hipGirth:left:noline. Without any, every ring of the
mesh is shown, the first half on the right and the rest on the left.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}

			inds, err := parseIndicators(specs)
			if err != nil {
				return err
			}
			if len(inds) == 0 {
				inds = defaultIndicators(landmark.Rings(s.Variant()))
			}

			dir := a.direction(cmd, "")
			cam, err := a.fittedCamera(s, dir)
			if err != nil {
				return err
			}
			anchors, ok, err := s.Indicators(cam, a.cfg.CameraViewport(), inds)
			if err != nil {
				return err
			}

			heights := make(map[string]float64, len(anchors))
			for _, an := range anchors {
				heights[string(an.Name)] = an.Position.Y
			}
			return writeYAML(cmd.OutOrStdout(), indicatorsReport{
				Direction:  dir,
				Applicable: ok,
				Heights:    heights,
				Anchors:    anchors,
			})
		},
	}
	cmd.Flags().StringArrayVarP(&specs, "indicator", "i", nil, "Indicator as ring:side[:noline]; repeatable")
	return cmd
}

func parseIndicators(specs []string) ([]indicator.Indicator, error) {
	out := make([]indicator.Indicator, 0, len(specs))
	for _, spec := range specs {
		parts := strings.Split(spec, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("indicator %q: want ring:side[:noline]", spec)
		}
		r, err := landmark.ParseRing(parts[0])
		if err != nil {
			return nil, fmt.Errorf("indicator %q: %w", spec, err)
		}
		side, err := indicator.ParseSide(parts[1])
		if err != nil {
			return nil, fmt.Errorf("indicator %q: %w", spec, err)
		}
		ind := indicator.Indicator{Name: r, Side: side}
		if len(parts) == 3 {
			if parts[2] != "noline" {
				return nil, fmt.Errorf("indicator %q: unknown option %q", spec, parts[2])
			}
			ind.HideLine = true
		}
		out = append(out, ind)
	}
	return out, nil
}

func defaultIndicators(rings []landmark.Ring) []indicator.Indicator {
	out := make([]indicator.Indicator, len(rings))
	half := (len(rings) + 1) / 2
	for i, r := range rings {
		side := indicator.Right
		if i >= half {
			side = indicator.Left
		}
		out[i] = indicator.Indicator{Name: r, Side: side}
	}
	return out
}

func (a *app) fitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fit",
		Short: "Compute the camera placement that frames the mesh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}
			fit, err := s.Fit(a.cfg.CameraState(), a.direction(cmd, ""))
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), fit)
		},
	}
}

func (a *app) debugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debug",
		Short: "Emit the bounding box wireframe and raw ring markers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}
			overlay, err := s.Debug()
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), overlay)
		},
	}
}
