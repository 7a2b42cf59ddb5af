package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/bodymark/internal/annotate"
	"github.com/Faultbox/bodymark/internal/config"
	"github.com/Faultbox/bodymark/internal/engine/camera"
	"github.com/Faultbox/bodymark/internal/logger"
	"github.com/Faultbox/bodymark/internal/mesh"
	"github.com/Faultbox/bodymark/internal/meshfile"
)

// Version is the application version.
const Version = "0.1.0"

var errNoMesh = errors.New("no mesh given: use --mesh or mesh.path in the config file")

// app is the state shared by subcommands after flags and config are resolved.
type app struct {
	flags *config.Flags
	cfg   *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "bodymark",
		Short:         "Measurement and posture overlays for posed body meshes",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.flags)
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			a.cfg = cfg

			if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
				return fmt.Errorf("logger error: %w", err)
			}
			logger.Sugar.Debugf("Config: %+v", cfg)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
	a.flags = config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		a.infoCmd(),
		a.ringsCmd(),
		a.postureCmd(),
		a.indicatorsCmd(),
		a.fitCmd(),
		a.debugCmd(),
		a.watchCmd(),
	)
	return root
}

// loadMesh reads and classifies the configured mesh.
func (a *app) loadMesh() (*mesh.Mesh, error) {
	path := a.cfg.Mesh.Path
	if path == "" {
		return nil, errNoMesh
	}
	positions, err := meshfile.Load(path)
	if err != nil {
		return nil, err
	}
	m := mesh.New(positions, mesh.Options{Schema: a.cfg.Mesh.Schema, Logger: logger.Named("mesh")})
	logger.Info("mesh loaded",
		zap.String("path", path),
		zap.Int("vertices", m.VertexCount()),
		zap.Stringer("variant", m.Variant()))
	return m, nil
}

func (a *app) sessionOptions() annotate.Options {
	return annotate.Options{
		Ring:      a.cfg.Rings,
		Posture:   a.cfg.Posture,
		Indicator: a.cfg.Indicators,
		FitOffset: a.cfg.Camera.FitOffset,
	}
}

func (a *app) session() (*annotate.Session, error) {
	m, err := a.loadMesh()
	if err != nil {
		return nil, err
	}
	return annotate.NewSession(m, a.sessionOptions(), logger.Named("annotate")), nil
}

// direction returns the configured camera direction. Commands tied to one
// view pass it as def; it is used unless --direction was given.
func (a *app) direction(cmd *cobra.Command, def camera.Direction) camera.Direction {
	if def != "" && !cmd.Flags().Changed("direction") {
		return def
	}
	// Already validated by config.Load.
	d, _ := camera.ParseDirection(a.cfg.Camera.Direction)
	return d
}

// fittedCamera frames the mesh from dir, as the viewer does before any
// projection.
func (a *app) fittedCamera(s *annotate.Session, dir camera.Direction) (camera.State, error) {
	cam := a.cfg.CameraState()
	if _, err := s.Fit(cam, dir); err != nil {
		return camera.State{}, err
	}
	return *cam, nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
