package main

import (
	"io"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/bodymark/internal/annotate"
	"github.com/Faultbox/bodymark/internal/logger"
	"github.com/Faultbox/bodymark/internal/watcher"
)

// summary is the per-reload output of watch.
type summary struct {
	Info       infoReport     `yaml:"info"`
	Fit        *annotate.Fit  `yaml:"fit,omitempty"`
	RingPoints map[string]int `yaml:"ring_points,omitempty"`
	Error      string         `yaml:"error,omitempty"`
}

func (a *app) watchCmd() *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-annotate the mesh every time its file changes",
		Long: `Watch the mesh file and print a summary whenever it is rewritten.
Each reload replaces the subject wholesale with a new annotation session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Mesh.Path == "" {
				return errNoMesh
			}
			out := cmd.OutOrStdout()
			var mu sync.Mutex
			reload := func() {
				mu.Lock()
				defer mu.Unlock()
				if err := writeYAML(out, a.summarize()); err != nil {
					logger.Warn("writing summary", zap.Error(err))
				}
				if _, err := io.WriteString(out, "---\n"); err != nil {
					logger.Warn("writing summary separator", zap.Error(err))
				}
			}

			fw, err := watcher.NewFileWatcher(debounce, logger.Named("watcher"))
			if err != nil {
				return err
			}
			defer fw.Close()

			if err := fw.Watch([]string{a.cfg.Mesh.Path}, func(string) { reload() }); err != nil {
				return err
			}

			reload()
			logger.Info("watching mesh", zap.String("path", a.cfg.Mesh.Path))
			fw.Run(cmd.Context())
			return nil
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", watcher.DefaultDebounce, "Quiet period before reloading")
	return cmd
}

// summarize loads the mesh afresh and reports what can be annotated.
// Load failures are reported in the summary so watching continues.
func (a *app) summarize() summary {
	s, err := a.session()
	if err != nil {
		logger.Warn("mesh reload failed", zap.Error(err))
		return summary{Info: infoReport{Path: a.cfg.Mesh.Path}, Error: err.Error()}
	}

	sum := summary{Info: newInfoReport(a.cfg.Mesh.Path, s.Mesh())}

	if fit, err := s.Fit(a.cfg.CameraState(), a.direction(nil, "")); err == nil {
		sum.Fit = &fit
	}

	rings, err := s.Rings()
	if err != nil {
		sum.Error = err.Error()
		return sum
	}
	sum.RingPoints = make(map[string]int, len(rings))
	for _, g := range rings {
		sum.RingPoints[g.Name] = len(g.Smoothed) + len(g.Raw)
	}
	return sum
}
