package config

import (
	"github.com/spf13/pflag"
)

// Flags holds command-line overrides registered on a flag set.
type Flags struct {
	fs *pflag.FlagSet

	config     string
	debug      bool
	logFile    string
	mesh       string
	schema     string
	direction  string
	fov        float64
	width      int
	height     int
	debugRings bool
}

// RegisterFlags adds the config overrides to fs.
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVarP(&f.config, "config", "c", "", "Path to config file (.yaml or .toml)")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.logFile, "log-file", "", "Also write JSON logs to this file")
	fs.StringVarP(&f.mesh, "mesh", "m", "", "Raw float32 vertex dump of the subject")
	fs.StringVar(&f.schema, "schema", "", "Mesh index schema (photo/v1, stats/v1); sniffed when empty")
	fs.StringVarP(&f.direction, "direction", "d", "", "Camera direction: front, back, left, right")
	fs.Float64Var(&f.fov, "fov", 0, "Camera vertical field of view in degrees")
	fs.IntVar(&f.width, "width", 0, "Viewport width in pixels")
	fs.IntVar(&f.height, "height", 0, "Viewport height in pixels")
	fs.BoolVar(&f.debugRings, "debug-rings", false, "Emit raw ring points instead of tubes")
	return f
}

// ConfigPath returns the explicit config path if provided via --config.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return f.config
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.debug {
		cfg.Logging.Level = "debug"
	}
	if f.logFile != "" {
		cfg.Logging.LogFile = f.logFile
	}
	if f.mesh != "" {
		cfg.Mesh.Path = f.mesh
	}
	if f.changed("schema") {
		cfg.Mesh.Schema = f.schema
	}
	if f.direction != "" {
		cfg.Camera.Direction = f.direction
	}
	if f.fov > 0 {
		cfg.Camera.FOV = f.fov
	}
	if f.width > 0 {
		cfg.Viewport.Width = f.width
	}
	if f.height > 0 {
		cfg.Viewport.Height = f.height
	}
	if f.debugRings {
		cfg.Rings.Debug = true
	}
}

func (f *Flags) changed(name string) bool {
	return f.fs != nil && f.fs.Changed(name)
}
