// Package config handles bodymark configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/bodymark/internal/engine/camera"
	"github.com/Faultbox/bodymark/internal/engine/indicator"
	"github.com/Faultbox/bodymark/internal/engine/posture"
	"github.com/Faultbox/bodymark/internal/engine/ring"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid config")

// Config holds all settings.
type Config struct {
	Logging    LoggingConfig     `yaml:"logging" toml:"logging"`
	Camera     CameraConfig      `yaml:"camera" toml:"camera"`
	Viewport   ViewportConfig    `yaml:"viewport" toml:"viewport"`
	Rings      ring.Options      `yaml:"rings" toml:"rings"`
	Posture    posture.Options   `yaml:"posture" toml:"posture"`
	Indicators indicator.Options `yaml:"indicators" toml:"indicators"`
	Mesh       MeshConfig        `yaml:"mesh" toml:"mesh"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// CameraConfig holds the perspective camera and view fit settings.
type CameraConfig struct {
	FOV       float64 `yaml:"fov" toml:"fov"` // degrees
	Near      float64 `yaml:"near" toml:"near"`
	Far       float64 `yaml:"far" toml:"far"`
	Direction string  `yaml:"direction" toml:"direction"`
	FitOffset float64 `yaml:"fit_offset" toml:"fit_offset"`
}

// ViewportConfig holds the canvas size in pixels.
type ViewportConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// MeshConfig holds the subject mesh source.
type MeshConfig struct {
	Path   string `yaml:"path" toml:"path"`     // raw float32 vertex dump
	Schema string `yaml:"schema" toml:"schema"` // empty to sniff from length
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Camera: CameraConfig{
			FOV:       75,
			Near:      0.1,
			Far:       1000,
			Direction: string(camera.Front),
			FitOffset: camera.DefaultFitOffset,
		},
		Viewport: ViewportConfig{
			Width:  500,
			Height: 500,
		},
		Rings:      ring.DefaultOptions(),
		Posture:    posture.DefaultOptions(),
		Indicators: indicator.DefaultOptions(),
	}
}

// Validate checks values that would make the engine misbehave.
func (c *Config) Validate() error {
	if _, err := camera.ParseDirection(c.Camera.Direction); err != nil {
		return fmt.Errorf("%w: camera.direction: %w", ErrInvalid, err)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("%w: camera.fov %v out of (0, 180)", ErrInvalid, c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("%w: camera near %v / far %v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.FitOffset <= -1 {
		return fmt.Errorf("%w: camera.fit_offset %v leaves no distance to the subject", ErrInvalid, c.Camera.FitOffset)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalid, c.Viewport.Width, c.Viewport.Height)
	}
	if c.Rings.TubularSegments < 3 || c.Rings.RadialSegments < 3 || c.Rings.Radius <= 0 {
		return fmt.Errorf("%w: rings need at least 3 segments and a positive radius", ErrInvalid)
	}
	if c.Posture.FrontDashDivisor <= 0 || c.Posture.SideDashDivisor <= 0 {
		return fmt.Errorf("%w: posture dash divisors must be positive", ErrInvalid)
	}
	return nil
}

// CameraState builds the initial camera for the configured viewport.
func (c *Config) CameraState() *camera.State {
	aspect := float64(c.Viewport.Width) / float64(c.Viewport.Height)
	s := camera.NewState(c.Camera.FOV, aspect, c.Camera.Near, c.Camera.Far)
	if d, err := camera.ParseDirection(c.Camera.Direction); err == nil {
		s.Direction = d
	}
	return s
}

// CameraViewport returns the viewport in camera units.
func (c *Config) CameraViewport() camera.Viewport {
	return camera.Viewport{Width: float64(c.Viewport.Width), Height: float64(c.Viewport.Height)}
}
