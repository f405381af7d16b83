// Package config handles loading and saving splinefield settings.
package config

import (
	"runtime"

	"github.com/Faultbox/splinefield/pkg/linalg"
	"github.com/Faultbox/splinefield/pkg/surface"
)

// Config holds all settings.
type Config struct {
	Surface SurfaceConfig `yaml:"surface"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// SurfaceConfig holds surface generation parameters.
type SurfaceConfig struct {
	NumSideCps int        `yaml:"num_side_cps"`
	PatchLen   float64    `yaml:"patch_len"`
	MaxHeight  float64    `yaml:"max_height"`
	Center     [3]float64 `yaml:"center,flow"`
	Seed       int64      `yaml:"seed"`
	Segments   int        `yaml:"segments"`
	Workers    int        `yaml:"workers"` // 0 = one per CPU
}

// ViewerConfig holds display settings for surfaceview.
type ViewerConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOVDegrees float32 `yaml:"fov_degrees"`
	Wireframe  bool    `yaml:"wireframe"`

	ScreenshotDir    string `yaml:"screenshot_dir"`
	ScreenshotFormat string `yaml:"screenshot_format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Surface: SurfaceConfig{
			NumSideCps: 15,
			PatchLen:   2.5,
			MaxHeight:  3,
			Center:     [3]float64{1, 0, -1},
			Seed:       0,
			Segments:   8,
			Workers:    0,
		},
		Viewer: ViewerConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FOVDegrees: 75,
			Wireframe:  false,

			ScreenshotDir:    "screenshots",
			ScreenshotFormat: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Params converts the surface section into generator parameters.
func (s SurfaceConfig) Params() surface.Params {
	return surface.Params{
		NumSideCps:     s.NumSideCps,
		SinglePatchLen: s.PatchLen,
		MaxHeight:      s.MaxHeight,
		Center:         linalg.Vec3{X: s.Center[0], Y: s.Center[1], Z: s.Center[2]},
		Seed:           s.Seed,
		Segments:       s.Segments,
	}
}

// WorkerCount resolves the configured worker count.
func (s SurfaceConfig) WorkerCount() int {
	if s.Workers <= 0 {
		return runtime.NumCPU()
	}
	return s.Workers
}
