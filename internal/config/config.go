// Package config holds render settings loaded from YAML and CLI flags.
package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"school-renderer/internal/layout"
	"school-renderer/internal/scene"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	OutputDir string `yaml:"output_dir"`
	Backdrop  string `yaml:"backdrop"` // optional TGA/JPEG/PNG drawn behind the model

	// Render settings
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Supersample int    `yaml:"supersample"`
	Frames      int    `yaml:"frames"` // orbit positions, evenly spaced in yaw
	Workers     int    `yaml:"workers"`
	Shading     string `yaml:"shading"`    // basic | lambert
	Background  string `yaml:"background"` // CSS name or #rrggbb; empty is transparent
	DoubleSided bool   `yaml:"double_sided"`

	// Scene
	Camera scene.CameraPose   `yaml:"camera"`
	Lights scene.Lights       `yaml:"lights"`
	Stairs layout.StairParams `yaml:"stairs"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns a Config with the reference camera, lights and stairs.
func Default() Config {
	return Config{
		OutputDir:   "renders",
		Width:       640,
		Height:      480,
		Supersample: 2,
		Frames:      12,
		Shading:     "basic",
		Camera:      scene.DefaultCamera(),
		Lights:      scene.DefaultLights(),
		Stairs:      layout.DefaultStairParams(),
		Logging:     LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML config file over the defaults.
// Fields not set in the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	// Relative paths are relative to the config file.
	dir := filepath.Dir(path)
	if cfg.Backdrop != "" && !filepath.IsAbs(cfg.Backdrop) {
		cfg.Backdrop = filepath.Join(dir, cfg.Backdrop)
	}
	if cfg.OutputDir != "" && !filepath.IsAbs(cfg.OutputDir) {
		cfg.OutputDir = filepath.Join(dir, cfg.OutputDir)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Width     int
	Height    int
	Frames    int
	Workers   int
	Shading   string
	LogLevel  string
	LogFile   string
}

// Resolve applies CLI overrides and fills any remaining zero fields.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Shading != "" {
		c.Shading = flags.Shading
	}
	if flags.LogLevel != "" {
		c.Logging.Level = flags.LogLevel
	}
	if flags.LogFile != "" {
		c.Logging.File = flags.LogFile
	}

	def := Default()
	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.Supersample <= 0 {
		c.Supersample = def.Supersample
	}
	if c.Frames <= 0 {
		c.Frames = def.Frames
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Camera.FOV <= 0 {
		c.Camera.FOV = def.Camera.FOV
	}
}

// BackgroundColor parses Background. Empty means fully transparent.
func (c *Config) BackgroundColor() (color.NRGBA, error) {
	return ParseColor(c.Background)
}

// ParseColor accepts a CSS color keyword or #rrggbb.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "transparent" {
		return color.NRGBA{}, nil
	}
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return color.NRGBA{}, fmt.Errorf("config: bad color %q", s)
		}
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("config: bad color %q: %w", s, err)
		}
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	}
	c, ok := colornames.Map[s]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("config: unknown color %q", s)
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}, nil
}
