// Package config loads the YAML configuration for the ray caster. Every
// field has a default so a partial file only overrides what it names.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvPath names the variable consulted when Load gets an empty path.
const EnvPath = "RAYCASTER_CONFIG"

// EnvMetricsAddr overrides an empty metrics.addr.
const EnvMetricsAddr = "RAYCASTER_METRICS_ADDR"

// Config is the root of the configuration file.
type Config struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Player  PlayerConfig  `yaml:"player"`
	Map     MapConfig     `yaml:"map"`
	Render  RenderConfig  `yaml:"render"`
	Metrics MetricsConfig `yaml:"metrics"`
	Log     LogConfig     `yaml:"log"`
}

type ScreenConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Columns int `yaml:"columns"` // rays per frame; 0 means one per pixel column
}

type PlayerConfig struct {
	FOVDegrees       float64 `yaml:"fov_degrees"`
	ViewRange        int     `yaml:"view_range"`
	Speed            float64 `yaml:"speed"`
	RotateDegPerSec  float64 `yaml:"rotate_degrees_per_second"`
	DirectionDegrees float64 `yaml:"direction_degrees"`
}

type MapConfig struct {
	File      string  `yaml:"file"`
	Encoding  string  `yaml:"encoding"`  // digit | glyph
	Generator string  `yaml:"generator"` // uniform | noise
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	WallRatio float64 `yaml:"wall_ratio"`
	StartX    int     `yaml:"start_x"`
	StartY    int     `yaml:"start_y"`
	Seed      int64   `yaml:"seed"` // 0 picks a time-based seed
}

type RenderConfig struct {
	Backend    string  `yaml:"backend"` // window | term
	WallHeight float64 `yaml:"wall_height"`
	TPS        int     `yaml:"tps"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Screen: ScreenConfig{Width: 600, Height: 600},
		Player: PlayerConfig{
			FOVDegrees:       90,
			ViewRange:        20,
			Speed:            3,
			RotateDegPerSec:  180,
			DirectionDegrees: 180,
		},
		Map: MapConfig{
			Encoding:  "digit",
			Generator: "uniform",
			Width:     20,
			Height:    20,
			WallRatio: 0.3,
			StartX:    1,
			StartY:    1,
		},
		Render: RenderConfig{Backend: "window", WallHeight: 300, TPS: 60},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads the YAML file at path on top of Default. An empty path falls
// back to $RAYCASTER_CONFIG; if that is unset too the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every out-of-range field.
func (c *Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen: size %dx%d must be positive", c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.Columns < 0 {
		errs = append(errs, fmt.Errorf("screen: columns %d must not be negative", c.Screen.Columns))
	}
	if c.Player.FOVDegrees <= 0 || c.Player.FOVDegrees >= 360 {
		errs = append(errs, fmt.Errorf("player: fov_degrees %.1f must be in (0, 360)", c.Player.FOVDegrees))
	}
	if c.Player.ViewRange < 0 {
		errs = append(errs, fmt.Errorf("player: view_range %d must not be negative", c.Player.ViewRange))
	}
	if c.Player.Speed < 0 || c.Player.RotateDegPerSec < 0 {
		errs = append(errs, errors.New("player: speeds must not be negative"))
	}
	if c.Map.File == "" {
		if c.Map.Width <= 0 || c.Map.Height <= 0 {
			errs = append(errs, fmt.Errorf("map: size %dx%d must be positive", c.Map.Width, c.Map.Height))
		}
		if c.Map.WallRatio < 0 || c.Map.WallRatio > 1 {
			errs = append(errs, fmt.Errorf("map: wall_ratio %.2f must be in [0, 1]", c.Map.WallRatio))
		}
		if c.Map.StartX < 0 || c.Map.StartX >= c.Map.Width || c.Map.StartY < 0 || c.Map.StartY >= c.Map.Height {
			errs = append(errs, fmt.Errorf("map: start %d,%d outside %dx%d", c.Map.StartX, c.Map.StartY, c.Map.Width, c.Map.Height))
		}
		switch c.Map.Generator {
		case "uniform", "noise":
		default:
			errs = append(errs, fmt.Errorf("map: unknown generator %q", c.Map.Generator))
		}
	}
	switch c.Map.Encoding {
	case "", "digit", "glyph":
	default:
		errs = append(errs, fmt.Errorf("map: unknown encoding %q", c.Map.Encoding))
	}
	switch c.Render.Backend {
	case "window", "term":
	default:
		errs = append(errs, fmt.Errorf("render: unknown backend %q", c.Render.Backend))
	}
	if c.Render.WallHeight <= 0 {
		errs = append(errs, fmt.Errorf("render: wall_height %.1f must be positive", c.Render.WallHeight))
	}
	if c.Render.TPS <= 0 {
		errs = append(errs, fmt.Errorf("render: tps %d must be positive", c.Render.TPS))
	}
	return errors.Join(errs...)
}

// ColumnCount returns the number of rays per frame.
func (s ScreenConfig) ColumnCount() int {
	if s.Columns > 0 {
		return s.Columns
	}
	return s.Width
}

// FOVRadians converts the configured field of view.
func (p PlayerConfig) FOVRadians() float64 { return p.FOVDegrees * math.Pi / 180 }

// RotateSpeedRadians converts the configured turning speed.
func (p PlayerConfig) RotateSpeedRadians() float64 { return p.RotateDegPerSec * math.Pi / 180 }

// DirectionRadians converts the initial heading.
func (p PlayerConfig) DirectionRadians() float64 { return p.DirectionDegrees * math.Pi / 180 }

// GetAddr returns the metrics listen address: config first, then
// $RAYCASTER_METRICS_ADDR. Empty means metrics are not served.
func (m *MetricsConfig) GetAddr() string {
	if m.Addr != "" {
		return m.Addr
	}
	return os.Getenv(EnvMetricsAddr)
}
