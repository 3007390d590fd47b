// Package config provides configuration loading and access for the page.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all page and simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Signs     SignsConfig     `yaml:"signs"`
	Carousel  CarouselConfig  `yaml:"carousel"`
	Page      PageConfig      `yaml:"page"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// SignsConfig holds the bouncing sign field constants.
// These are fixed once the field is built.
type SignsConfig struct {
	Count      int     `yaml:"count"`       // Signs spawned at startup
	Size       float64 `yaml:"size"`        // Glyph size in px, also the collision diameter
	Speed      float64 `yaml:"speed"`       // Velocity magnitude in px per frame
	Max        int     `yaml:"max"`         // Population cap
	CooldownMS float64 `yaml:"cooldown_ms"` // Min time between duplicating collisions
	Glyph      string  `yaml:"glyph"`
}

// CarouselConfig holds work carousel settings.
type CarouselConfig struct {
	Breakpoint int    `yaml:"breakpoint"` // Carousel stays inert at or below this width
	Gallery    string `yaml:"gallery"`    // Path to gallery manifest CSV (empty = no entries)
}

// PageConfig holds static page content and layout.
type PageConfig struct {
	Title     string  `yaml:"title"`
	Intro     string  `yaml:"intro"`
	ThumbSize float64 `yaml:"thumb_size"`
	Margin    float64 `yaml:"margin"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Seconds per stats window
	PerfWindow  int     `yaml:"perf_window"`  // Frame steps averaged by the frame timer
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT          float64 // Seconds per frame at target FPS
	FrameMS     float64 // Milliseconds per frame at target FPS
	GalleryPath string  // Gallery manifest resolved against the config file
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived(filepath.Dir(path))

	return cfg, nil
}

// validate rejects values the sign field cannot run with.
func (c *Config) validate() error {
	if c.Screen.TargetFPS <= 0 {
		return fmt.Errorf("screen.target_fps must be positive, got %d", c.Screen.TargetFPS)
	}
	if c.Signs.Size <= 0 {
		return fmt.Errorf("signs.size must be positive, got %g", c.Signs.Size)
	}
	if c.Signs.Count < 0 || c.Signs.Max < c.Signs.Count {
		return fmt.Errorf("signs.max (%d) must be >= signs.count (%d) >= 0", c.Signs.Max, c.Signs.Count)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
// baseDir is the directory of the user config file, used to resolve
// a relative gallery path.
func (c *Config) computeDerived(baseDir string) {
	c.Derived.DT = 1.0 / float64(c.Screen.TargetFPS)
	c.Derived.FrameMS = 1000.0 / float64(c.Screen.TargetFPS)

	c.Derived.GalleryPath = c.Carousel.Gallery
	if c.Carousel.Gallery != "" && !filepath.IsAbs(c.Carousel.Gallery) && baseDir != "." {
		c.Derived.GalleryPath = filepath.Join(baseDir, c.Carousel.Gallery)
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
