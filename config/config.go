// Package config loads the game configuration: an embedded default file,
// optionally overridden field by field by a YAML file on disk.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/skyship/sim"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Player      PlayerConfig      `yaml:"player"`
	World       WorldConfig       `yaml:"world"`
	Animation   AnimationConfig   `yaml:"animation"`
	Diagnostics DiagnosticsConfig `yaml:"diagnostics"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type PlayerConfig struct {
	Start        [2]float64 `yaml:"start"`
	Acceleration float64    `yaml:"acceleration"`
	Friction     float64    `yaml:"friction"`
	MaxSpeed     float64    `yaml:"max_speed"`
}

type WorldConfig struct {
	Boundary     float64 `yaml:"boundary"`
	AmbientCount int     `yaml:"ambient_count"`
	AmbientSpeed float64 `yaml:"ambient_speed"`
	Seed         uint64  `yaml:"seed"`
}

type AnimationConfig struct {
	Idle   CycleConfig `yaml:"idle"`
	Flying CycleConfig `yaml:"flying"`
}

type CycleConfig struct {
	Frames  []string `yaml:"frames"`
	FPS     float64  `yaml:"fps"`
	Looping bool     `yaml:"looping"`
}

type DiagnosticsConfig struct {
	Interval time.Duration  `yaml:"interval"`
	Mode     sim.ReportMode `yaml:"mode"`
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid value")

// Load reads the embedded defaults and applies the file at path on top of them.
// A missing file is not an error; the defaults are used as is.
func Load(path string) (*Config, error) {
	data, err := readOverride(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return decode(data, path)
}

// Parse decodes data on top of the embedded defaults.
func Parse(data []byte) (*Config, error) {
	return decode(data, "override")
}

func decode(data []byte, name string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultConfig, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal embedded %s: %w", DefaultFile, err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: unmarshal %s: %w", name, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", name, err)
	}
	return &cfg, nil
}

// Validate reports every out-of-range field.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d", c.Window.Width, c.Window.Height)
	check(c.Player.Acceleration > 0, "player.acceleration %v", c.Player.Acceleration)
	check(c.Player.Friction > 0 && c.Player.Friction <= 1, "player.friction %v", c.Player.Friction)
	check(c.Player.MaxSpeed > 0, "player.max_speed %v", c.Player.MaxSpeed)
	check(c.World.Boundary > 0, "world.boundary %v", c.World.Boundary)
	check(c.World.AmbientCount >= 0, "world.ambient_count %d", c.World.AmbientCount)
	check(len(c.Animation.Idle.Frames) > 0, "animation.idle has no frames")
	check(len(c.Animation.Flying.Frames) > 0, "animation.flying has no frames")
	check(c.Animation.Idle.FPS >= 0 && c.Animation.Flying.FPS >= 0, "negative animation fps")
	check(c.Diagnostics.Interval > 0, "diagnostics.interval %s", c.Diagnostics.Interval)
	check(c.Diagnostics.Mode == sim.ReportCount || c.Diagnostics.Mode == sim.ReportRate,
		"diagnostics.mode %q (want %q or %q)", c.Diagnostics.Mode, sim.ReportCount, sim.ReportRate)

	return errors.Join(errs...)
}

func (c CycleConfig) animation() sim.Animation {
	return sim.Animation{
		Frames:  append([]string(nil), c.Frames...),
		FPS:     c.FPS,
		Looping: c.Looping,
	}
}

// Tuning converts the gameplay section into the simulation's Tuning resource.
func (c *Config) Tuning() sim.Tuning {
	return sim.Tuning{
		Acceleration:   c.Player.Acceleration,
		Boundary:       c.World.Boundary,
		IdleCycle:      c.Animation.Idle.animation(),
		FlyingCycle:    c.Animation.Flying.animation(),
		ReportInterval: c.Diagnostics.Interval,
		ReportMode:     c.Diagnostics.Mode,
	}
}

// Bootstrap converts the world section into bootstrap options.
func (c *Config) Bootstrap() sim.BootstrapOptions {
	return sim.BootstrapOptions{
		PlayerStart:  mgl64.Vec2(c.Player.Start),
		Friction:     c.Player.Friction,
		MaxSpeed:     c.Player.MaxSpeed,
		AmbientCount: c.World.AmbientCount,
		AmbientSpeed: c.World.AmbientSpeed,
		Seed:         c.World.Seed,
		Viewport:     mgl64.Vec2{float64(c.Window.Width), float64(c.Window.Height)},
	}
}
