package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/blockworld/parameter"
)

// ErrUnknownFormat is returned for config files that are neither TOML nor YAML
var ErrUnknownFormat = errors.New("unknown config format")

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

type Config struct {
	World   WorldConfig   `toml:"world" yaml:"world"`
	Engine  EngineConfig  `toml:"engine" yaml:"engine"`
	Camera  CameraConfig  `toml:"camera" yaml:"camera"`
	Render  RenderConfig  `toml:"render" yaml:"render"`
	Metrics MetricsConfig `toml:"metrics" yaml:"metrics"`
	Sound   SoundConfig   `toml:"sound" yaml:"sound"`
}

type WorldConfig struct {
	Width     int    `toml:"width" yaml:"width"`
	Height    int    `toml:"height" yaml:"height"` // z extent
	Depth     int    `toml:"depth" yaml:"depth"`   // vertical extent
	Seed      int64  `toml:"seed" yaml:"seed"`     // 0 picks a time-based seed
	Generator string `toml:"generator" yaml:"generator"`
	SavePath  string `toml:"save_path" yaml:"save_path"`
}

type EngineConfig struct {
	TicksPerSecond int     `toml:"ticks_per_second" yaml:"ticks_per_second"`
	TimeScale      float64 `toml:"time_scale" yaml:"time_scale"`
	Zombies        int     `toml:"zombies" yaml:"zombies"`
	TargetFPS      int     `toml:"target_fps" yaml:"target_fps"`
}

type CameraConfig struct {
	FOV              float32 `toml:"fov" yaml:"fov"`
	Near             float32 `toml:"near" yaml:"near"`
	Far              float32 `toml:"far" yaml:"far"`
	PickRadius       float32 `toml:"pick_radius" yaml:"pick_radius"`
	MouseSensitivity float32 `toml:"mouse_sensitivity" yaml:"mouse_sensitivity"`
}

type RenderConfig struct {
	FogDensity  float32    `toml:"fog_density" yaml:"fog_density"`
	FogColor    uint32     `toml:"fog_color" yaml:"fog_color"` // 0xRRGGBB
	SkyColor    [3]float32 `toml:"sky_color" yaml:"sky_color"`
	TexturePath string     `toml:"texture_path" yaml:"texture_path"`
	SkinPath    string     `toml:"skin_path" yaml:"skin_path"`
	Parallel    bool       `toml:"parallel" yaml:"parallel"`
}

type MetricsConfig struct {
	Address string `toml:"address" yaml:"address"` // empty disables the listener
}

type SoundConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Width:     parameter.DefaultWorldWidth,
			Height:    parameter.DefaultWorldHeight,
			Depth:     parameter.DefaultWorldDepth,
			Generator: "flat",
			SavePath:  "level.dat",
		},
		Engine: EngineConfig{
			TicksPerSecond: parameter.TicksPerSecond,
			TimeScale:      1,
			Zombies:        parameter.DefaultZombieCount,
			TargetFPS:      30,
		},
		Camera: CameraConfig{
			FOV:              parameter.CameraFOV,
			Near:             parameter.CameraNear,
			Far:              parameter.CameraFar,
			PickRadius:       parameter.PickRadius,
			MouseSensitivity: 1,
		},
		Render: RenderConfig{
			FogDensity:  parameter.FogDensity,
			FogColor:    parameter.FogColor,
			SkyColor:    [3]float32{parameter.SkyR, parameter.SkyG, parameter.SkyB},
			TexturePath: "terrain.png",
			SkinPath:    "char.png",
		},
		Sound: SoundConfig{Enabled: true},
	}
}

// Load reads a TOML or YAML file over the defaults; keys absent from the file keep their default
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("read config %s: %w", path, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot run with
func (c *Config) Validate() error {
	w := c.World
	if w.Width <= 0 || w.Height <= 0 || w.Depth <= 0 {
		return fmt.Errorf("%w: world dimensions %dx%dx%d must be positive", ErrInvalid, w.Width, w.Height, w.Depth)
	}
	if c.Engine.TicksPerSecond <= 0 {
		return fmt.Errorf("%w: ticks_per_second %d must be positive", ErrInvalid, c.Engine.TicksPerSecond)
	}
	if c.Engine.TimeScale <= 0 {
		return fmt.Errorf("%w: time_scale %v must be positive", ErrInvalid, c.Engine.TimeScale)
	}
	if c.Engine.Zombies < 0 {
		return fmt.Errorf("%w: zombies %d must not be negative", ErrInvalid, c.Engine.Zombies)
	}
	if c.Engine.TargetFPS <= 0 {
		return fmt.Errorf("%w: target_fps %d must be positive", ErrInvalid, c.Engine.TargetFPS)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("%w: clip planes near %v far %v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	}
	return nil
}
