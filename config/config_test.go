package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config valid, got %v", err)
	}
	if cfg.World.Width != 256 || cfg.World.Height != 256 || cfg.World.Depth != 64 {
		t.Errorf("Expected 256x256x64 world, got %dx%dx%d", cfg.World.Width, cfg.World.Height, cfg.World.Depth)
	}
	if cfg.Engine.Zombies != 100 {
		t.Errorf("Expected 100 zombies, got %d", cfg.Engine.Zombies)
	}
	if cfg.Render.FogColor != 0x0E0B0A {
		t.Errorf("Expected fog color 0x0E0B0A, got %#x", cfg.Render.FogColor)
	}
	if cfg.Metrics.Address != "" {
		t.Errorf("Expected metrics disabled by default, got %q", cfg.Metrics.Address)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "blockworld.toml", `
[world]
width = 64
generator = "perlin"

[engine]
zombies = 5

[render]
parallel = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected load success, got %v", err)
	}
	if cfg.World.Width != 64 || cfg.World.Generator != "perlin" {
		t.Errorf("Expected overrides applied, got %+v", cfg.World)
	}
	if cfg.World.Depth != 64 || cfg.World.SavePath != "level.dat" {
		t.Errorf("Expected untouched keys to keep defaults, got %+v", cfg.World)
	}
	if cfg.Engine.Zombies != 5 || !cfg.Render.Parallel {
		t.Errorf("Expected engine and render overrides, got %+v %+v", cfg.Engine, cfg.Render)
	}
}

func TestLoadYAML(t *testing.T) {
	for _, ext := range []string{".yaml", ".yml"} {
		t.Run(ext, func(t *testing.T) {
			path := writeFile(t, "blockworld"+ext, `
world:
  depth: 32
metrics:
  address: ":9100"
sound:
  enabled: false
`)
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Expected load success, got %v", err)
			}
			if cfg.World.Depth != 32 || cfg.World.Width != 256 {
				t.Errorf("Expected depth override only, got %+v", cfg.World)
			}
			if cfg.Metrics.Address != ":9100" {
				t.Errorf("Expected metrics address, got %q", cfg.Metrics.Address)
			}
			if cfg.Sound.Enabled {
				t.Error("Expected sound disabled")
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("unknown extension", func(t *testing.T) {
		path := writeFile(t, "blockworld.json", "{}")
		if _, err := Load(path); !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("Expected ErrUnknownFormat, got %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Expected wrapped not-exist error, got %v", err)
		}
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeFile(t, "bad.toml", "[world\nwidth = ")
		if _, err := Load(path); err == nil {
			t.Error("Expected parse error")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.World.Width = 0 }},
		{"negative depth", func(c *Config) { c.World.Depth = -1 }},
		{"zero tick rate", func(c *Config) { c.Engine.TicksPerSecond = 0 }},
		{"zero time scale", func(c *Config) { c.Engine.TimeScale = 0 }},
		{"negative zombies", func(c *Config) { c.Engine.Zombies = -3 }},
		{"zero fps", func(c *Config) { c.Engine.TargetFPS = 0 }},
		{"far before near", func(c *Config) { c.Camera.Far = 0.01 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}
