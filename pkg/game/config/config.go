// Package config loads the settings for a generation run.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"platformgen/pkg/engine/noise"
	"platformgen/pkg/game/generator"
)

// Renderer backends
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
	RendererNone   = "none"
)

// Config holds the settings for a generation run
type Config struct {
	Width         int            `json:"width"`
	Height        int            `json:"height"`
	Generator     generator.Kind `json:"generator"`
	Noise         noise.Kind     `json:"noise"`
	NoiseSeed     int64          `json:"noise_seed"`
	PillarSpacing int            `json:"pillar_spacing"` // 0 disables pillars
	ChunkDir      string         `json:"chunk_dir"`      // empty uses the built-in chunks
	TileSize      int            `json:"tile_size"`      // pixels per cell in the preview window
	Renderer      string         `json:"renderer"`
	Language      string         `json:"language"`
	LocaleDir     string         `json:"locale_dir"`
}

// Default returns the settings used when no file is given
func Default() *Config {
	return &Config{
		Width:         64,
		Height:        16,
		Generator:     generator.KindNoise,
		Noise:         noise.KindPerlin,
		NoiseSeed:     noise.DefaultSeed,
		PillarSpacing: generator.DefaultPillarSpacing,
		TileSize:      16,
		Renderer:      RendererTUI,
		Language:      "en_GB",
		LocaleDir:     "locales",
	}
}

// Load reads a JSON config file. Fields missing from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a JSON config document
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as indented JSON
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that every field holds a usable value
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid size must be positive, got %dx%d", c.Width, c.Height)
	}
	if !validGenerator(c.Generator) {
		return fmt.Errorf("unknown generator %q", c.Generator)
	}
	if _, ok := noise.New(c.Noise, c.NoiseSeed); !ok {
		return fmt.Errorf("unknown noise %q", c.Noise)
	}
	if c.PillarSpacing < 0 {
		return fmt.Errorf("pillar_spacing cannot be negative (%d)", c.PillarSpacing)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("tile_size must be positive (%d)", c.TileSize)
	}
	switch c.Renderer {
	case RendererTUI, RendererEbiten, RendererNone:
	default:
		return fmt.Errorf("unknown renderer %q", c.Renderer)
	}
	return nil
}

func validGenerator(kind generator.Kind) bool {
	for _, k := range generator.Kinds() {
		if k == kind {
			return true
		}
	}
	return false
}
