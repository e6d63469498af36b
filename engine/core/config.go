package core

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config for the engine run. Zero values are filled in by Defaults.
type Config struct {
	Title      string     `toml:"title"`
	Width      int        `toml:"width"`
	Height     int        `toml:"height"`
	VSync      bool       `toml:"vsync"`
	ClearColor [4]float32 `toml:"clear_color"`
	LogLevel   string     `toml:"log_level"`

	Renderer RendererConfig `toml:"renderer"`
}

// RendererConfig groups the renderer/pipeline knobs.
type RendererConfig struct {
	ShadowsEnabled   bool    `toml:"shadows"`
	ShadowResolution int     `toml:"shadow_resolution"`
	BloomEnabled     bool    `toml:"bloom"`
	BloomThreshold   float32 `toml:"bloom_threshold"`
	BloomIntensity   float32 `toml:"bloom_intensity"`
	ToneMap          string  `toml:"tone_map"` // none | reinhard | aces
	Exposure         float32 `toml:"exposure"`
	Gamma            float32 `toml:"gamma"`
}

// Defaults returns a runnable configuration.
func Defaults() Config {
	return Config{
		Title:      "LMGL",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: [4]float32{0.08, 0.10, 0.12, 1},
		LogLevel:   "info",
		Renderer: RendererConfig{
			ShadowsEnabled:   true,
			ShadowResolution: 2048,
			BloomEnabled:     true,
			BloomThreshold:   1.0,
			BloomIntensity:   1.0,
			ToneMap:          "aces",
			Exposure:         1.0,
			Gamma:            2.2,
		},
	}
}

// LoadConfig merges a TOML file over Defaults. A missing file is not an
// error: defaults are returned as-is.
func LoadConfig(path string) (Config, error) {
	cfg := Defaults()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}
