package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/rangeband/internal/numeric"
)

type Config struct {
	// NotifyWhileDragging emits value updates on every pointer move
	// instead of only on release.
	NotifyWhileDragging bool `koanf:"notify_while_dragging"`

	// TouchSlop is the pointer travel in cells before a press becomes a
	// drag. Zero means the default.
	TouchSlop float64 `koanf:"touch_slop"`

	Theme ThemeConfig `koanf:"theme"`

	Sliders []SliderConfig `koanf:"sliders"`
}

// ThemeConfig overrides slider colors. Empty fields keep the defaults.
type ThemeConfig struct {
	Active       string `koanf:"active"`
	ActiveEnd    string `koanf:"active_end"`
	Track        string `koanf:"track"`
	Thumb        string `koanf:"thumb"`
	ThumbPressed string `koanf:"thumb_pressed"`
	Label        string `koanf:"label"`
}

// SliderConfig describes one slider instance.
type SliderConfig struct {
	ID    string `koanf:"id"`
	Title string `koanf:"title"`

	// Kind: "long", "double", "integer", "float", "short", "byte" or
	// "decimal" (default: "integer").
	Kind string  `koanf:"kind"`
	Min  float64 `koanf:"min"`
	Max  float64 `koanf:"max"`

	// Step snaps values to multiples of the given increment.
	Step float64 `koanf:"step"`
	// Values restricts the slider to a fixed discrete sequence and
	// overrides min/max/step.
	Values []float64 `koanf:"values"`
	// Scale: "linear" (default) or "cubic".
	Scale string `koanf:"scale"`

	// MinGap and MaxGap constrain the selected span, in domain units.
	MinGap float64 `koanf:"min_gap"`
	MaxGap float64 `koanf:"max_gap"`

	SingleThumb   bool    `koanf:"single_thumb"`
	DragSpan      bool    `koanf:"drag_span"`
	SnapToClosest bool    `koanf:"snap_to_closest"`
	SnapTolerance float64 `koanf:"snap_tolerance"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.TouchSlop <= 0 {
		cfg.TouchSlop = 1
	}
	if len(cfg.Sliders) == 0 {
		cfg.Sliders = defaultSliders()
	}
	for i := range cfg.Sliders {
		if cfg.Sliders[i].ID == "" {
			cfg.Sliders[i].ID = fmt.Sprintf("slider-%d", i)
		}
		if cfg.Sliders[i].Title == "" {
			cfg.Sliders[i].Title = cfg.Sliders[i].ID
		}
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/rangeband/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "rangeband", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

// defaultSliders covers one slider per value mapping so the demo is
// useful without a config file.
func defaultSliders() []SliderConfig {
	return []SliderConfig{
		{ID: "age", Title: "Age", Kind: "integer", Min: 15, Max: 90, MinGap: 5},
		{ID: "price", Title: "Price", Kind: "long", Min: 0, Max: 100000, Step: 500},
		{ID: "rating", Title: "Rating", Kind: "double", Values: []float64{1, 2, 3, 4, 4.5, 5}},
		{ID: "budget", Title: "Budget", Kind: "long", Min: 0, Max: 1000000, Scale: "cubic"},
	}
}

// NumericKind parses the slider's kind field.
func (s SliderConfig) NumericKind() (numeric.Kind, error) {
	switch strings.ToLower(s.Kind) {
	case "", "integer", "int":
		return numeric.Integer, nil
	case "long":
		return numeric.Long, nil
	case "double":
		return numeric.Double, nil
	case "float":
		return numeric.Float, nil
	case "short":
		return numeric.Short, nil
	case "byte":
		return numeric.Byte, nil
	case "decimal", "bigdecimal":
		return numeric.Decimal, nil
	default:
		return 0, fmt.Errorf("unknown numeric kind %q", s.Kind)
	}
}

// Cubic reports whether the slider uses the cubic scale.
func (s SliderConfig) Cubic() bool {
	return strings.EqualFold(s.Scale, "cubic")
}
