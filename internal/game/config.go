package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/pixelabyss/data"
)

// Environment variables that override the config file.
const (
	EnvSeed  = "PIXELABYSS_SEED"
	EnvStore = "PIXELABYSS_STORE"
)

// ErrInvalidConfig is returned when a config value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds game configuration options.
type Config struct {
	// Seed for world generation. The same seed always yields the same map.
	Seed int64 `yaml:"seed"`

	View ViewConfig `yaml:"view"`

	// CacheLimit bounds memoized biome lookups. Zero disables the cache.
	CacheLimit int `yaml:"cache_limit"`

	// Store is the save file path. Empty keeps saves in memory.
	Store string `yaml:"store"`

	Editor EditorConfig `yaml:"editor"`
}

// ViewConfig is the explore viewport size in tiles.
type ViewConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// EditorConfig holds the pixel editor defaults.
type EditorConfig struct {
	Palette  string `yaml:"palette"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Scale    int    `yaml:"scale"`
	MinCells int    `yaml:"min_cells"`
}

// DefaultConfig returns the embedded defaults.
func DefaultConfig() Config {
	var cfg Config
	if err := yaml.Unmarshal(data.DefaultConfig(), &cfg); err != nil {
		panic(fmt.Sprintf("embedded config: %v", err))
	}
	return cfg
}

// LoadConfig reads the defaults, overlays the YAML file at path (if any) and
// then the environment. Keys missing from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvSeed, v, err)
		}
		c.Seed = seed
	}
	if v, ok := lookup(EnvStore); ok {
		c.Store = v
	}
	return nil
}

// Validate checks sizes are positive.
func (c Config) Validate() error {
	switch {
	case c.View.Width < 1 || c.View.Height < 1:
		return fmt.Errorf("%w: view must be at least 1x1, got %dx%d", ErrInvalidConfig, c.View.Width, c.View.Height)
	case c.Editor.Width < 1 || c.Editor.Height < 1:
		return fmt.Errorf("%w: editor must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Editor.Width, c.Editor.Height)
	case c.Editor.Scale < 1:
		return fmt.Errorf("%w: editor scale must be positive, got %d", ErrInvalidConfig, c.Editor.Scale)
	case c.Editor.MinCells < 0 || c.Editor.MinCells > c.Editor.Width*c.Editor.Height:
		return fmt.Errorf("%w: editor min_cells %d outside 0..%d", ErrInvalidConfig, c.Editor.MinCells, c.Editor.Width*c.Editor.Height)
	case c.CacheLimit < 0:
		return fmt.Errorf("%w: cache_limit must not be negative", ErrInvalidConfig)
	}
	return nil
}
