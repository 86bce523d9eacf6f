package windowing

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries the host-side settings a backend needs to realize a window.
// The zero value is usable; New fills in defaults.
type Config struct {
	// Backend forces a specific registered backend by name.
	// Empty selects the best available one.
	Backend string `yaml:"backend"`

	// Title is the initial window title.
	Title string `yaml:"title"`

	// Width and Height are the initial inner size in density-independent
	// pixels.
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`

	// HiDPI overrides the platform's scale factor when non-zero. Useful
	// for headless runs and tests.
	HiDPI float32 `yaml:"hidpi"`

	// NavigationTimeout bounds how long a navigation stays gated on an
	// unanswered AllowNavigation reply.
	// Zero means DefaultNavigationTimeout.
	NavigationTimeout time.Duration `yaml:"navigation_timeout"`

	// NavigationDefaultAllow resolves a timed-out navigation gate as an
	// allow instead of the default deny.
	NavigationDefaultAllow bool `yaml:"navigation_default_allow"`

	// Custom holds backend-specific settings.
	Custom map[string]any `yaml:"custom"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Title:             "windowing",
		Width:             800,
		Height:            600,
		NavigationTimeout: DefaultNavigationTimeout,
	}
}

// withDefaults fills unset fields with defaults.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.NavigationTimeout <= 0 {
		c.NavigationTimeout = def.NavigationTimeout
	}
	return c
}

// InitialSize returns the configured inner size in dip units.
func (c Config) InitialSize() DipSize {
	return DipSize{Width: c.Width, Height: c.Height}
}

// LoadConfig reads a YAML config file and merges it over the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("windowing: read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("windowing: parse config %s: %w", path, err)
	}
	return cfg.withDefaults(), nil
}
