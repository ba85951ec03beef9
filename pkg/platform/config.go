// Package platform hosts a strut application inside an OS window. It
// translates host input events into frame input, rasterizes display
// lists, and carries the app configuration.
package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/go-strut/strut/pkg/ui"
)

// Config is the host configuration, read from a TOML file.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Scroll  ScrollConfig  `toml:"scroll"`
	Session SessionConfig `toml:"session"`
}

type WindowConfig struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Fullscreen bool   `toml:"fullscreen"`
}

type ScrollConfig struct {
	// LineHeight converts line-based wheel deltas to pixels.
	LineHeight float64 `toml:"line_height"`
	// BarWidth overrides the scrollbar width, 0 keeps the default.
	BarWidth float64 `toml:"bar_width"`
}

type SessionConfig struct {
	// Path is where scroll positions are persisted between runs.
	// Empty disables session persistence.
	Path string `toml:"path"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "strut",
			Width:  1280,
			Height: 800,
		},
		Scroll: ScrollConfig{
			LineHeight: 24,
		},
	}
}

// LoadConfig reads the config at path, falling back to defaults when
// the file does not exist.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}

// ApplyStyle copies the config's style overrides onto style.
func (c *Config) ApplyStyle(style *ui.Style) {
	if c.Scroll.BarWidth > 0 {
		style.ScrollBarWidth = c.Scroll.BarWidth
	}
}
