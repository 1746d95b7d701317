package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Canvas CanvasConfig `yaml:"canvas"`
	Theme  ThemeConfig  `yaml:"theme"`
	Log    LogConfig    `yaml:"log"`
}

// CanvasConfig is the hourglass size in terminal cells. Each cell holds two
// pixels stacked vertically.
type CanvasConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// ThemeConfig colors are "#rrggbb" hex strings.
type ThemeConfig struct {
	Frame      string `yaml:"frame"`
	Sand       string `yaml:"sand"`
	Drip       string `yaml:"drip"`
	Text       string `yaml:"text"`
	Background string `yaml:"background"`
}

type LogConfig struct {
	// Path is where debug logs go. Empty disables logging.
	Path string `yaml:"path"`
}

func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Columns: 36,
			Rows:    24,
		},
		Theme: ThemeConfig{
			Frame:      "#458588",
			Sand:       "#d79921",
			Drip:       "#fabd2f",
			Text:       "#ebdbb2",
			Background: "#1d2021",
		},
	}
}

// Dir is where the config file lives.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".hourglass"), nil
}

// Load reads the YAML file at path on top of Default. A missing file is not
// an error; the defaults are returned as is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads config.yaml from Dir.
func LoadDefault() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, fmt.Errorf("locate config dir: %w", err)
	}
	return Load(filepath.Join(dir, "config.yaml"))
}

func (c *Config) Validate() error {
	if c.Canvas.Columns < 8 || c.Canvas.Rows < 4 {
		return fmt.Errorf("%w: canvas %dx%d is smaller than 8x4", ErrInvalid, c.Canvas.Columns, c.Canvas.Rows)
	}
	colors := []struct {
		name, value string
	}{
		{"frame", c.Theme.Frame},
		{"sand", c.Theme.Sand},
		{"drip", c.Theme.Drip},
		{"text", c.Theme.Text},
		{"background", c.Theme.Background},
	}
	for _, col := range colors {
		if !isHexColor(col.value) {
			return fmt.Errorf("%w: theme.%s %q is not a #rrggbb color", ErrInvalid, col.name, col.value)
		}
	}
	return nil
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
