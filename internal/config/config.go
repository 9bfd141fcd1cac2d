package config

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/san-kum/stepviz/internal/viz"
	"gopkg.in/yaml.v3"
)

const (
	DefaultScenario = "squares"
	DefaultSize     = 7
	DefaultTheme    = "classic"
	DefaultCellCols = 4
	DefaultCellRows = 2
	DefaultLogLevel = "warn"
)

type Config struct {
	Scenario  string     `yaml:"scenario"`
	Size      int        `yaml:"size"`
	Script    string     `yaml:"script"`
	Theme     string     `yaml:"theme"`
	Unit      UnitConfig `yaml:"unit"`
	StartStep int        `yaml:"start_step"`
	LogLevel  string     `yaml:"log_level"`
}

// UnitConfig is the number of terminal cells one script unit occupies.
type UnitConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario:  DefaultScenario,
		Size:      DefaultSize,
		Theme:     DefaultTheme,
		Unit:      UnitConfig{Cols: DefaultCellCols, Rows: DefaultCellRows},
		StartStep: 1,
		LogLevel:  DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func Save(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("size must be positive, got %d", c.Size)
	}
	if c.Unit.Cols < 1 || c.Unit.Rows < 1 {
		return fmt.Errorf("unit must be at least 1x1 cells, got %dx%d", c.Unit.Cols, c.Unit.Rows)
	}
	if !slices.Contains(viz.ThemeNames(), c.Theme) {
		return fmt.Errorf("unknown theme: %q (available: %v)", c.Theme, viz.ThemeNames())
	}
	if c.StartStep < 0 {
		return fmt.Errorf("start_step must not be negative, got %d", c.StartStep)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level: %q", s)
}

// Logger builds the text logger the CLI writes to stderr.
func (c *Config) Logger() *slog.Logger {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
