package main

import (
	"fmt"
	"log/slog"

	"github.com/san-kum/stepviz/internal/anim"
	"github.com/san-kum/stepviz/internal/config"
	"github.com/san-kum/stepviz/internal/scenario"
	"github.com/san-kum/stepviz/internal/script"
	"github.com/san-kum/stepviz/internal/surface"
	"github.com/spf13/cobra"
)

// session is a built stepper and the tree it drives.
type session struct {
	title   string
	cfg     *config.Config
	tree    *surface.Tree
	stepper *anim.Stepper
	logger  *slog.Logger
}

// resolveConfig layers defaults, the preset, the config file and finally any
// flags set on the command line.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.Scenario = args[0]
	}

	if preset != "" {
		p := config.GetPreset(cfg.Scenario, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Scenario))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if len(args) > 0 {
			cfg.Scenario = args[0]
		}
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("script") {
		cfg.Script = scriptFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// sessionLogger writes to stderr, except under the alt-screen player where
// records would draw over the UI.
func sessionLogger(cfg *config.Config, interactive bool) *slog.Logger {
	if interactive {
		return slog.New(slog.DiscardHandler)
	}
	return cfg.Logger()
}

func open(cmd *cobra.Command, args []string, interactive bool) (*session, error) {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return nil, err
	}
	logger := sessionLogger(cfg, interactive)

	s := &session{cfg: cfg, tree: surface.New(), logger: logger}

	var sc anim.Script
	if cfg.Script != "" {
		f, err := script.Load(cfg.Script)
		if err != nil {
			return nil, err
		}
		if sc, err = f.Build(s.tree); err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.Script, err)
		}
		s.title = f.Name
		if s.title == "" {
			s.title = cfg.Script
		}
	} else {
		b, err := scenario.NewRegistry().Get(cfg.Scenario)
		if err != nil {
			return nil, err
		}
		if sc, err = b(s.tree, cfg.Size); err != nil {
			return nil, err
		}
		s.title = cfg.Scenario
	}

	logger.Info("loaded script", "title", s.title, "steps", len(sc), "elements", len(s.tree.IDs()))

	s.stepper, err = anim.New(s.tree, s.tree.Root(), sc, anim.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.title, err)
	}
	return s, nil
}

// seek moves to step k, or to the last step when k is negative.
func (s *session) seek(k int) error {
	if k < 0 {
		k = s.stepper.Len()
	}
	return s.stepper.Seek(k)
}
