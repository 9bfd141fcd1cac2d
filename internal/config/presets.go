package config

import "sort"

var Presets = map[string]map[string]*Config{
	"squares": {
		"small": {
			Scenario: "squares", Size: 3, Theme: "classic", StartStep: 1,
			Unit: UnitConfig{Cols: 4, Rows: 2}, LogLevel: DefaultLogLevel,
		},
		"classic": {
			Scenario: "squares", Size: 7, Theme: "classic", StartStep: 1,
			Unit: UnitConfig{Cols: 4, Rows: 2}, LogLevel: DefaultLogLevel,
		},
		"large": {
			Scenario: "squares", Size: 10, Theme: "minimal", StartStep: 1,
			Unit: UnitConfig{Cols: 3, Rows: 1}, LogLevel: DefaultLogLevel,
		},
	},
	"demo": {
		"default": {
			Scenario: "demo", Size: 1, Theme: "ocean", StartStep: 1,
			Unit: UnitConfig{Cols: 6, Rows: 3}, LogLevel: DefaultLogLevel,
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(scenario, name string) *Config {
	presets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	cfg, ok := presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets(scenario string) []string {
	presets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
