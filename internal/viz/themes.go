package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI and the fill of each style class.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Classes    map[string]lipgloss.Color
}

// classPriority orders classes from most to least specific; an element is
// filled with the first one it carries.
var classPriority = []string{"merged", "color2", "color1", "square"}

// Fill returns the colour for an element with the given classes and whether
// any known class matched.
func (t Theme) Fill(classes []string) (lipgloss.Color, bool) {
	for _, want := range classPriority {
		for _, c := range classes {
			if c == want {
				return t.Classes[want], true
			}
		}
	}
	return t.Muted, false
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:       "classic",
		Primary:    lipgloss.Color("#4a90d9"),
		Secondary:  lipgloss.Color("#9ccc65"),
		Accent:     lipgloss.Color("#ffd54f"),
		Background: lipgloss.Color("#1e1e1e"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#777777"),
		Classes: map[string]lipgloss.Color{
			"square": lipgloss.Color("#5c6bc0"),
			"color1": lipgloss.Color("#43a047"),
			"color2": lipgloss.Color("#e53935"),
			"merged": lipgloss.Color("#fb8c00"),
		},
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Primary:    lipgloss.Color("#ff00ff"), // Magenta
		Secondary:  lipgloss.Color("#00ffff"), // Cyan
		Accent:     lipgloss.Color("#ffff00"), // Yellow
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Classes: map[string]lipgloss.Color{
			"square": lipgloss.Color("#6a00ff"),
			"color1": lipgloss.Color("#00b3b3"),
			"color2": lipgloss.Color("#cc0088"),
			"merged": lipgloss.Color("#b3b300"),
		},
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    lipgloss.Color("#ffffff"),
		Secondary:  lipgloss.Color("#cccccc"),
		Accent:     lipgloss.Color("#0088ff"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#000000"),
		Muted:      lipgloss.Color("#888888"),
		Classes: map[string]lipgloss.Color{
			"square": lipgloss.Color("#bbbbbb"),
			"color1": lipgloss.Color("#dddddd"),
			"color2": lipgloss.Color("#999999"),
			"merged": lipgloss.Color("#ffffff"),
		},
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Primary:    lipgloss.Color("#0077be"), // Ocean blue
		Secondary:  lipgloss.Color("#00a8cc"),
		Accent:     lipgloss.Color("#ffd700"),
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Classes: map[string]lipgloss.Color{
			"square": lipgloss.Color("#005f8f"),
			"color1": lipgloss.Color("#00a8cc"),
			"color2": lipgloss.Color("#2e8b57"),
			"merged": lipgloss.Color("#c9a400"),
		},
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Primary:    lipgloss.Color("#ff6b6b"), // Coral
		Secondary:  lipgloss.Color("#feca57"),
		Accent:     lipgloss.Color("#ff9ff3"),
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Classes: map[string]lipgloss.Color{
			"square": lipgloss.Color("#8e44ad"),
			"color1": lipgloss.Color("#e17055"),
			"color2": lipgloss.Color("#d63031"),
			"merged": lipgloss.Color("#fdcb6e"),
		},
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
