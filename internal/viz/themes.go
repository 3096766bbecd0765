package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the panel color scheme. The particles keep their animated colors.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Warning   lipgloss.Color
}

var (
	ThemeRose = Theme{
		Name:      "rose",
		Primary:   lipgloss.Color("#ff3366"),
		Secondary: lipgloss.Color("#ff99bb"),
		Accent:    lipgloss.Color("#ffd1dc"),
		Text:      lipgloss.Color("#fff0f5"),
		Muted:     lipgloss.Color("#7a4a5a"),
		Warning:   lipgloss.Color("#ffaa00"),
	}

	ThemeEmber = Theme{
		Name:      "ember",
		Primary:   lipgloss.Color("#ff5a1f"),
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9f43"),
		Text:      lipgloss.Color("#fff5e6"),
		Muted:     lipgloss.Color("#8b5a3c"),
		Warning:   lipgloss.Color("#ff4757"),
	}

	ThemeMono = Theme{
		Name:      "mono",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#999999"),
		Text:      lipgloss.Color("#eeeeee"),
		Muted:     lipgloss.Color("#666666"),
		Warning:   lipgloss.Color("#ffaa00"),
	}

	ThemeAurora = Theme{
		Name:      "aurora",
		Primary:   lipgloss.Color("#c56cf0"),
		Secondary: lipgloss.Color("#00d2d3"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#f5f0ff"),
		Muted:     lipgloss.Color("#5f5a7a"),
		Warning:   lipgloss.Color("#feca57"),
	}

	CurrentTheme = ThemeRose

	Themes = []Theme{ThemeRose, ThemeEmber, ThemeMono, ThemeAurora}
)

// GetTheme returns a theme by name, falling back to rose.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeRose
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one.
func NextTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return
		}
	}
	CurrentTheme = Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
