package viz

import "github.com/charmbracelet/lipgloss"

// Theme colours the canvas and the status bar.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
}

var (
	ThemeStarfield = Theme{
		Name:       "starfield",
		Primary:    lipgloss.Color("#e8f0ff"),
		Accent:     lipgloss.Color("#b4dcff"),
		Background: lipgloss.Color("#0a0f1e"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#5a6a8a"),
	}

	ThemeNetwork = Theme{
		Name:       "network",
		Primary:    lipgloss.Color("#66e0ff"),
		Accent:     lipgloss.Color("#ff66d9"),
		Background: lipgloss.Color("#080a18"),
		Text:       lipgloss.Color("#f0f5ff"),
		Muted:      lipgloss.Color("#4a5080"),
	}

	ThemeInk = Theme{
		Name:       "ink",
		Primary:    lipgloss.Color("#8f6bd8"), // violet
		Accent:     lipgloss.Color("#00acc1"),
		Background: lipgloss.Color("#06060e"),
		Text:       lipgloss.Color("#e6e0ff"),
		Muted:      lipgloss.Color("#4b3f6b"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    lipgloss.Color("#ffffff"),
		Accent:     lipgloss.Color("#0088ff"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
	}

	CurrentTheme = ThemeStarfield

	Themes = []Theme{
		ThemeStarfield,
		ThemeNetwork,
		ThemeInk,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to starfield.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeStarfield
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the theme after name in Themes, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
