package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors of the terminal preview.
type Theme struct {
	Name    string
	Curve   lipgloss.Color
	Outline lipgloss.Color
	Label   lipgloss.Color
	Header  lipgloss.Color
	Muted   lipgloss.Color
	Graph   lipgloss.Color
}

// Available themes
var (
	ThemeEmber = Theme{
		Name:    "ember",
		Curve:   lipgloss.Color("#ffa014"), // same orange as the window curve
		Outline: lipgloss.Color("#5a5a5a"),
		Label:   lipgloss.Color("#ffffff"),
		Header:  lipgloss.Color("#ff8c00"),
		Muted:   lipgloss.Color("#666666"),
		Graph:   lipgloss.Color("#ffcc66"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Curve:   lipgloss.Color("#00ff00"), // Green phosphor
		Outline: lipgloss.Color("#005500"),
		Label:   lipgloss.Color("#88ff88"),
		Header:  lipgloss.Color("#00cc00"),
		Muted:   lipgloss.Color("#005500"),
		Graph:   lipgloss.Color("#00cc00"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Curve:   lipgloss.Color("#ffffff"),
		Outline: lipgloss.Color("#444444"),
		Label:   lipgloss.Color("#cccccc"),
		Header:  lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Graph:   lipgloss.Color("#cccccc"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Curve:   lipgloss.Color("#00a8cc"),
		Outline: lipgloss.Color("#4488aa"),
		Label:   lipgloss.Color("#e0f0ff"),
		Header:  lipgloss.Color("#0077be"),
		Muted:   lipgloss.Color("#4488aa"),
		Graph:   lipgloss.Color("#ffd700"),
	}

	// All available themes
	Themes = []Theme{
		ThemeEmber,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to ember.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeEmber
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
