// Package theme provides the dark/light visual modes and the persisted
// theme preference.
package theme

import "github.com/charmbracelet/lipgloss"

// Mode names are the exact strings persisted to the preference store.
const (
	Dark  = "dark"
	Light = "light"
)

// Theme defines the visual style for all styled output.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Code          lipgloss.Style
	Selected      lipgloss.Style
	BorderedBox   lipgloss.Style
	BarFull       lipgloss.Style
	BarEmpty      lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusPending lipgloss.Style
	Muted         lipgloss.Style
	Primary       lipgloss.Color
	Border        lipgloss.Color
}

// DarkTheme is the dark visual mode.
var DarkTheme = Theme{
	Primary: lipgloss.Color("#7c3aed"),
	Border:  lipgloss.Color("#404040"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Code: lipgloss.NewStyle().
		Background(lipgloss.Color("#262626")).
		Foreground(lipgloss.Color("#e5e5e5")).
		Padding(0, 1),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#7c3aed")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(1, 2),
	BarFull: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7c3aed")),
	BarEmpty: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#404040")),
	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")).
		Bold(true),
	StatusWarning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f59e0b")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3b82f6")).
		Bold(true),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		Italic(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
}

// LightTheme is the light visual mode.
var LightTheme = Theme{
	Primary: lipgloss.Color("#6d28d9"),
	Border:  lipgloss.Color("#d4d4d4"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#171717")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#525252")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#171717")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#171717")),
	Code: lipgloss.NewStyle().
		Background(lipgloss.Color("#e5e5e5")).
		Foreground(lipgloss.Color("#262626")).
		Padding(0, 1),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#6d28d9")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#d4d4d4")).
		Padding(1, 2),
	BarFull: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6d28d9")),
	BarEmpty: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#d4d4d4")),
	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#047857")).
		Bold(true),
	StatusWarning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#b45309")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#b91c1c")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#1d4ed8")).
		Bold(true),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		Italic(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
}

// GetTheme returns the theme for a mode name, defaulting to light.
func GetTheme(mode string) Theme {
	if mode == Dark {
		return DarkTheme
	}
	return LightTheme
}
