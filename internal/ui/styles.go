package ui

import (
	"github.com/charmbracelet/lipgloss"

	"taskpad/internal/config"
)

// Theme is the style table one theme renders with.
type Theme struct {
	Name     string
	Title    lipgloss.Style
	Cursor   lipgloss.Style
	Task     lipgloss.Style
	TaskDone lipgloss.Style
	Counts   lipgloss.Style
	Status   lipgloss.Style
	Help     lipgloss.Style
}

var darkTheme = Theme{
	Name: config.ThemeDark,
	Title: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#7D56F4")).
		Padding(0, 1),
	Cursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#EE6FF8")),
	Task: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")),
	TaskDone: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666")).
		Strikethrough(true),
	Counts: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#A6E3A1")),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F9E2AF")),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666")).
		Italic(true),
}

var lightTheme = Theme{
	Name: config.ThemeLight,
	Title: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFDF5")).
		Background(lipgloss.Color("#25A065")).
		Padding(0, 1),
	Cursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#D7005F")),
	Task: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#1A1A1A")),
	TaskDone: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#9E9E9E")).
		Strikethrough(true),
	Counts: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#25A065")),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#B58900")),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#9E9E9E")).
		Italic(true),
}

// themeFor maps a config theme name to its style table; unknown names get
// the dark default.
func themeFor(name string) Theme {
	if name == config.ThemeLight {
		return lightTheme
	}
	return darkTheme
}
