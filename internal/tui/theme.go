package tui

import "github.com/charmbracelet/lipgloss"

// Theme is the resolved style set for one color scheme. Cards receive the
// active theme with every render; a theme change is broadcast through the
// update loop so every card restyles on the same frame.
type Theme struct {
	Name      string
	Dark      bool
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	CardTitle lipgloss.Style
	Text      lipgloss.Style
	Dim       lipgloss.Style
	Accent    lipgloss.Style
	Focused   lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Input     lipgloss.Style
}

var Themes = map[string]Theme{
	"light": {
		Name:      "Light",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("111"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		CardTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("32")),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("172")).Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("111")).Padding(0, 1),
	},
	"dark": {
		Name:      "Dark",
		Dark:      true,
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),
		CardTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1),
	},
}

// ThemeFor returns the theme matching the persisted dark-mode flag.
func ThemeFor(dark bool) Theme {
	if dark {
		return Themes["dark"]
	}
	return Themes["light"]
}
