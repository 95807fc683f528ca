// Package themes holds the colour palettes of the table browser.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Header        lipgloss.Style
	ActiveHeader  lipgloss.Style
	Selected      lipgloss.Style
	Cell          lipgloss.Style
	SearchPrompt  lipgloss.Style
	FilterChip    lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	Box           lipgloss.Style
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Info          lipgloss.Color
	Error         lipgloss.Color
	Warning       lipgloss.Color
	Success       lipgloss.Color
}

// Default is the default theme.
var Default = Theme{
	// Colors
	Primary:   lipgloss.Color("#E8A0BF"),
	Secondary: lipgloss.Color("#BA90C6"),
	Success:   lipgloss.Color("#7BC47F"),
	Warning:   lipgloss.Color("#F6C85F"),
	Error:     lipgloss.Color("#E5575C"),
	Info:      lipgloss.Color("#8AB6D6"),
	Border:    lipgloss.Color("#404040"),
	Muted:     lipgloss.Color("#777777"),

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#E8A0BF")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),

	// Table styles
	Header: lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		BorderBottom(true),
	ActiveHeader: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#E8A0BF")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#BA90C6")).
		Foreground(lipgloss.Color("#1a1a1a")).
		Bold(true),
	Cell: lipgloss.NewStyle().
		Padding(0, 1),

	// Component styles
	SearchPrompt: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#E8A0BF")).
		Bold(true),
	FilterChip: lipgloss.NewStyle().
		Background(lipgloss.Color("#404040")).
		Foreground(lipgloss.Color("#fafafa")).
		Padding(0, 1).
		MarginRight(1),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),

	// Status styles
	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7BC47F")).
		Bold(true),
	StatusWarning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F6C85F")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#E5575C")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8AB6D6")),
}
