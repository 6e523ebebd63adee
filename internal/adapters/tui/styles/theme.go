package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Collection colors
	KindRegulation = lipgloss.Color("#6366F1") // Indigo
	KindNotice     = lipgloss.Color("#8B5CF6") // Violet
	KindLayer      = lipgloss.Color("#EC4899") // Pink
	KindDiff       = lipgloss.Color("#F97316") // Orange

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Tree node styles
	NodeDir = lipgloss.NewStyle().
		Bold(true)

	NodeDocument = lipgloss.NewStyle()

	NodeSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// Tree indicators
	TreeBranch    = lipgloss.NewStyle().Foreground(Muted)
	TreeExpanded  = "▼ "
	TreeCollapsed = "▶ "
	TreeLeaf      = "  "

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Section label
	Label = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// CollectionColor returns the color for a top-level collection directory
func CollectionColor(name string) lipgloss.Color {
	switch name {
	case "regulation":
		return KindRegulation
	case "notice":
		return KindNotice
	case "layer":
		return KindLayer
	case "diff":
		return KindDiff
	default:
		return Primary
	}
}
