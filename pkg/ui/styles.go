package ui

import "github.com/charmbracelet/lipgloss"

// Color Palette
// This is the single source of truth for all TUI colors, echoing the pastel
// look of the original journal.
var (
	journalPink = lipgloss.Color("#FFB3BA") // primary accent
	journalBlue = lipgloss.Color("#AEC6FF") // info accents
	mintGreen   = lipgloss.Color("#A8E6CF") // success / saved states
	softYellow  = lipgloss.Color("#FFE3A3") // bookmark star
	mutedGray   = lipgloss.Color("#6B7280") // secondary text
	brightWhite = lipgloss.Color("#F9FAFB") // primary text
)

// Common Styles
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(journalPink).
			Bold(true)

	taglineStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Italic(true)

	tabStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(journalPink).
			Bold(true).
			Padding(0, 1)

	authorStyle = lipgloss.NewStyle().
			Foreground(journalBlue).
			Bold(true)

	timeStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	contentStyle = lipgloss.NewStyle().
			Foreground(brightWhite)

	savedStyle = lipgloss.NewStyle().
			Foreground(softYellow)

	commentStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			PaddingLeft(4)

	selectedCommentStyle = lipgloss.NewStyle().
				Foreground(brightWhite).
				PaddingLeft(4)

	noticeStyle = lipgloss.NewStyle().
			Foreground(journalBlue)

	statusStyle = lipgloss.NewStyle().
			Foreground(mintGreen).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(journalPink).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Padding(0, 1)

	postBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedGray).
			Padding(0, 1)

	selectedPostBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(journalPink).
				Padding(0, 1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(journalPink).
			Padding(0, 1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Align(lipgloss.Center)
)
