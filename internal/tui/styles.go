package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor = lipgloss.Color("#0D9488") // Teal
	accentColor  = lipgloss.Color("#F59E0B") // Saffron
	mutedColor   = lipgloss.Color("#6B7280") // Gray
	errorColor   = lipgloss.Color("#EF4444") // Red
	fgColor      = lipgloss.Color("#F9FAFB") // Light

	// Layout styles
	AppStyle    = lipgloss.NewStyle().Padding(1, 2)
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).MarginBottom(1)

	// List panel (left side)
	ListPanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(mutedColor).Padding(0, 1)

	// Detail panel (right side)
	DetailPanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primaryColor).Padding(1, 2)

	// List item styles
	SelectedItemStyle = lipgloss.NewStyle().Background(primaryColor).Foreground(fgColor).Bold(true).Padding(0, 1)
	NormalItemStyle   = lipgloss.NewStyle().Foreground(fgColor).Padding(0, 1)
	DateStyle         = lipgloss.NewStyle().Foreground(accentColor).Width(12)
	PriceStyle        = lipgloss.NewStyle().Foreground(mutedColor).Width(10)
	BookmarkMarkStyle = lipgloss.NewStyle().Foreground(accentColor)

	// Detail panel styles
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).MarginBottom(1)
	LabelStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true).Width(12)
	ValueStyle = lipgloss.NewStyle().Foreground(fgColor)
	LinkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA")).Underline(true)
	TagStyle   = lipgloss.NewStyle().Foreground(primaryColor)

	// Mode badges in the header
	BadgeStyle     = lipgloss.NewStyle().Foreground(fgColor).Background(mutedColor).Padding(0, 1)
	BookmarksBadge = lipgloss.NewStyle().Foreground(fgColor).Background(accentColor).Bold(true).Padding(0, 1)
	SearchBadge    = lipgloss.NewStyle().Foreground(fgColor).Background(primaryColor).Padding(0, 1)

	// Errors
	ErrorStyle       = lipgloss.NewStyle().Foreground(errorColor)
	ErrorBannerStyle = lipgloss.NewStyle().Foreground(fgColor).Background(errorColor).Padding(0, 1)

	// Help bar
	HelpStyle    = lipgloss.NewStyle().Foreground(mutedColor).MarginTop(1)
	HelpKeyStyle = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)

	// Empty-state text
	EmptyStyle = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
)
