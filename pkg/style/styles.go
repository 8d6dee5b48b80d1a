package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles for the sections of check, match, render and send output.
var (
	TitleStyle    = lipgloss.NewStyle().Foreground(HeadingColor).Bold(true).MarginBottom(1)
	SubtitleStyle = lipgloss.NewStyle().Foreground(HeadingColor).Bold(true)
	MutedStyle    = lipgloss.NewStyle().Foreground(MutedColor)
	PathStyle     = lipgloss.NewStyle().Foreground(PathColor).Italic(true)

	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
	InfoStyle    = lipgloss.NewStyle().Foreground(InfoColor)

	ItemStyle      = lipgloss.NewStyle().Foreground(ItemColor).Bold(true)
	TemplateStyle  = lipgloss.NewStyle().Foreground(TemplateColor)
	RecipientStyle = lipgloss.NewStyle().Foreground(RecipientColor)
)

// tagStyles maps each markup tag the output composers emit to its style.
func tagStyles() map[string]lipgloss.Style {
	return map[string]lipgloss.Style{
		"title":    TitleStyle,
		"subtitle": SubtitleStyle,
		"muted":    MutedStyle,
		"path":     PathStyle,
		"success":  SuccessStyle,
		"error":    ErrorStyle,
		"warning":  WarningStyle,
		"info":     InfoStyle,

		"item":      ItemStyle,
		"template":  TemplateStyle,
		"recipient": RecipientStyle,
	}
}
