package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette used by the markup tags. Every color adapts to light and dark
// terminals.
var (
	HeadingColor = lipgloss.AdaptiveColor{Light: "#212529", Dark: "#F8F9FA"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#ADB5BD"}
	PathColor    = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#A0A8B0"}

	SuccessColor = lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFD54F"}
	InfoColor    = lipgloss.AdaptiveColor{Light: "#17A2B8", Dark: "#4DD0E1"}

	// matched item, its template and the addresses it goes to
	ItemColor      = lipgloss.AdaptiveColor{Light: "#0EA5E9", Dark: "#38BDF8"}
	TemplateColor  = lipgloss.AdaptiveColor{Light: "#8B5CF6", Dark: "#A78BFA"}
	RecipientColor = lipgloss.AdaptiveColor{Light: "#10B981", Dark: "#34D399"}
)
