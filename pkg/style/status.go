package style

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Status labels shown next to messages and configuration issues.
type Status string

const (
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
	StatusDryRun  Status = "dry-run"
	StatusSkipped Status = "skipped"
	StatusError   Status = "error"
	StatusWarning Status = "warning"
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusSent:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case StatusFailed, StatusError:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	case StatusWarning:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case StatusDryRun:
		return pterm.NewStyle(pterm.FgCyan)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// Badge renders status padded to a fixed width. Colors are applied only
// when styled is set.
func Badge(status Status, styled bool) string {
	label := fmt.Sprintf(" %-7s ", status)
	if !styled {
		return label
	}
	return StatusStyle(status).Sprint(label)
}
