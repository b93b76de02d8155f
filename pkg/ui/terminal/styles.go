package terminal

import (
	"github.com/arthur-debert/sdcops/pkg/ui/display"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	SuccessColor = lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"}
	InfoColor    = lipgloss.AdaptiveColor{Light: "#17A2B8", Dark: "#4DD0E1"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#ADB5BD"}
	HeadingColor = lipgloss.AdaptiveColor{Light: "#212529", Dark: "#F8F9FA"}
)

var (
	SubjectStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(10).
			PaddingLeft(2)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	AddedStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	RemovedStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	HunkStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	BodyStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)

// StatusStyle returns the badge style for a status
func StatusStyle(status display.Status) *pterm.Style {
	switch status {
	case display.StatusChanged:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case display.StatusOK:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case display.StatusError:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	case display.StatusDryRun:
		return pterm.NewStyle(pterm.BgCyan, pterm.FgBlack)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}
