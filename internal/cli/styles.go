package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Adaptive colors matching the runner window palette.
var (
	colorWhite    = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim      = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen    = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed      = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow   = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorOrange   = lipgloss.AdaptiveColor{Light: "166", Dark: "208"}
	colorLavender = lipgloss.AdaptiveColor{Light: "61", Dark: "189"}
)

// Semantic styles for CLI output.
var (
	styleBrand   = lipgloss.NewStyle().Bold(true).Foreground(colorLavender)
	styleVersion = lipgloss.NewStyle().Foreground(colorGreen)
	styleLabel   = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleHint    = lipgloss.NewStyle().Foreground(colorDim)
	styleUpdate  = lipgloss.NewStyle().Bold(true).Foreground(colorOrange)
)

// Process status badge styles.
var (
	badgeRunning = lipgloss.NewStyle().Foreground(colorGreen)
	badgeExited  = lipgloss.NewStyle().Foreground(colorDim)
	badgeFailed  = lipgloss.NewStyle().Foreground(colorRed)
)

// labelLine renders "label: value" with the label column aligned.
func labelLine(label, value string) string {
	return styleLabel.Render(padRight(label+":", 22)) + styleValue.Render(value)
}

// padRight pads s to width terminal cells.
func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func truncate(s string, maxWidth int) string {
	return ansi.Truncate(s, maxWidth, "...")
}
