package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/DCRepairCenter/sysstatus/internal/ui"
)

// Style variables for the watch dashboard.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle        lipgloss.Style
	titleStyle        lipgloss.Style
	labelStyle        lipgloss.Style
	valueStyle        lipgloss.Style
	okValueStyle      lipgloss.Style
	warnValueStyle    lipgloss.Style
	critValueStyle    lipgloss.Style
	cpuSparklineStyle lipgloss.Style
	memSparklineStyle lipgloss.Style
	flagOnStyle       lipgloss.Style
	flagOffStyle      lipgloss.Style
	statusPausedStyle lipgloss.Style
	errorStyle        lipgloss.Style
	footerStyle       lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all dashboard styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	labelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	valueStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	okValueStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	warnValueStyle = lipgloss.NewStyle().
		Foreground(t.Warning).
		Bold(true)

	critValueStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	cpuSparklineStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	memSparklineStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	flagOnStyle = lipgloss.NewStyle().
		Foreground(t.Warning).
		Bold(true)

	flagOffStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	statusPausedStyle = lipgloss.NewStyle().
		Foreground(t.Warning).
		Bold(true)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	footerStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}

// percentStyle picks a severity style for a 0-100 value.
func percentStyle(v float64) lipgloss.Style {
	switch {
	case v >= 90:
		return critValueStyle
	case v >= 70:
		return warnValueStyle
	default:
		return okValueStyle
	}
}
