// Package tui implements the live watch dashboard built on bubbletea.
// The dashboard polls the monitor at a fixed interval and renders CPU and
// memory history sparklines alongside the fullscreen and meeting indicators.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DCRepairCenter/sysstatus/internal/cli"
	"github.com/DCRepairCenter/sysstatus/internal/config"
	apperrors "github.com/DCRepairCenter/sysstatus/internal/errors"
)

// Layout constants for the watch dashboard.
const (
	// defaultHistoryLen is the sparkline history length used before the first
	// WindowSizeMsg arrives.
	defaultHistoryLen = 60
	// minHistoryLen is the smallest history the dashboard keeps on narrow
	// terminals.
	minHistoryLen = 10
	// panelChromeWidth accounts for the panel border, padding, and the value
	// column next to the sparkline.
	panelChromeWidth = 12
)

// TickMsg drives the periodic sampling loop.
type TickMsg time.Time

// sampleMsg carries one completed status snapshot into the update loop.
type sampleMsg struct {
	report cli.StatusReport
}

// sampleErrMsg reports a failed snapshot. The dashboard keeps running and
// shows the error until the next successful sample.
type sampleErrMsg struct {
	err error
}

// contextCancelledMsg signals that the parent context was cancelled.
type contextCancelledMsg struct{}

// Model is the root bubbletea model for the watch dashboard.
type Model struct {
	src      cli.StatusSource
	interval time.Duration
	version  string

	keymap KeyMap
	help   help.Model

	cpuHist    *RingBuffer
	memHist    *RingBuffer
	fullscreen bool
	meeting    bool
	samples    int
	lastErr    error

	paused    bool
	startTime time.Time
	width     int
	height    int

	ctx      context.Context
	cancel   context.CancelFunc
	exitCode int
}

// NewModel creates a new dashboard model polling src every interval.
func NewModel(parentCtx context.Context, src cli.StatusSource, cfg config.AppConfig, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)
	return Model{
		src:       src,
		interval:  cfg.Interval,
		version:   version,
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		cpuHist:   NewRingBuffer(defaultHistoryLen),
		memHist:   NewRingBuffer(defaultHistoryLen),
		startTime: time.Now(),
		ctx:       ctx,
		cancel:    cancel,
		exitCode:  apperrors.ExitSuccess,
	}
}

// Init returns the initial commands: take a first sample immediately and
// start the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		sampleCmd(m.ctx, m.src),
		tickCmd(m.interval),
		watchContextCmd(m.ctx),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeHistory()
		return m, nil

	case TickMsg:
		if m.paused {
			return m, tickCmd(m.interval)
		}
		return m, tea.Batch(sampleCmd(m.ctx, m.src), tickCmd(m.interval))

	case sampleMsg:
		m.cpuHist.Push(msg.report.CPUPercent)
		m.memHist.Push(msg.report.MemoryPercent)
		m.fullscreen = msg.report.Fullscreen
		m.meeting = msg.report.Meeting
		m.samples++
		m.lastErr = nil
		return m, nil

	case sampleErrMsg:
		m.lastErr = msg.err
		return m, nil

	case contextCancelledMsg:
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused
		return m, nil

	case key.Matches(msg, m.keymap.Refresh):
		// Manual sample works even while paused.
		return m, sampleCmd(m.ctx, m.src)

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := m.renderHeader()
	cpu := m.renderUsagePanel("CPU", m.cpuHist, cpuSparklineStyle)
	mem := m.renderUsagePanel("Memory", m.memHist, memSparklineStyle)
	flags := m.renderFlags()
	footer := footerStyle.Render(m.help.View(m.keymap))

	sections := []string{header, cpu, mem, flags}
	if m.lastErr != nil {
		sections = append(sections, errorStyle.Render("sample failed: "+m.lastErr.Error()))
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	elapsed := time.Since(m.startTime).Round(time.Second)
	title := titleStyle.Render("sysstatus " + m.version)
	info := labelStyle.Render(fmt.Sprintf("  %s  %d samples", elapsed, m.samples))
	if m.paused {
		return title + info + statusPausedStyle.Render("  [PAUSED]")
	}
	return title + info
}

func (m Model) renderUsagePanel(name string, hist *RingBuffer, sparkStyle lipgloss.Style) string {
	current := hist.Latest()
	line := fmt.Sprintf("%s %s  %s",
		labelStyle.Render(fmt.Sprintf("%-7s", name)),
		percentStyle(current).Render(fmt.Sprintf("%5.1f%%", current)),
		sparkStyle.Render(RenderSparkline(hist.Values())))
	return panelStyle.Render(line)
}

func (m Model) renderFlags() string {
	return fmt.Sprintf("  %s %s    %s %s",
		labelStyle.Render("Fullscreen"), renderFlag(m.fullscreen),
		labelStyle.Render("Meeting"), renderFlag(m.meeting))
}

func renderFlag(v bool) string {
	if v {
		return flagOnStyle.Render("yes")
	}
	return flagOffStyle.Render("no")
}

// resizeHistory adapts the sparkline history to the terminal width so the
// line fills the panel without wrapping.
func (m *Model) resizeHistory() {
	n := m.width - panelChromeWidth
	if n < minHistoryLen {
		n = minHistoryLen
	}
	m.cpuHist.Resize(n)
	m.memHist.Resize(n)
}

// Run is the public entry point for the watch mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, src cli.StatusSource, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, src, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// sampleCmd gathers one status snapshot off the UI thread.
func sampleCmd(ctx context.Context, src cli.StatusSource) tea.Cmd {
	return func() tea.Msg {
		report, err := cli.GatherStatus(ctx, src)
		if err != nil {
			return sampleErrMsg{err: err}
		}
		return sampleMsg{report: report}
	}
}

// tickCmd returns a command that sends a TickMsg after the poll interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return contextCancelledMsg{}
	}
}
