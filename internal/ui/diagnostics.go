package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// handleDiagnosticsKey scrolls or closes the diagnostics overlay.
func (m Model) handleDiagnosticsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Diagnostics, m.keys.Cancel, m.keys.Quit) {
		m.showDiagnostics = false
		return m, nil
	}
	if key.Matches(msg, m.keys.Top) {
		m.diagnostics.GotoTop()
		return m, nil
	}
	if key.Matches(msg, m.keys.Bottom) {
		m.diagnostics.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.diagnostics, cmd = m.diagnostics.Update(msg)
	return m, cmd
}

// updateDiagnosticsViewport loads the log tail and follows the newest line.
func (m *Model) updateDiagnosticsViewport() {
	if !m.ready {
		return
	}
	m.diagnostics.SetContent(m.renderDiagnosticsContent())
	m.diagnostics.GotoBottom()
}

func (m Model) renderDiagnosticsContent() string {
	styles := m.theme.Styles()
	if m.diagnosticErr != nil {
		return styles.DangerText.Render("Could not read log: " + m.diagnosticErr.Error())
	}
	if len(m.diagnosticLines) == 0 {
		return styles.MutedText.Render("No log entries yet")
	}

	width := max(m.diagnostics.Width, 1)
	lines := make([]string, 0, len(m.diagnosticLines))
	for _, line := range m.diagnosticLines {
		lines = append(lines, m.levelStyle(line).Render(ansi.Truncate(line, width, "…")))
	}
	return strings.Join(lines, "\n")
}

// levelStyle colors a formatted log line by its level column.
func (m Model) levelStyle(line string) lipgloss.Style {
	styles := m.theme.Styles()
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return styles.Text
	}
	switch fields[1] {
	case "ERROR", "FATAL", "PANIC":
		return styles.DangerText
	case "WARN":
		return styles.WarningText
	case "DEBUG", "TRACE":
		return styles.FaintText
	default:
		return styles.Text
	}
}

// renderDiagnostics renders the diagnostic log overlay.
func (m Model) renderDiagnostics() string {
	styles := m.theme.Styles()

	title := styles.AccentText.Bold(true).Render("Diagnostic log")
	if m.logPath != "" {
		title += "  " + styles.FaintText.Render(ansi.Truncate(m.logPath, max(m.width-24, 10), "…"))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Width(max(m.width-2, 1))

	hint := styles.MutedText.Render("L/esc close  j/k scroll  g/G top/bottom")
	return title + "\n" + box.Render(m.diagnostics.View()) + "\n" + hint
}
