package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/flightdeck/internal/cli"
	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		cli.FormatTitle("Flight Data Dashboard"),
		m.input.View(),
	}

	if m.filters != nil && m.state != StateHistory {
		sections = append(sections, cli.SubtleStyle.Render(m.filters.Summary()))
	}

	switch m.state {
	case StateLoading:
		sections = append(sections, m.spinner.View()+" "+cli.InfoStyle.Render(m.status))
	case StateResults:
		sections = append(sections, m.renderResults())
	case StateHistory:
		sections = append(sections, cli.BoldStyle.Render("Recent queries"), m.history.View())
	}

	if text := m.errorText(); text != "" {
		sections = append(sections, cli.FormatError(text))
	}

	sections = append(sections, m.help.View(helpKeys{keys: m.keymap, state: m.state}))

	return lipgloss.NewStyle().Padding(0, 1).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

func (m Model) renderResults() string {
	if len(m.page.Items) == 0 {
		return cli.FormatWarning("No flights match these filters.")
	}

	pos := fmt.Sprintf("Page %d · %d flights", m.pageNum, m.page.Count)
	var nav []string
	if m.pager != nil && m.pager.HasPrevious() {
		nav = append(nav, "← previous")
	}
	if m.page.HasNext() {
		nav = append(nav, "next →")
	}
	if len(nav) > 0 {
		pos += " · " + strings.Join(nav, " ")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.results.View(),
		cli.SubtleStyle.Render(pos),
	)
}
