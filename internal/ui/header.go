package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const appTitle = "Get Photos"

// renderHeader renders the title bar and the state of the list.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < 80

	snap := m.snapshot
	parts := []string{bg.Render(appTitle, styles.Logo)}

	if snap.Query.Searching() {
		query := ansi.Truncate(snap.Query.Text, 30, "…")
		parts = append(parts, bg.Render("Search:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%q", query), styles.Text))
	} else {
		parts = append(parts, bg.Render("Recent photos", styles.Text))
	}

	parts = append(parts,
		bg.Render("Page", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", snap.Query.Page), styles.Text),
		bg.Render(fmt.Sprintf("%d", len(snap.Photos)), styles.Text)+bg.Space()+
			bg.Render("photos", styles.MutedText),
	)

	if snap.Loading {
		parts = append(parts, bg.Render("Loading…", styles.WarningText))
	}
	if m.status != "" && !compact {
		parts = append(parts, bg.Render(ansi.Truncate(m.status, 50, "…"), styles.FaintText))
	}

	return styles.Header.Width(m.width).MaxHeight(1).Render(bg.Join(parts, 2))
}

// searchWidth is the input width left after the prompt and button.
func (m Model) searchWidth() int {
	const reserved = 3 + 2 + 10 + 1 // margins and gap, prompt, button, slack
	return max(m.width-reserved, 10)
}

// renderSearchBar renders the search form: the text input and its button.
func (m Model) renderSearchBar() string {
	styles := m.theme.Styles()

	bgColor := m.theme.Background
	if m.focus == focusSearch {
		bgColor = m.theme.FocusBg
	}
	bg := NewBgStyle(bgColor)

	button := styles.Button.Render("Search")
	input := m.search.View()
	gap := max(m.width-2-lipgloss.Width(input)-lipgloss.Width(button), 1)
	line := bg.Space() + input + bg.Spaces(gap) + button + bg.Space()
	return bg.FillLine(line, m.width)
}

// renderFooter renders key hints for the focused component.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	bindings := m.keys.ShortHelp()
	if m.focus == focusSearch {
		bindings = m.keys.FullHelp()[0]
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, bg.Render(h.Key, styles.AccentText)+bg.Space()+bg.Render(h.Desc, styles.MutedText))
	}
	return styles.Footer.Width(m.width).MaxHeight(1).Render(bg.Join(parts, 3))
}
