package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/five82/getphotos/internal/unsplash"
)

// columnCount returns the number of cards per row.
func (m Model) columnCount() int {
	if m.columns > 0 {
		return m.columns
	}
	return autoColumns(m.width)
}

func autoColumns(width int) int {
	return min(max(width/CardMinWidth, 1), MaxColumns)
}

// refreshGrid re-renders the grid content from the snapshot.
func (m *Model) refreshGrid() {
	if !m.ready {
		return
	}
	m.grid.SetContent(m.renderGridContent())
}

// renderGridContent lays the photos out in rows of cards. Every row is
// CardHeight lines, so row r starts at line r*CardHeight.
func (m Model) renderGridContent() string {
	photos := m.snapshot.Photos
	if len(photos) == 0 {
		return m.renderEmpty()
	}

	cols := m.columnCount()
	cardWidth := max(m.width/cols, 6)

	rows := make([]string, 0, (len(photos)+cols-1)/cols)
	for start := 0; start < len(photos); start += cols {
		end := min(start+cols, len(photos))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(photos[i], cardWidth, i == m.selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderEmpty() string {
	styles := m.theme.Styles()
	msg := "No photos"
	if m.snapshot.Generation == 0 || m.snapshot.Loading {
		msg = "Loading photos…"
	}
	return lipgloss.Place(m.grid.Width, m.grid.Height, lipgloss.Center, lipgloss.Center,
		styles.MutedText.Render(msg))
}

// renderCard draws one photo: a swatch in the photo's dominant color labeled
// with the uploader, then the caption and a download link.
func (m Model) renderCard(photo unsplash.Photo, width int, selected bool) string {
	styles := m.theme.Styles()
	inner := width - 2

	swatchBg := m.theme.SwatchColor(photo.Color)
	label := uploaderName(photo)
	swatch := lipgloss.NewStyle().
		Width(inner).
		Height(swatchHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Background(lipgloss.Color(swatchBg)).
		Foreground(lipgloss.Color(contrastText(swatchBg))).
		Render(ansi.Truncate(label, max(inner-2, 1), "…"))

	footer := m.renderCardFooter(photo, inner, styles)

	card := styles.Card
	if selected {
		card = styles.SelectedCard
	}
	return card.Render(lipgloss.JoinVertical(lipgloss.Left, swatch, footer))
}

// renderCardFooter puts the caption on the left and the download link on
// the right of a single row.
func (m Model) renderCardFooter(photo unsplash.Photo, width int, styles Styles) string {
	glyph := downloadGlyph
	link := styles.AccentText.Render(glyph)
	if url := photo.DownloadURL(); url != "" {
		link = termenv.Hyperlink(url, link)
	}

	caption := ansi.Truncate(photo.Caption(), max(width-2, 0), "…")
	gap := max(width-ansi.StringWidth(caption)-ansi.StringWidth(glyph), 0)
	return styles.MutedText.Render(caption) + strings.Repeat(" ", gap) + link
}

// uploaderName prefers the display name over the handle.
func uploaderName(photo unsplash.Photo) string {
	if name := strings.TrimSpace(photo.User.Name); name != "" {
		return name
	}
	return strings.TrimSpace(photo.User.Username)
}
