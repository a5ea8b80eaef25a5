package ui

// Screen chrome: header bar, search form, footer.
const chromeLines = 3

// Card geometry.
const (
	// CardMinWidth is the narrowest card, border included, used to pick the
	// automatic column count.
	CardMinWidth = 28

	// CardHeight is the height of every card, border included: a three row
	// swatch and one row for the uploader and download link.
	CardHeight = 6

	swatchHeight = 3

	// MaxColumns caps manual column counts.
	MaxColumns = 8
)

// DiagnosticsLines is how many trailing log lines the overlay shows.
const DiagnosticsLines = 200

// downloadGlyph marks the download hyperlink on each card.
const downloadGlyph = "⤓"
