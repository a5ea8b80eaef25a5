// Package ui provides the Bubble Tea terminal interface for getphotos.
//
// # Layout
//
// The screen is four stacked regions:
//
//   - Header bar: the "Get Photos" title, the current query, page and photo count
//   - Search form: a text input for the search text and a Search button
//   - Grid: a scrollable viewport of photo cards, columns sized to the terminal
//   - Footer: key hints for the focused component
//
// Each card draws a swatch in the photo's dominant color labeled with the
// uploader name, the caption, and an OSC-8 hyperlink to the full image. Help and the diagnostic log are
// full-screen overlays.
//
// # Data Flow
//
// The model never fetches directly. Key and mouse input become requests on a
// gallery.Controller, the fetch runs as a tea.Cmd, and the resulting
// pageLoadedMsg is committed to the store inside Update. The view renders
// from the latest state.Snapshot plus local state: cursor, scroll offset and
// the input's cursor position. Every edit that changes the search text
// refetches at the current page; enter restarts the search at page 1.
//
// # Infinite Scroll
//
// Every scroll movement feeds the grid's height, offset and content height to
// a scroll.Sensor. When it fires the controller advances the page, and the
// sensor stays disarmed until the latest request resolves. While a request is
// outstanding no further page is requested.
//
// # Files
//
//   - app.go: Model, Update and key handling
//   - grid.go: card and grid rendering
//   - header.go: header, search form and footer
//   - help.go, diagnostics.go: overlays
//   - theme.go, style_helpers.go: colors and lipgloss styles
//   - keys.go: key bindings
//   - commands.go: messages and tea.Cmd constructors
package ui
