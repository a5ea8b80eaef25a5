package ui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/getphotos/internal/gallery"
	"github.com/five82/getphotos/internal/prefs"
	"github.com/five82/getphotos/internal/scroll"
	"github.com/five82/getphotos/internal/state"
	"github.com/five82/getphotos/internal/unsplash"
)

// focus is the component receiving key input.
type focus int

const (
	focusGrid focus = iota
	focusSearch
)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Controller  *gallery.Controller
	HTTPClient  *http.Client
	DownloadDir string
	LogPath     string
	ThemeName   string
	Columns     int
	PrefsPath   string
	Logger      zerolog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx         context.Context
	controller  *gallery.Controller
	store       *state.Store
	sensor      *scroll.Sensor
	httpClient  *http.Client
	downloadDir string
	logPath     string
	prefsPath   string
	log         zerolog.Logger

	// UI state
	theme  Theme
	keys   keyMap
	width  int
	height int
	ready  bool
	focus  focus

	// Data state
	snapshot state.Snapshot

	// Search form; every text change refetches at the current page
	search textinput.Model

	// Grid state
	grid     viewport.Model
	selected int
	columns  int // 0 = sized to the terminal
	status   string

	// Overlays
	showHelp        bool
	showDiagnostics bool
	diagnostics     viewport.Model
	diagnosticLines []string
	diagnosticErr   error
}

// New creates a new Bubble Tea model. opts.Controller must be set.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	controller := opts.Controller

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	ti := textinput.New()
	ti.Placeholder = "Search your pic.."
	ti.Prompt = "› "
	ti.CharLimit = 200

	columns := max(opts.Columns, 0)
	columns = min(columns, MaxColumns)

	return Model{
		ctx:         ctx,
		controller:  controller,
		store:       controller.Store(),
		sensor:      scroll.NewSensor(scroll.DefaultThreshold),
		httpClient:  opts.HTTPClient,
		downloadDir: opts.DownloadDir,
		logPath:     opts.LogPath,
		prefsPath:   prefsPath,
		log:         opts.Logger,
		theme:       GetTheme(opts.ThemeName),
		keys:        DefaultKeyMap(),
		search:      ti,
		columns:     columns,
		snapshot:    controller.Store().Snapshot(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.start(), textinput.Blink)
}

// start issues the first page of recent photos.
func (m Model) start() tea.Cmd {
	req := m.controller.Start()
	return loadCmd(m.ctx, m.controller, req)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		cmd := m.resize(msg.Width, msg.Height)
		return m, cmd

	case pageLoadedMsg:
		return m.handlePageLoaded(gallery.Result(msg))

	case downloadDoneMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Str("photo", msg.photoID).Msg("download failed")
			m.status = "Download failed"
		} else {
			m.log.Info().Str("photo", msg.photoID).Str("path", msg.path).Msg("photo downloaded")
			m.status = "Saved " + msg.path
		}
		return m, nil

	case diagnosticsMsg:
		m.diagnosticLines = msg.lines
		m.diagnosticErr = msg.err
		m.updateDiagnosticsViewport()
		return m, nil
	}

	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showDiagnostics {
		return m.renderDiagnostics()
	}
	return m.renderMain()
}

// resize lays the screen out for a new terminal size. The first size
// message activates the view and attaches the scroll sensor. A grid that
// now fits the viewport requests the next page.
func (m *Model) resize(width, height int) tea.Cmd {
	m.width = width
	m.height = height
	gridHeight := max(m.height-chromeLines, 1)

	if !m.ready {
		m.grid = viewport.New(m.width, gridHeight)
		m.diagnostics = viewport.New(max(m.width-4, 1), max(m.height-4, 1))
		m.ready = true
		m.sensor.Attach()
	}
	m.grid.Width = m.width
	m.grid.Height = gridHeight
	m.diagnostics.Width = max(m.width-4, 1)
	m.diagnostics.Height = max(m.height-4, 1)
	m.search.Width = m.searchWidth()

	m.refreshGrid()
	m.ensureSelectionVisible()
	m.updateDiagnosticsViewport()
	return m.observeScroll()
}

// handlePageLoaded merges a fetch result. Only the latest request rearms the
// sensor; a stale result changes nothing.
func (m Model) handlePageLoaded(res gallery.Result) (tea.Model, tea.Cmd) {
	merged := m.controller.Commit(res)
	m.snapshot = m.store.Snapshot()
	if res.Request.Generation != m.snapshot.Generation {
		return m, nil
	}
	m.sensor.Rearm()

	if merged && res.Request.Query.Fresh() {
		m.selected = 0
		m.grid.GotoTop()
	}
	m.clampSelection()
	m.refreshGrid()

	// A list shorter than the viewport cannot be scrolled, so check again
	// while pages keep adding photos.
	if merged && len(res.Photos) > 0 {
		cmd := m.observeScroll()
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.showDiagnostics {
		return m.handleDiagnosticsKey(msg)
	}

	if m.focus == focusSearch {
		return m.handleSearchKey(msg)
	}

	return m.handleGridKey(msg)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.sensor.Detach()
	return m, tea.Quit
}

// handleSearchKey edits the search text or submits it. Every edit that
// changes the text refetches at the current page.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submitSearch()
	case key.Matches(msg, m.keys.Cancel):
		m.focus = focusGrid
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	value := m.search.Value()
	if value == before {
		return m, cmd
	}
	req, ok := m.controller.Type(value)
	if !ok {
		return m, cmd
	}
	m.snapshot = m.store.Snapshot()
	return m, tea.Batch(cmd, loadCmd(m.ctx, m.controller, req))
}

// submitSearch restarts the search at page 1. Empty text is ignored and the form keeps focus.
func (m Model) submitSearch() (tea.Model, tea.Cmd) {
	req, ok := m.controller.Submit(m.search.Value())
	if !ok {
		return m, nil
	}
	m.focus = focusGrid
	m.search.Blur()
	m.status = ""
	m.snapshot = m.store.Snapshot()
	return m, loadCmd(m.ctx, m.controller, req)
}

// handleGridKey processes keys while the grid has focus.
func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := m.columnCount()
	pageCards := max(m.grid.Height/CardHeight, 1) * cols

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Diagnostics):
		m.showDiagnostics = true
		return m, diagnosticsCmd(m.logPath)

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.refreshGrid()
		return m, nil

	case key.Matches(msg, m.keys.FocusSearch):
		m.focus = focusSearch
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Download):
		return m.downloadSelected()

	case key.Matches(msg, m.keys.MoreColumns):
		m.setColumns(cols + 1)
		cmd := m.observeScroll()
		return m, cmd
	case key.Matches(msg, m.keys.FewerColumns):
		m.setColumns(cols - 1)
		cmd := m.observeScroll()
		return m, cmd
	case key.Matches(msg, m.keys.AutoColumns):
		m.setColumns(0)
		cmd := m.observeScroll()
		return m, cmd

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-cols)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(cols)
	case key.Matches(msg, m.keys.Left):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveSelection(-pageCards)
	case key.Matches(msg, m.keys.PageDown):
		m.moveSelection(pageCards)
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
		m.refreshGrid()
		m.grid.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.selected = max(len(m.snapshot.Photos)-1, 0)
		m.refreshGrid()
		m.grid.GotoBottom()
	default:
		return m, nil
	}

	cmd := m.observeScroll()
	return m, cmd
}

// handleMouse scrolls the grid with the wheel.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.ready || m.showHelp {
		return m, nil
	}
	var cmd tea.Cmd
	if m.showDiagnostics {
		m.diagnostics, cmd = m.diagnostics.Update(msg)
		return m, cmd
	}
	m.grid, cmd = m.grid.Update(msg)
	advance := m.observeScroll()
	return m, tea.Batch(cmd, advance)
}

// observeScroll feeds the grid position to the sensor and advances the page
// when it fires. Nothing fires while a request is outstanding.
func (m *Model) observeScroll() tea.Cmd {
	if !m.ready || m.snapshot.Loading || len(m.snapshot.Photos) == 0 {
		return nil
	}
	if !m.sensor.Observe(m.grid.Height, m.grid.YOffset, m.grid.TotalLineCount()) {
		return nil
	}
	req := m.controller.Advance()
	m.snapshot = m.store.Snapshot()
	m.log.Debug().Str("query", req.Query.Text).Int("page", req.Query.Page).Msg("scrolled to bottom")
	return loadCmd(m.ctx, m.controller, req)
}

// moveSelection moves the cursor by delta cards and scrolls it into view.
func (m *Model) moveSelection(delta int) {
	m.selected += delta
	m.clampSelection()
	m.refreshGrid()
	m.ensureSelectionVisible()
}

func (m *Model) clampSelection() {
	n := len(m.snapshot.Photos)
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// ensureSelectionVisible scrolls the grid so the selected card's row is on screen.
func (m *Model) ensureSelectionVisible() {
	if len(m.snapshot.Photos) == 0 {
		return
	}
	top := (m.selected / m.columnCount()) * CardHeight
	bottom := top + CardHeight
	switch {
	case top < m.grid.YOffset:
		m.grid.SetYOffset(top)
	case bottom > m.grid.YOffset+m.grid.Height:
		m.grid.SetYOffset(bottom - m.grid.Height)
	}
}

func (m *Model) setColumns(n int) {
	switch {
	case n <= 0:
		m.columns = 0
	case n > MaxColumns:
		m.columns = MaxColumns
	default:
		m.columns = n
	}
	m.savePrefs()
	m.refreshGrid()
	m.ensureSelectionVisible()
}

func (m *Model) selectedPhoto() (unsplash.Photo, bool) {
	if m.selected < 0 || m.selected >= len(m.snapshot.Photos) {
		return unsplash.Photo{}, false
	}
	return m.snapshot.Photos[m.selected], true
}

func (m Model) downloadSelected() (tea.Model, tea.Cmd) {
	photo, ok := m.selectedPhoto()
	if !ok {
		return m, nil
	}
	m.status = fmt.Sprintf("Downloading %s...", photo.ID)
	return m, downloadCmd(m.ctx, m.httpClient, photo, m.downloadDir)
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Columns: m.columns}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.Warn().Err(err).Str("path", m.prefsPath).Msg("save prefs failed")
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	// Header line 1: title + status
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Header line 2: search form
	b.WriteString(m.renderSearchBar())
	b.WriteString("\n")

	// Main content
	b.WriteString(m.grid.View())
	b.WriteString("\n")

	b.WriteString(m.renderFooter())
	return b.String()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Controller == nil {
		return errors.New("ui: controller is required")
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
