package ui

import (
	"context"
	"net/http"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/getphotos/internal/download"
	"github.com/five82/getphotos/internal/gallery"
	"github.com/five82/getphotos/internal/logtail"
	"github.com/five82/getphotos/internal/state"
	"github.com/five82/getphotos/internal/unsplash"
)

// Messages

type pageLoadedMsg gallery.Result

type downloadDoneMsg struct {
	photoID string
	path    string
	err     error
}

type diagnosticsMsg struct {
	lines []string
	err   error
}

// Commands

// loadCmd fetches req off the update loop. The merge happens when the
// message comes back, inside Update.
func loadCmd(ctx context.Context, c *gallery.Controller, req state.Request) tea.Cmd {
	return func() tea.Msg {
		return pageLoadedMsg(c.Load(ctx, req))
	}
}

func downloadCmd(ctx context.Context, client *http.Client, photo unsplash.Photo, dir string) tea.Cmd {
	return func() tea.Msg {
		path, err := download.Save(ctx, client, photo, dir)
		return downloadDoneMsg{photoID: photo.ID, path: path, err: err}
	}
}

func diagnosticsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, DiagnosticsLines)
		return diagnosticsMsg{lines: logtail.FormatLines(lines), err: err}
	}
}
