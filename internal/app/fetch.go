package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/five82/getphotos/internal/logging"
	"github.com/five82/getphotos/internal/state"
	"github.com/five82/getphotos/internal/unsplash"
)

// ErrEmptyQuery is returned when a one-shot search is given blank text.
var ErrEmptyQuery = errors.New("search query is empty")

// FetchOptions describe a single non-interactive page fetch.
type FetchOptions struct {
	Options
	Query string // empty lists recent photos
	Page  int
	Out   io.Writer // one "name<TAB>url" line per photo
	Log   io.Writer // diagnostics
}

// Fetch loads one page through the same controller and merge policy as the
// TUI and prints it.
func Fetch(ctx context.Context, opts FetchOptions) error {
	text := strings.TrimSpace(opts.Query)
	if text == "" && opts.Query != "" {
		return ErrEmptyQuery
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Log == nil {
		opts.Log = io.Discard
	}

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	logger := logging.Console(opts.Log, logging.Options{Debug: opts.Debug})
	_, controller, err := newController(cfg, logger)
	if err != nil {
		return err
	}

	page := max(opts.Page, 1)

	var req state.Request
	switch {
	case page == 1 && text == "":
		req = controller.Start()
	case page == 1:
		req, _ = controller.Submit(text)
	default:
		req = controller.Store().Issue(state.Query{Text: text, Page: page})
	}

	if err := controller.Do(ctx, req); err != nil {
		return fmt.Errorf("fetch page %d: %w", req.Query.Page, err)
	}
	return writePhotos(opts.Out, controller.Store().Snapshot().Photos)
}

func writePhotos(w io.Writer, photos []unsplash.Photo) error {
	for _, p := range photos {
		name := strings.TrimSpace(p.User.Name)
		if name == "" {
			name = p.User.Username
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", name, p.DownloadURL()); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
