// Package gallery drives fetching: it turns user actions into requests,
// issues them against the photo API, and merges the responses into the store.
package gallery

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/five82/getphotos/internal/state"
	"github.com/five82/getphotos/internal/unsplash"
)

// Controller issues requests for query state changes and merges their results.
type Controller struct {
	fetcher unsplash.Fetcher
	store   *state.Store
	log     zerolog.Logger
}

// Result is the outcome of loading one request.
type Result struct {
	Request state.Request
	Photos  []unsplash.Photo
	Err     error
}

// New builds a Controller. A nil store is replaced with an empty one.
func New(fetcher unsplash.Fetcher, store *state.Store, log zerolog.Logger) *Controller {
	if store == nil {
		store = &state.Store{}
	}
	return &Controller{fetcher: fetcher, store: store, log: log}
}

// Store returns the store the controller merges into.
func (c *Controller) Store() *state.Store {
	return c.store
}

// Start issues the first request: page 1 of recent photos.
func (c *Controller) Start() state.Request {
	return c.store.Issue(state.Query{Page: 1})
}

// Type makes text the search text as it is edited and refetches at the
// current page, the way every other query change does. A fresh search
// replaces the list; typing past page 1 or clearing the text back to
// browsing appends. Nothing is issued when text is already current.
func (c *Controller) Type(text string) (state.Request, bool) {
	cur := c.store.Current()
	if text == cur.Text {
		return state.Request{}, false
	}
	return c.store.Issue(state.Query{Text: text, Page: cur.Page}), true
}

// Submit commits text as the search and resets to page 1. The request is
// issued even when the query is already (text, 1). Empty text is a no-op:
// nothing is issued and the state is untouched. Text is sent as given.
func (c *Controller) Submit(text string) (state.Request, bool) {
	if text == "" {
		c.log.Debug().Msg("empty search submitted, ignoring")
		return state.Request{}, false
	}
	return c.store.Issue(state.Query{Text: text, Page: 1}), true
}

// Advance moves to the next page of whatever is currently shown.
func (c *Controller) Advance() state.Request {
	cur := c.store.Current()
	return c.store.Issue(state.Query{Text: cur.Text, Page: cur.Page + 1})
}

// Load fetches the page described by req. It reads nothing from the store.
func (c *Controller) Load(ctx context.Context, req state.Request) Result {
	photos, err := c.fetcher.Fetch(ctx, req.Query.Text, req.Query.Page)
	return Result{Request: req, Photos: photos, Err: err}
}

// Commit merges res into the store. Failures are logged and recorded but the
// result list is left unchanged. It reports whether the list was updated.
func (c *Controller) Commit(res Result) bool {
	req := res.Request
	logger := c.log.With().
		Str("query", req.Query.Text).
		Int("page", req.Query.Page).
		Uint64("generation", req.Generation).
		Logger()

	if res.Err != nil {
		if !c.store.Fail(req, res.Err) {
			logger.Debug().Err(res.Err).Msg("stale request failed")
			return false
		}
		logger.Error().Err(res.Err).Msg("photo fetch failed")
		return false
	}

	if !c.store.Apply(req, res.Photos) {
		logger.Debug().Int("photos", len(res.Photos)).Msg("discarding stale response")
		return false
	}
	logger.Debug().Int("photos", len(res.Photos)).Bool("replaced", req.Query.Fresh()).Msg("merged page")
	return true
}

// Do loads and commits req synchronously, returning the fetch error if any.
func (c *Controller) Do(ctx context.Context, req state.Request) error {
	res := c.Load(ctx, req)
	c.Commit(res)
	return res.Err
}
