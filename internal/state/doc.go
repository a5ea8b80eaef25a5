// Package state holds the query state and the accumulated result list that
// the fetch controller mutates and the UI renders.
//
// # Overview
//
// A Store carries three things:
//
//   - the current Query (search text and page number)
//   - the Result List, the ordered photos shown in the grid
//   - a generation counter that stamps every issued Request
//
// # Request Lifecycle
//
//	req := store.Issue(state.Query{Text: "cat", Page: 1})
//	photos, err := client.Fetch(ctx, req.Query.Text, req.Query.Page)
//	if err != nil {
//		store.Fail(req, err)  // list unchanged
//		return
//	}
//	store.Apply(req, photos)  // merge, or drop when stale
//
// Issue bumps the generation, so any response still in flight for an older
// request is discarded when it arrives. This restores response ordering
// without cancelling requests at the network layer.
//
// # Merge Policy
//
// Apply decides from the Request alone, never from the store's current query:
//
//	Text != "" && Page == 1  → replace the list
//	Text != "" && Page > 1   → append
//	Text == ""               → append
//
// # Concurrency Model
//
// The Store uses a readers-writer lock. Issue, Apply and Fail take the write
// lock; Current and Snapshot take the read lock. The lock is never held during
// network I/O or rendering.
//
// # Defensive Copying
//
// Snapshot clones the photo slice and wraps the last error, so the UI can hold
// a snapshot while later responses are merged.
//
// # Testing Considerations
//
// The zero value is ready to use:
//
//	store := &state.Store{}
//	store.Current() // Query{Page: 1}
package state
