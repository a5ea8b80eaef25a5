package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/getphotos/internal/unsplash"
)

// Query is the search text and page a fetch is issued for.
type Query struct {
	Text string
	Page int
}

// Searching reports whether the query carries search text.
func (q Query) Searching() bool {
	return q.Text != ""
}

// Fresh reports whether the query is the first page of a search, whose
// results replace the list instead of extending it.
func (q Query) Fresh() bool {
	return q.Searching() && q.Page == 1
}

// Request is a Query stamped with the generation it was issued under. The
// merge is decided from the Request alone, never from the store's current query.
type Request struct {
	Query      Query
	Generation uint64
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Query               Query
	Photos              []unsplash.Photo
	Generation          uint64 // latest issued
	Loading             bool   // latest issued request has not resolved yet
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// Store holds the query state and the accumulated result list.
type Store struct {
	mu          sync.RWMutex
	query       Query
	photos      []unsplash.Photo
	generation  uint64
	resolved    uint64
	lastUpdated time.Time
	lastError   error
	failures    int
}

// Current returns the query the latest request was issued for. Before any
// request it is page 1 with no search text.
func (s *Store) Current() Query {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentLocked()
}

func (s *Store) currentLocked() Query {
	q := s.query
	if q.Page < 1 {
		q.Page = 1
	}
	return q
}

// Issue makes q the current query and returns it under a new generation.
// Any request issued earlier becomes stale.
func (s *Store) Issue(q Query) Request {
	if q.Page < 1 {
		q.Page = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.query = q
	return Request{Query: q, Generation: s.generation}
}

// Apply merges photos into the result list when req is the latest request.
// A fresh search replaces the list; every other page appends. Stale responses
// are dropped and Apply returns false.
func (s *Store) Apply(req Request, photos []unsplash.Photo) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Generation != s.generation {
		return false
	}

	if req.Query.Fresh() {
		s.photos = clonePhotos(photos)
	} else {
		s.photos = append(s.photos, photos...)
	}
	s.resolved = req.Generation
	s.lastError = nil
	s.lastUpdated = time.Now()
	s.failures = 0
	return true
}

// Fail records err for req. The result list is left exactly as it was.
// Failures of stale requests are dropped and Fail returns false.
func (s *Store) Fail(req Request, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Generation != s.generation {
		return false
	}
	s.resolved = req.Generation
	s.lastError = err
	s.lastUpdated = time.Now()
	s.failures++
	return true
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Query:               s.currentLocked(),
		Photos:              clonePhotos(s.photos),
		Generation:          s.generation,
		Loading:             s.generation > s.resolved,
		LastUpdated:         s.lastUpdated,
		ConsecutiveFailures: s.failures,
	}
	if s.lastError != nil {
		snap.LastError = fmt.Errorf("%w", s.lastError)
	}
	return snap
}

func clonePhotos(photos []unsplash.Photo) []unsplash.Photo {
	if len(photos) == 0 {
		return nil
	}
	dup := make([]unsplash.Photo, len(photos))
	copy(dup, photos)
	return dup
}
