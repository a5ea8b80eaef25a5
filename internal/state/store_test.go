package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/getphotos/internal/unsplash"
)

func photo(url, name string) unsplash.Photo {
	return unsplash.Photo{URLs: unsplash.PhotoURLs{Regular: url}, User: unsplash.User{Name: name}}
}

func TestQuery_SearchingAndFresh(t *testing.T) {
	cases := []struct {
		q         Query
		searching bool
		fresh     bool
	}{
		{Query{Page: 1}, false, false},
		{Query{Page: 3}, false, false},
		{Query{Text: "cat", Page: 1}, true, true},
		{Query{Text: "cat", Page: 2}, true, false},
	}
	for _, tc := range cases {
		if got := tc.q.Searching(); got != tc.searching {
			t.Errorf("%+v.Searching() = %v, want %v", tc.q, got, tc.searching)
		}
		if got := tc.q.Fresh(); got != tc.fresh {
			t.Errorf("%+v.Fresh() = %v, want %v", tc.q, got, tc.fresh)
		}
	}
}

func TestStore_ZeroValueStartsAtPageOne(t *testing.T) {
	var s Store
	if got := s.Current(); got != (Query{Page: 1}) {
		t.Fatalf("Current() = %+v, want page 1 with no text", got)
	}
	snap := s.Snapshot()
	if snap.Loading || snap.Photos != nil || snap.LastError != nil {
		t.Fatalf("zero snapshot = %+v, want empty", snap)
	}
}

func TestStore_BrowsingAppendsInFetchOrder(t *testing.T) {
	var s Store

	pages := [][]unsplash.Photo{
		{photo("a.jpg", "Al")},
		{photo("b.jpg", "Bea"), photo("c.jpg", "Cy")},
		{},
		{photo("d.jpg", "Di")},
	}

	var want []unsplash.Photo
	prevLen := 0
	for i, page := range pages {
		req := s.Issue(Query{Page: i + 1})
		if !s.Apply(req, page) {
			t.Fatalf("Apply(page %d) = false, want true", i+1)
		}
		want = append(want, page...)
		got := s.Snapshot().Photos
		if len(got) < prevLen {
			t.Fatalf("list shrank from %d to %d", prevLen, len(got))
		}
		prevLen = len(got)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("after page %d (-want +got):\n%s", i+1, diff)
		}
	}
}

func TestStore_FreshSearchReplacesThenAppends(t *testing.T) {
	var s Store

	s.Apply(s.Issue(Query{Page: 1}), []unsplash.Photo{photo("a.jpg", "Al")})

	req := s.Issue(Query{Text: "cat", Page: 1})
	s.Apply(req, []unsplash.Photo{photo("c.jpg", "Bo")})
	want := []unsplash.Photo{photo("c.jpg", "Bo")}
	if diff := cmp.Diff(want, s.Snapshot().Photos); diff != "" {
		t.Fatalf("fresh search (-want +got):\n%s", diff)
	}

	req = s.Issue(Query{Text: "cat", Page: 2})
	s.Apply(req, []unsplash.Photo{photo("d.jpg", "Cy")})
	want = []unsplash.Photo{photo("c.jpg", "Bo"), photo("d.jpg", "Cy")}
	if diff := cmp.Diff(want, s.Snapshot().Photos); diff != "" {
		t.Fatalf("search page 2 (-want +got):\n%s", diff)
	}
}

func TestStore_StaleResponseIsDiscarded(t *testing.T) {
	var s Store

	slow := s.Issue(Query{Text: "cat", Page: 1})
	fast := s.Issue(Query{Text: "dog", Page: 1})

	if !s.Apply(fast, []unsplash.Photo{photo("dog.jpg", "Di")}) {
		t.Fatalf("Apply(latest) = false, want true")
	}
	if s.Apply(slow, []unsplash.Photo{photo("cat.jpg", "Ca")}) {
		t.Fatalf("Apply(stale) = true, want false")
	}
	if s.Fail(slow, errors.New("late")) {
		t.Fatalf("Fail(stale) = true, want false")
	}

	snap := s.Snapshot()
	want := []unsplash.Photo{photo("dog.jpg", "Di")}
	if diff := cmp.Diff(want, snap.Photos); diff != "" {
		t.Fatalf("photos (-want +got):\n%s", diff)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
}

func TestStore_FailKeepsPreviousData(t *testing.T) {
	var s Store

	s.Apply(s.Issue(Query{Page: 1}), []unsplash.Photo{photo("a.jpg", "Al")})
	prev := s.Snapshot()

	before := time.Now()
	origErr := errors.New("boom")
	req := s.Issue(Query{Page: 2})
	if !s.Snapshot().Loading {
		t.Fatalf("Loading = false while request pending, want true")
	}
	s.Fail(req, origErr)

	snap := s.Snapshot()
	if diff := cmp.Diff(prev.Photos, snap.Photos); diff != "" {
		t.Fatalf("photos changed on error (-want +got):\n%s", diff)
	}
	if snap.Loading {
		t.Fatalf("Loading = true after failure, want false")
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
	if snap.Query.Page != 2 {
		t.Fatalf("Query.Page = %d, want 2 (page advance is not rolled back)", snap.Query.Page)
	}
}

func TestStore_ConsecutiveFailuresResetOnSuccess(t *testing.T) {
	var s Store

	s.Fail(s.Issue(Query{Page: 1}), errors.New("fail 1"))
	s.Fail(s.Issue(Query{Page: 2}), errors.New("fail 2"))
	if got := s.Snapshot().ConsecutiveFailures; got != 2 {
		t.Fatalf("ConsecutiveFailures = %d, want 2", got)
	}

	s.Apply(s.Issue(Query{Page: 3}), nil)
	if got := s.Snapshot().ConsecutiveFailures; got != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0 after success", got)
	}
}

func TestStore_SnapshotClonesPhotos(t *testing.T) {
	var s Store
	s.Apply(s.Issue(Query{Page: 1}), []unsplash.Photo{photo("a.jpg", "Al")})

	snap := s.Snapshot()
	snap.Photos[0].User.Name = "changed"
	if got := s.Snapshot().Photos[0].User.Name; got != "Al" {
		t.Fatalf("Snapshot should clone photos; got name %q want Al", got)
	}
}
