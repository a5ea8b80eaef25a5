package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/getphotos/internal/config"
	"github.com/five82/getphotos/internal/unsplash"
)

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/photos", func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		fmt.Fprintf(w, `[{"id":"r%s","user":{"name":"Recent %s"},"urls":{"full":"https://img/r%s"}}]`, page, page, page)
	})
	mux.HandleFunc("/search/photos", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		fmt.Fprintf(w, `{"total":1,"total_pages":1,"results":[{"id":"s","user":{"username":"%s"},"urls":{"regular":"https://img/%s/%s"}}]}`,
			q.Get("query"), q.Get("query"), q.Get("page"))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func writeConfig(t *testing.T, apiBase, accessKey string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := fmt.Sprintf("api_base = %q\naccess_key = %q\nlog_path = %q\n", apiBase, accessKey, filepath.Join(dir, "getphotos.log"))
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestFetch_ListAndSearchPrintNameAndURL(t *testing.T) {
	t.Setenv(config.AccessKeyEnv, "")
	server := newAPI(t)
	cfgPath := writeConfig(t, server.URL, "key")

	cases := []struct {
		name  string
		query string
		page  int
		want  string
	}{
		{"list first page", "", 0, "Recent 1\thttps://img/r1\n"},
		{"list later page", "", 3, "Recent 3\thttps://img/r3\n"},
		{"search trims text", "  cats ", 1, "cats\thttps://img/cats/1\n"},
		{"search later page", "cats", 2, "cats\thttps://img/cats/2\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := Fetch(context.Background(), FetchOptions{
				Options: Options{ConfigPath: cfgPath},
				Query:   tc.query,
				Page:    tc.page,
				Out:     &out,
			})
			if err != nil {
				t.Fatalf("Fetch returned error: %v", err)
			}
			if diff := cmp.Diff(tc.want, out.String()); diff != "" {
				t.Fatalf("output (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFetch_BlankQueryRejected(t *testing.T) {
	err := Fetch(context.Background(), FetchOptions{Query: "   "})
	if !errors.Is(err, ErrEmptyQuery) {
		t.Fatalf("Fetch error = %v, want ErrEmptyQuery", err)
	}
}

func TestFetch_MissingAccessKey(t *testing.T) {
	t.Setenv(config.AccessKeyEnv, "")
	cfgPath := writeConfig(t, "https://api.unsplash.com", "")

	err := Fetch(context.Background(), FetchOptions{Options: Options{ConfigPath: cfgPath}})
	if !errors.Is(err, config.ErrMissingAccessKey) {
		t.Fatalf("Fetch error = %v, want ErrMissingAccessKey", err)
	}
}

func TestFetch_RequestFailureIsReturned(t *testing.T) {
	t.Setenv(config.AccessKeyEnv, "")
	server := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(server.Close)
	cfgPath := writeConfig(t, server.URL, "key")

	var out, logs bytes.Buffer
	err := Fetch(context.Background(), FetchOptions{
		Options: Options{ConfigPath: cfgPath},
		Out:     &out,
		Log:     &logs,
	})
	if !errors.Is(err, unsplash.ErrRequestFailed) {
		t.Fatalf("Fetch error = %v, want ErrRequestFailed", err)
	}
	if out.Len() != 0 {
		t.Fatalf("output = %q, want nothing on failure", out.String())
	}
	if !bytes.Contains(logs.Bytes(), []byte("photo fetch failed")) {
		t.Fatalf("diagnostics = %q, want the failure logged", logs.String())
	}
}
