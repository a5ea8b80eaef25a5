package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/five82/getphotos/internal/app"
	"github.com/five82/getphotos/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		cfgFile, prefsFile, debug = "", "", false
		listPage, searchPage = 1, 1
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func testConfig(t *testing.T) string {
	t.Helper()
	t.Setenv(config.AccessKeyEnv, "")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		switch r.URL.Path {
		case "/photos":
			fmt.Fprintf(w, `[{"id":"a","user":{"name":"Ada"},"urls":{"full":"https://img/a/%s"}}]`, page)
		case "/search/photos":
			fmt.Fprintf(w, `{"results":[{"id":"b","user":{"name":"Bo"},"urls":{"full":"https://img/%s/%s"}}]}`, r.URL.Query().Get("query"), page)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := fmt.Sprintf("api_base = %q\naccess_key = \"key\"\nlog_path = %q\n", server.URL, filepath.Join(dir, "log"))
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestListCommand(t *testing.T) {
	cfgPath := testConfig(t)
	out, err := execute(t, "list", "--config", cfgPath, "--page", "2")
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if out != "Ada\thttps://img/a/2\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestSearchCommand_JoinsArgs(t *testing.T) {
	cfgPath := testConfig(t)
	out, err := execute(t, "search", "--config", cfgPath, "northern", "lights")
	if err != nil {
		t.Fatalf("search returned error: %v", err)
	}
	if out != "Bo\thttps://img/northern lights/1\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestSearchCommand_BlankQuery(t *testing.T) {
	_, err := execute(t, "search", "  ")
	if !errors.Is(err, app.ErrEmptyQuery) {
		t.Fatalf("search error = %v, want ErrEmptyQuery", err)
	}
}

func TestSearchCommand_RequiresQuery(t *testing.T) {
	if _, err := execute(t, "search"); err == nil {
		t.Fatalf("search without arguments returned nil error")
	}
}
