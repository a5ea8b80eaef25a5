package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestOpenFile_WritesJSONLinesWithComponent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "getphotos.log")

	logger, closer, err := OpenFile(path, Options{})
	if err != nil {
		t.Fatalf("OpenFile returned error: %v", err)
	}
	gallery := Component(logger, "gallery")
	gallery.Error().Int("page", 2).Msg("photo fetch failed")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, data)
	}
	if entry["component"] != "gallery" || entry["message"] != "photo fetch failed" || entry["level"] != "error" {
		t.Fatalf("entry = %v, want component/message/level fields", entry)
	}
	if entry["page"] != float64(2) {
		t.Fatalf("page = %v, want 2", entry["page"])
	}
}

func TestLevel_DebugFromOptionOrEnv(t *testing.T) {
	if got := level(Options{Debug: true}); got != zerolog.DebugLevel {
		t.Fatalf("level(Debug) = %v, want debug", got)
	}
	t.Setenv(DebugEnv, "1")
	if got := level(Options{}); got != zerolog.DebugLevel {
		t.Fatalf("level with %s set = %v, want debug", DebugEnv, got)
	}
}

func TestConsole_WritesReadableLines(t *testing.T) {
	var buf bytes.Buffer
	logger := Console(&buf, Options{})
	logger.Info().Msg("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("console output = %q, want message", buf.String())
	}
}
