// Package logtail reads the end of the diagnostic log and renders its lines
// for the diagnostics overlay.
//
// # Reading Log Files
//
// Read uses a ring buffer of size maxLines, so it makes a single pass over
// the file and holds at most maxLines in memory:
//
//	lines, err := logtail.Read(cfg.LogPath, 200)
//	if err != nil {
//		return err
//	}
//	for _, line := range logtail.FormatLines(lines) {
//		fmt.Println(line)
//	}
//
// A missing file is not an error; it simply has no lines yet.
//
// # Formatting
//
// The diagnostic log is zerolog JSON. FormatLine turns
//
//	{"level":"error","component":"gallery","page":2,"time":"2026-10-14T09:30:00Z","message":"photo fetch failed"}
//
// into
//
//	09:30:00 ERROR [gallery] photo fetch failed page=2
//
// with the time shown in local time and extra fields sorted by key. Anything
// that is not a JSON object passes through untouched.
package logtail
