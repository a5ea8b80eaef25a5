// Package app is the composition root for getphotos.
//
// # Overview
//
// Run wires configuration, the diagnostic logger, the Unsplash client, the
// result store and the fetch controller together, then hands them to the
// Bubble Tea UI and blocks until it exits.
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        TOML + .env + UNSPLASH_ACCESS_KEY
//	       ├─────> logging.OpenFile()   JSON diagnostic log
//	       ├─────> unsplash.NewClient() HTTP client
//	       ├─────> gallery.New()        Controller over a fresh state.Store
//	       ├─────> prefs.Load()         Theme and column count
//	       └─────> ui.Run()             Start TUI (blocks)
//
// Fetch is the non-interactive variant behind the list and search commands.
// It loads exactly one page through the same controller and prints it.
//
// # Error Handling
//
// Fatal errors are returned from Run and Fetch:
//   - Configuration file unreadable or invalid
//   - No access key configured (config.ErrMissingAccessKey)
//   - Diagnostic log cannot be opened
//
// A failed page fetch inside the TUI is not fatal. It is logged and the grid
// keeps what it already shows. Fetch returns it to the caller.
package app
