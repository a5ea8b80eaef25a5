// Package config loads getphotos configuration from TOML, .env and the environment.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. Read ./.env into the environment (existing variables win)
//  2. Parse the config file: the explicitly provided path, or
//     ~/.config/getphotos/config.toml by default
//  3. If the config file doesn't exist, use defaults
//  4. UNSPLASH_ACCESS_KEY, when set, replaces access_key
//
// # Default Values
//
//   - API base: https://api.unsplash.com
//   - Download directory: ~/Pictures/getphotos
//   - Diagnostic log: ~/.local/state/getphotos/getphotos.log
//
// # TOML Format
//
//	api_base = "https://api.unsplash.com"
//	access_key = "your-unsplash-access-key"
//	download_dir = "~/Pictures/getphotos"
//	log_path = "~/.local/state/getphotos/getphotos.log"
//
// Every field is optional. Tilde expansion is performed for the paths.
//
// # The Access Key
//
// The access key is sent as client_id on every request. Load does not
// require it, but Validate returns ErrMissingAccessKey when it is absent, and
// the application refuses to start without it.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - A .env file that exists but cannot be parsed
package config
