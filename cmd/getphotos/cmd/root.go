// Package cmd holds the getphotos command tree.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/five82/getphotos/internal/app"
)

var (
	cfgFile   string
	prefsFile string
	debug     bool
)

var rootCmd = &cobra.Command{
	Use:   "getphotos",
	Short: "Search and browse Unsplash photos in the terminal",
	Long: `getphotos opens a terminal photo browser over the Unsplash API.

It starts with recent photos. Press / to search, scroll to the bottom to load
the next page, and d to download the selected photo.

The access key comes from UNSPLASH_ACCESS_KEY, a .env file in the working
directory, or access_key in ~/.config/getphotos/config.toml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(cmd.Context(), rootOptions())
	},
}

func rootOptions() app.Options {
	return app.Options{
		ConfigPath: cfgFile,
		PrefsPath:  prefsFile,
		Debug:      debug,
	}
}

// Execute runs the root command with a background context.
// Prefer ExecuteContext for signal-aware execution.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with the given context,
// enabling graceful shutdown when the context is cancelled.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/getphotos/config.toml)")
	rootCmd.PersistentFlags().StringVar(&prefsFile, "prefs", "", "preferences file (default: ~/.config/getphotos/prefs.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging (also enabled by DEBUG)")
}
