package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/getphotos/internal/app"
)

var searchPage int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Print one page of search results",
	Long: `Print one page of photos matching query as tab-separated uploader name
and full image URL. Multiple arguments are joined with spaces.

Examples:
  getphotos search mountains
  getphotos search northern lights --page 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Fetch(cmd.Context(), app.FetchOptions{
			Options: rootOptions(),
			Query:   strings.Join(args, " "),
			Page:    searchPage,
			Out:     cmd.OutOrStdout(),
			Log:     cmd.ErrOrStderr(),
		})
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchPage, "page", 1, "page number")
	rootCmd.AddCommand(searchCmd)
}
