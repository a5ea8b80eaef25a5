package cmd

import (
	"github.com/spf13/cobra"

	"github.com/five82/getphotos/internal/app"
)

var listPage int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one page of recent photos",
	Long: `Print one page of recent photos as tab-separated uploader name and
full image URL.

Examples:
  getphotos list
  getphotos list --page 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Fetch(cmd.Context(), app.FetchOptions{
			Options: rootOptions(),
			Page:    listPage,
			Out:     cmd.OutOrStdout(),
			Log:     cmd.ErrOrStderr(),
		})
	},
}

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 1, "page number")
	rootCmd.AddCommand(listCmd)
}
