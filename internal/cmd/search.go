package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog",
	Long: `Search the catalog by name.

Examples:
  ludex search hollow knight`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			fmt.Println("Nothing to search for.")
			return nil
		}

		rt, err := newRuntime()
		if err != nil {
			return err
		}

		games, err := rt.client.SearchGames(cmd.Context(), query)
		if err != nil {
			return err
		}

		printGameRows(games)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
