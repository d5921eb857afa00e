package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ludexhq/ludex/internal/api"
	"github.com/ludexhq/ludex/internal/errors"
	"github.com/ludexhq/ludex/internal/tui"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage your favorites list",
	Long: `List, add to, and remove from your favorites. Requires a session.

Examples:
  ludex favorites list
  ludex favorites add 3498
  ludex favorites add 12 --source catalog
  ludex favorites remove 3498`,
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your favorites",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		if !rt.sessions.IsAuthenticated() {
			return errors.NewNotAuthenticatedError("list favorites")
		}

		result, err := rt.client.ListFavorites(cmd.Context(), page, rt.cfg.PageSize)
		if err != nil {
			return err
		}

		if len(result.Results) == 0 {
			fmt.Println("No favorites yet.")
			return nil
		}
		for _, fav := range result.Results {
			fmt.Printf("%8d  %-40.40s %s\n", fav.GameID, fav.Name, fav.Source)
		}
		fmt.Printf("\n%d favorites total\n", result.Count)
		return nil
	},
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <game-id>",
	Short: "Add a game to your favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gameID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errors.New(errors.ErrCodeValidation, "game id must be a number")
		}
		source, err := favoriteSource(cmd)
		if err != nil {
			return err
		}

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		if !rt.sessions.IsAuthenticated() {
			return errors.NewNotAuthenticatedError("add a favorite")
		}

		if err := rt.client.AddFavorite(cmd.Context(), source, gameID); err != nil {
			return err
		}
		fmt.Printf("Added game %d to favorites.\n", gameID)
		return nil
	},
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove <game-id>",
	Short: "Remove a game from your favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gameID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errors.New(errors.ErrCodeValidation, "game id must be a number")
		}

		skipConfirm, _ := cmd.Flags().GetBool("yes")
		if !skipConfirm && tui.ShouldPrompt() {
			ok, err := tui.PromptConfirm(
				fmt.Sprintf("Remove game %d from your favorites?", gameID), false)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}
		}

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		if !rt.sessions.IsAuthenticated() {
			return errors.NewNotAuthenticatedError("remove a favorite")
		}

		if err := rt.client.RemoveFavorite(cmd.Context(), gameID); err != nil {
			return err
		}
		fmt.Printf("Removed game %d from favorites.\n", gameID)
		return nil
	},
}

func favoriteSource(cmd *cobra.Command) (api.FavoriteSource, error) {
	raw, _ := cmd.Flags().GetString("source")
	switch api.FavoriteSource(raw) {
	case api.SourceCatalog:
		return api.SourceCatalog, nil
	case api.SourceRAWG:
		return api.SourceRAWG, nil
	default:
		return "", errors.New(errors.ErrCodeValidation,
			fmt.Sprintf("unknown source %q (want catalog or rawg)", raw))
	}
}

func init() {
	favoritesListCmd.Flags().Int("page", 1, "page number")
	favoritesAddCmd.Flags().String("source", string(api.SourceRAWG), "catalog the game belongs to (catalog, rawg)")
	favoritesRemoveCmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)
	rootCmd.AddCommand(favoritesCmd)
}
