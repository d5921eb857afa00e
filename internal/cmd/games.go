package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ludexhq/ludex/internal/api"
	"github.com/ludexhq/ludex/internal/errors"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "Browse the game catalog",
	Long: `List catalog pages, or show a single game in full.

Examples:
  ludex games list
  ludex games list --page 2 --genre 4
  ludex games show 3498
  ludex games trending`,
}

var gamesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a catalog page",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		genreID, _ := cmd.Flags().GetInt64("genre")

		rt, err := newRuntime()
		if err != nil {
			return err
		}

		result, err := rt.client.ListGames(cmd.Context(), page, rt.cfg.PageSize, genreID)
		if err != nil {
			return err
		}

		printGameRows(result.Results)
		fmt.Printf("\nPage %d · %d games total\n", page, result.Count)
		return nil
	},
}

var gamesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one game in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errors.New(errors.ErrCodeValidation, "game id must be a number")
		}

		rt, err := newRuntime()
		if err != nil {
			return err
		}

		game, err := rt.client.GameByID(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Println(game.Name)
		fmt.Printf("Released: %s\n", game.Released)
		fmt.Printf("Rating:   %.1f\n", game.Rating)
		if game.Price > 0 {
			fmt.Printf("Price:    %.2f EUR\n", game.Price)
		}
		if len(game.Genres) > 0 {
			fmt.Printf("Genres:   %s\n", joinGenres(game.Genres))
		}
		if len(game.Platforms) > 0 {
			names := make([]string, 0, len(game.Platforms))
			for _, p := range game.Platforms {
				names = append(names, p.Platform.Name)
			}
			fmt.Printf("Platforms: %s\n", strings.Join(names, ", "))
		}
		if game.Description != "" {
			fmt.Printf("\n%s\n", game.Description)
		}
		return nil
	},
}

var gamesTrendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "List games trending right now",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		result, err := rt.client.TrendingGames(cmd.Context(), 1, rt.cfg.PageSize)
		if err != nil {
			return err
		}

		printGameRows(result.Results)
		return nil
	},
}

var gamesRandomCmd = &cobra.Command{
	Use:   "random",
	Short: "Pick random games from the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")

		rt, err := newRuntime()
		if err != nil {
			return err
		}

		games, err := rt.client.RandomGames(cmd.Context(), count)
		if err != nil {
			return err
		}

		printGameRows(games)
		return nil
	},
}

var gamesSimilarCmd = &cobra.Command{
	Use:   "similar <id>",
	Short: "List games similar to one you name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errors.New(errors.ErrCodeValidation, "game id must be a number")
		}
		limit, _ := cmd.Flags().GetInt("limit")

		rt, err := newRuntime()
		if err != nil {
			return err
		}

		games, err := rt.client.SimilarGames(cmd.Context(), id, limit)
		if err != nil {
			return err
		}

		printGameRows(games)
		return nil
	},
}

var gamesScreenshotsCmd = &cobra.Command{
	Use:   "screenshots <id>",
	Short: "List screenshot URLs for a game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errors.New(errors.ErrCodeValidation, "game id must be a number")
		}

		rt, err := newRuntime()
		if err != nil {
			return err
		}

		shots, err := rt.client.GameScreenshots(cmd.Context(), id)
		if err != nil {
			return err
		}

		if len(shots) == 0 {
			fmt.Println("No screenshots.")
			return nil
		}
		for _, shot := range shots {
			fmt.Println(shot.Image)
		}
		return nil
	},
}

var gamesGenresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List the catalog genres",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		genres, err := rt.client.Genres(cmd.Context())
		if err != nil {
			return err
		}

		for _, genre := range genres {
			fmt.Printf("%4d  %s\n", genre.ID, genre.Name)
		}
		return nil
	},
}

func printGameRows(games []api.Game) {
	if len(games) == 0 {
		fmt.Println("No games found.")
		return
	}
	for _, game := range games {
		fmt.Printf("%8d  %-40.40s %4.1f  %s\n",
			game.ID, game.Name, game.Rating, joinGenres(game.Genres))
	}
}

func joinGenres(genres []api.Genre) string {
	names := make([]string, 0, len(genres))
	for _, genre := range genres {
		names = append(names, genre.Name)
	}
	return strings.Join(names, ", ")
}

func init() {
	gamesListCmd.Flags().Int("page", 1, "page number")
	gamesListCmd.Flags().Int64("genre", 0, "filter by genre ID")

	gamesRandomCmd.Flags().Int("count", 5, "number of games to pick")
	gamesSimilarCmd.Flags().Int("limit", 10, "maximum number of results")

	gamesCmd.AddCommand(gamesListCmd)
	gamesCmd.AddCommand(gamesShowCmd)
	gamesCmd.AddCommand(gamesTrendingCmd)
	gamesCmd.AddCommand(gamesRandomCmd)
	gamesCmd.AddCommand(gamesSimilarCmd)
	gamesCmd.AddCommand(gamesScreenshotsCmd)
	gamesCmd.AddCommand(gamesGenresCmd)
	rootCmd.AddCommand(gamesCmd)
}
