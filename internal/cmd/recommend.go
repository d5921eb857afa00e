package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ludexhq/ludex/internal/errors"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Get game recommendations",
	Long: `Get recommendations tuned to your favorites and price ceiling.
Requires a session. Use --genres for a one-off query instead.

Examples:
  ludex recommend
  ludex recommend --limit 5
  ludex recommend --genres indie,roguelike --max-price 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		genres, _ := cmd.Flags().GetStringSlice("genres")
		maxPrice, _ := cmd.Flags().GetFloat64("max-price")

		rt, err := newRuntime()
		if err != nil {
			return err
		}

		if len(genres) > 0 {
			games, err := rt.client.RecommendationsByGenres(cmd.Context(), genres, maxPrice, limit)
			if err != nil {
				return err
			}
			printGameRows(games)
			return nil
		}

		if !rt.sessions.IsAuthenticated() {
			return errors.NewNotAuthenticatedError("get personalized recommendations").
				WithSuggestion("Pass --genres for recommendations without an account")
		}

		games, err := rt.client.PersonalizedRecommendations(cmd.Context(), limit)
		if err != nil {
			return err
		}
		printGameRows(games)
		return nil
	},
}

func init() {
	recommendCmd.Flags().Int("limit", 10, "maximum number of results")
	recommendCmd.Flags().StringSlice("genres", nil, "genres for a one-off recommendation query")
	recommendCmd.Flags().Float64("max-price", 0, "price ceiling (EUR, 0 for none)")
	rootCmd.AddCommand(recommendCmd)
}
