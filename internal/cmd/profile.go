package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ludexhq/ludex/internal/api"
	"github.com/ludexhq/ludex/internal/errors"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your profile",
	Long: `Show the profile of the signed-in account, or change parts of it.

Examples:
  ludex profile
  ludex profile update --nickname ana_v2
  ludex profile update --max-price 25`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		if !rt.sessions.IsAuthenticated() {
			return errors.NewNotAuthenticatedError("show the profile")
		}

		user, err := rt.client.Me(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Nickname:  %s\n", user.Nick)
		fmt.Printf("Email:     %s\n", user.Email)
		fmt.Printf("User ID:   %d\n", user.ID)
		if user.MaxPrice > 0 {
			fmt.Printf("Max price: %.2f EUR\n", user.MaxPrice)
		}
		return nil
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Change profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		var update api.ProfileUpdate
		if cmd.Flags().Changed("nickname") {
			nick, _ := cmd.Flags().GetString("nickname")
			update.Nick = &nick
		}
		if cmd.Flags().Changed("email") {
			email, _ := cmd.Flags().GetString("email")
			update.Email = &email
		}
		if cmd.Flags().Changed("max-price") {
			maxPrice, _ := cmd.Flags().GetFloat64("max-price")
			update.MaxPrice = &maxPrice
		}
		if update.Nick == nil && update.Email == nil && update.MaxPrice == nil {
			return errors.New(errors.ErrCodeValidation, "nothing to update").
				WithSuggestion("Pass --nickname, --email, or --max-price")
		}

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		if !rt.sessions.IsAuthenticated() {
			return errors.NewNotAuthenticatedError("update the profile")
		}

		session, err := rt.sessions.UpdateProfile(cmd.Context(), update)
		if err != nil {
			return err
		}

		fmt.Printf("Profile updated. Nickname: %s, email: %s\n",
			session.User.Nick, session.User.Email)
		return nil
	},
}

func init() {
	profileUpdateCmd.Flags().String("nickname", "", "new nickname")
	profileUpdateCmd.Flags().String("email", "", "new email")
	profileUpdateCmd.Flags().Float64("max-price", 0, "new price ceiling (EUR)")

	profileCmd.AddCommand(profileUpdateCmd)
	rootCmd.AddCommand(profileCmd)
}
