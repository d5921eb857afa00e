package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ludexhq/ludex/internal/errors"
	"github.com/ludexhq/ludex/internal/tui"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the Ludex session",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to Ludex",
	Long: `Sign in with your Ludex account.

Credentials can be passed as flags or entered interactively.

Examples:
  ludex auth login
  ludex auth login --email ana@example.com --password secret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" || password == "" {
			if !tui.ShouldPrompt() {
				return errors.New(errors.ErrCodeValidation,
					"--email and --password are required in non-interactive mode")
			}
			creds, err := tui.PromptCredentials()
			if err != nil {
				return err
			}
			email, password = creds.Email, creds.Password
		}

		rt, err := newRuntime()
		if err != nil {
			return err
		}

		session, err := rt.sessions.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		fmt.Printf("Logged in as %s (%s)\n", session.User.Nick, session.User.Email)
		return nil
	},
}

var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a Ludex account",
	Long: `Create a Ludex account. On success you are signed in immediately.

Examples:
  ludex auth register
  ludex auth register --nickname ana --email ana@example.com --password secret --max-price 30`,
	RunE: func(cmd *cobra.Command, args []string) error {
		nickname, _ := cmd.Flags().GetString("nickname")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		maxPrice, _ := cmd.Flags().GetFloat64("max-price")

		if nickname == "" || email == "" || password == "" {
			if !tui.ShouldPrompt() {
				return errors.New(errors.ErrCodeValidation,
					"--nickname, --email, and --password are required in non-interactive mode")
			}
			reg, err := tui.PromptRegistration()
			if err != nil {
				return err
			}
			nickname, email, password, maxPrice = reg.Nickname, reg.Email, reg.Password, reg.MaxPrice
		}

		rt, err := newRuntime()
		if err != nil {
			return err
		}

		session, err := rt.sessions.Register(cmd.Context(), nickname, email, password, maxPrice)
		if err != nil {
			return err
		}

		fmt.Printf("Account created. Logged in as %s (%s)\n", session.User.Nick, session.User.Email)
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard the local session",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		if !rt.sessions.IsAuthenticated() {
			fmt.Println("Not logged in.")
			return nil
		}

		if err := rt.sessions.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var authRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Exchange the session token for a fresh one",
	Long: `Exchange the current token for a fresh one. With --if-needed the
exchange only happens when the token expires within five minutes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ifNeeded, _ := cmd.Flags().GetBool("if-needed")

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		if !rt.sessions.IsAuthenticated() {
			return errors.NewNotAuthenticatedError("refresh the session")
		}

		if ifNeeded && !rt.sessions.TokenNeedsRefresh(5*time.Minute) {
			fmt.Println("Token is still fresh.")
			return nil
		}

		if _, err := rt.sessions.RefreshToken(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Session refreshed.")
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		user, ok := rt.sessions.CurrentUser()
		if !ok {
			fmt.Println("Not logged in.")
			fmt.Println("Use 'ludex auth login' to sign in.")
			return nil
		}

		fmt.Println("Logged in")
		fmt.Printf("Nickname: %s\n", user.Nick)
		fmt.Printf("Email:    %s\n", user.Email)
		fmt.Printf("User ID:  %d\n", user.ID)

		// The cached identity can outlive the token server-side; say so.
		if err := rt.client.VerifyToken(cmd.Context(), rt.sessions.Token()); err != nil {
			fmt.Println("Warning: the session token was rejected by the server.")
			fmt.Println("Use 'ludex auth login' to re-authenticate.")
		}
		return nil
	},
}

func init() {
	authLoginCmd.Flags().String("email", "", "account email")
	authLoginCmd.Flags().String("password", "", "account password")

	authRegisterCmd.Flags().String("nickname", "", "public nickname")
	authRegisterCmd.Flags().String("email", "", "account email")
	authRegisterCmd.Flags().String("password", "", "account password")
	authRegisterCmd.Flags().Float64("max-price", 0, "price ceiling for recommendations (EUR)")

	authRefreshCmd.Flags().Bool("if-needed", false, "only refresh when the token is close to expiry")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authRefreshCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}
