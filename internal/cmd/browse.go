package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ludexhq/ludex/internal/api"
	"github.com/ludexhq/ludex/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive catalog browser",
	Long: `Open the full-screen terminal UI: catalog, incremental search,
favorites, recommendations, and your profile in one place.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		app := tui.NewApp(rt.client, rt.sessions, rt.cfg.PageSize)
		// A 401 on any request must land the UI on the login view.
		rt.authorizer.Navigate = api.NavigateFunc(app.NavigateToLogin)

		program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		_, err = program.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
