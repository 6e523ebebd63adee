package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"regstub/internal/adapters/stub"
	"regstub/internal/adapters/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the stub tree interactively",
	Long: `Open an interactive tree view of the mirrored documents under the
stub base. Use y to copy a document's file path to the clipboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := stub.NewStore(stubBase)
		app := tui.NewApp(store)

		p := tea.NewProgram(app, tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
