package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"regstub/internal/adapters/regcore"
	"regstub/internal/application"
	"regstub/internal/application/commands"
)

var pathsRegulation string

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List the document paths of a regulation without fetching",
	Long: `Enumerate every document path belonging to a regulation, one per line.

The notice list still comes from the API, but no documents are fetched
or written.

Examples:
  regstub paths -a https://example.com/api/ -r 1026`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(apiBase) == "" {
			return application.ErrMissingAPIBase
		}

		api, err := regcore.NewClient(apiBase)
		if err != nil {
			return err
		}

		list := commands.NewListPathsCommand(api, pathsRegulation)
		if err := list.Validate(); err != nil {
			return err
		}

		paths, err := list.Execute(context.Background())
		if err != nil {
			return err
		}

		for _, p := range paths {
			fmt.Println(p.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
	pathsCmd.Flags().StringVarP(&pathsRegulation, "regulation", "r", "", "the regulation part number to enumerate (eg: 1026)")
}
