package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"regstub/internal/adapters/sqlite"
	"regstub/internal/adapters/stub"
	"regstub/internal/domain"
)

var (
	manifestRegulation string
	manifestLimit      int
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "List recorded fetch attempts, newest first",
	Long: `Show the fetch manifest for the stub base: one row per document path
with the outcome of its most recent fetch.

Examples:
  regstub manifest -s ./stub
  regstub manifest -s ./stub -r 1026 -n 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := stub.NewStore(stubBase)

		manifest := sqlite.NewManifest()
		if err := manifest.Open(store.Root()); err != nil {
			return err
		}
		defer manifest.Close()

		var (
			records []domain.FetchRecord
			err     error
		)
		if manifestRegulation != "" {
			records, err = manifest.ByRegulation(manifestRegulation, manifestLimit)
		} else {
			records, err = manifest.Recent(manifestLimit)
		}
		if err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Println("No records")
			return nil
		}

		for _, rec := range records {
			line := fmt.Sprintf("%-6s  %8d  %s  %s",
				rec.Status, rec.Bytes, rec.FetchedAt.Format("2006-01-02 15:04:05"), rec.Path)
			if rec.Detail != "" {
				line += "  (" + rec.Detail + ")"
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(manifestCmd)
	manifestCmd.Flags().StringVarP(&manifestRegulation, "regulation", "r", "", "only show records for this regulation part")
	manifestCmd.Flags().IntVarP(&manifestLimit, "limit", "n", 50, "maximum number of records")
}
