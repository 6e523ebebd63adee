package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"regstub/internal/adapters/regcore"
	"regstub/internal/adapters/sqlite"
	"regstub/internal/adapters/stub"
	"regstub/internal/application"
	"regstub/internal/application/commands"
	"regstub/internal/ports"
)

var (
	fetchRegulation string
	fetchPaths      []string
	fetchNoManifest bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Mirror regulation JSON into the stub tree",
	Long: `Fetch JSON documents from the API and write them under the stub base.

With -r, the whole document set of a regulation is discovered and
mirrored; -p fetches explicit paths instead and is ignored when -r is
given. Failed fetches are logged and skipped; the run always attempts
every path.

Examples:
  regstub fetch -a https://example.com/api/ -r 1026
  regstub fetch -a https://example.com/api/ -p notice/2013-10604 -p layer/terms/1026/2013-10604`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(apiBase) == "" {
			return application.ErrMissingAPIBase
		}
		if fetchRegulation == "" && len(fetchPaths) == 0 {
			return fmt.Errorf("%w: use -r or -p to specify", application.ErrNothingToFetch)
		}

		api, err := regcore.NewClient(apiBase)
		if err != nil {
			return err
		}
		store := stub.NewStore(stubBase)

		var index ports.FetchIndex
		if !fetchNoManifest {
			manifest := sqlite.NewManifest()
			if err := manifest.Open(store.Root()); err != nil {
				logger.Warn("manifest disabled", zap.Error(err))
			} else {
				index = manifest
				defer manifest.Close()
			}
		}

		ctx := context.Background()

		var results []commands.FetchResult
		if fetchRegulation != "" {
			fetch := commands.NewFetchRegulationCommand(api, store, index, logger, fetchRegulation)
			if err := fetch.Validate(); err != nil {
				return err
			}
			results, err = fetch.Execute(ctx)
		} else {
			fetch := commands.NewFetchPathsCommand(api, store, index, logger, fetchPaths)
			if err := fetch.Validate(); err != nil {
				return err
			}
			results, err = fetch.Execute(ctx)
		}
		if err != nil {
			return err
		}

		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
			}
		}
		fmt.Printf("fetched %d of %d documents into %s\n", len(results)-failed, len(results), store.Root())
		if failed > 0 {
			fmt.Printf("%d failed (see log)\n", failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringVarP(&fetchRegulation, "regulation", "r", "", "the specific regulation part number to get (eg: 1026)")
	fetchCmd.Flags().StringSliceVarP(&fetchPaths, "paths", "p", nil, "specific JSON paths to get")
	fetchCmd.Flags().BoolVar(&fetchNoManifest, "no-manifest", false, "skip fetch manifest bookkeeping")
}
