package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"regstub/internal/config"
)

// Version is the regstub release version
const Version = "0.1.0"

var (
	apiBase  string
	stubBase string
	verbose  bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "regstub",
	Short: "Mirror regulations-core JSON to a local stub tree",
	Long: `regstub downloads JSON documents from a regulations-core API and
mirrors them to a local directory tree.

Given a regulation part number it discovers every related notice, layer,
and diff document, fetches each one, and writes it to a file path that
mirrors the URL path. Individual fetch failures are logged and skipped.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cfg := config.Load()
	rootCmd.PersistentFlags().StringVarP(&apiBase, "api-base", "a", cfg.APIBase, "the regulations-core API URL")
	rootCmd.PersistentFlags().StringVarP(&stubBase, "stub-base", "s", cfg.StubBase, "the base filesystem path for regulations JSON")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
}
