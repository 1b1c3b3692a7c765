// Package main provides the CLI entry point for costreport.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ukaji3/costreport-go/pkg/costreport"
)

var (
	configPath string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "costreport",
	Short: "Normalize district salary reports and run the desk review",
	Long: `costreport reads the Input Data and Salaries tabs of district salary
workbooks, validates every row, computes desk review findings, stores the
result in SQLite and exports flat files. The letters command builds the
per-district letter and findings contexts from that database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		base, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = base.With(zap.String("run_id", uuid.NewString()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default: built-in defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(extractCmd, lettersCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "costreport: %v\n", err)
		os.Exit(1)
	}
}

// loadOptions returns the config file options, or the defaults when no
// file was given.
func loadOptions() (costreport.Options, error) {
	if configPath == "" {
		return costreport.DefaultOptions(), nil
	}
	return costreport.LoadOptions(configPath)
}
