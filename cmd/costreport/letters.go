package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ukaji3/costreport-go/pkg/costreport/letters"
	"github.com/ukaji3/costreport-go/pkg/costreport/store"
)

var (
	letterDBPath    string
	letterOutputDir string
)

var lettersCmd = &cobra.Command{
	Use:   "letters",
	Short: "Build desk review letter and findings contexts for every district",
	Args:  cobra.NoArgs,
	RunE:  runLetters,
}

func init() {
	flags := lettersCmd.Flags()
	flags.StringVar(&letterDBPath, "db-path", "", "Path to the SQLite database with desk review data")
	flags.StringVar(&letterOutputDir, "output-dir", "", "Directory where generated contexts will be saved")
}

func runLetters(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("db-path") {
		opts.Database = letterDBPath
	}
	if cmd.Flags().Changed("output-dir") {
		opts.Letters.OutputDir = letterOutputDir
	}

	if _, err := os.Stat(opts.Database); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	unlock, err := lockDatabase(opts.Database)
	if err != nil {
		return err
	}
	defer unlock()

	ctx := cmd.Context()
	db, err := store.Open(ctx, opts.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	report, err := letters.Generate(ctx, db, letters.JSONRenderer{}, opts.Letters.OutputDir, time.Now(), logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Processed %d/%d districts.\n", report.Processed(), len(report.Districts))
	if len(report.Errors) == 0 {
		fmt.Fprintln(out, "All districts processed successfully.")
		return nil
	}
	fmt.Fprintln(out, "Errors encountered:")
	for _, e := range report.Errors {
		fmt.Fprintf(out, "- %s: %v\n", e.District, e.Err)
	}
	return nil
}
