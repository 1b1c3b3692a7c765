package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/costreport-go/pkg/costreport"
	"github.com/ukaji3/costreport-go/pkg/costreport/validate"
)

var (
	dataDir          string
	databasePath     string
	exportPath       string
	contactExport    string
	deskReviewExport string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Load salary workbooks into SQLite and flat exports",
	Args:  cobra.NoArgs,
	RunE:  runExtract,
}

func init() {
	flags := extractCmd.Flags()
	flags.StringVar(&dataDir, "data-dir", "", "Folder that contains Salary_Report_*.xlsx files")
	flags.StringVar(&databasePath, "database", "", "SQLite database path to create or overwrite")
	flags.StringVar(&exportPath, "export", "", "Path for the combined export (.csv or .xlsx)")
	flags.StringVar(&contactExport, "contact-export", "", "Path for contact export (.csv or .xlsx)")
	flags.StringVar(&deskReviewExport, "desk-review-export", "", "Path for desk review summary export (.csv or .xlsx)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	override := func(name string, dst *string, value string) {
		if flags.Changed(name) {
			*dst = value
		}
	}
	override("data-dir", &opts.DataDir, dataDir)
	override("database", &opts.Database, databasePath)
	override("export", &opts.Export, exportPath)
	override("contact-export", &opts.ContactExport, contactExport)
	override("desk-review-export", &opts.DeskReviewExport, deskReviewExport)

	unlock, err := lockDatabase(opts.Database)
	if err != nil {
		return err
	}
	defer unlock()

	result, err := costreport.Run(cmd.Context(), opts, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, line := range validate.Digest(result.Validation) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "Loaded %d salary rows from %d workbooks.\n", len(result.Records), len(result.Workbooks))
	fmt.Fprintf(out, "Captured %d contact rows.\n", len(result.Contacts))
	fmt.Fprintf(out, "Generated desk review summaries for %d reports.\n", len(result.Findings))
	fmt.Fprintf(out, "SQLite database: %s\n", opts.Database)
	fmt.Fprintf(out, "Combined export: %s\n", opts.Export)
	fmt.Fprintf(out, "Contact export: %s\n", opts.ContactExport)
	fmt.Fprintf(out, "Desk review export: %s\n", opts.DeskReviewExport)
	return nil
}
