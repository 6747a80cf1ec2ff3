package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-renderer/internal/ingestion"
	"github.com/jonathan/resume-renderer/internal/observability"
)

var validateCmd = &cobra.Command{
	Use:   "validate <resume files...>",
	Short: "Validate resume documents without rendering",
	Long:  "Loads each resume document and reports every schema and semantic violation found. Exits non-zero if any file fails.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

var validateVerbose bool

func init() {
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print a summary of each valid document")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	printer := observability.NewPrinter(os.Stdout)

	failed := 0
	for _, path := range args {
		resume, err := ingestion.LoadResume(path)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: invalid\n%v\n", path, err)
			continue
		}

		fmt.Printf("%s: valid (%s)\n", path, resume.Contact.Name)
		if validateVerbose {
			printer.PrintResumeSummary(resume)
			for _, chart := range resume.Charts {
				printer.PrintChartSummary(chart)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d resume files failed validation", failed, len(args))
	}
	return nil
}
