package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	taskerrors "github.com/abatilo/taskmd/internal/errors"
	"github.com/abatilo/taskmd/internal/report"
)

// reportCmd implements 'taskmd report'.
func reportCmd() *cobra.Command {
	var maxErrors int
	cmd := &cobra.Command{
		Use:   "report <log>...",
		Short: "Generate a markdown validation report from test log files",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if !cmd.Flags().Changed("max-errors") {
				maxErrors = cfg.ReportMaxErrors
			}

			var results []*report.CategoryResult
			for _, path := range args {
				r, err := report.ParseLog(path)
				if err != nil {
					printDiagnostic(fmt.Sprintf("Warning: %s not found\n", path))
					continue
				}
				results = append(results, r)
			}
			if len(results) == 0 {
				printError(taskerrors.NoLogsError{})
			}

			printOutput(report.Generate(results, maxErrors, time.Now()))
		},
	}
	cmd.Flags().IntVar(&maxErrors, "max-errors", 5, "Maximum compilation errors shown per category")
	return cmd
}
