package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abatilo/taskmd/internal/checklist"
	"github.com/abatilo/taskmd/internal/config"
	"github.com/abatilo/taskmd/internal/output"
	"github.com/abatilo/taskmd/internal/storage"
	"github.com/abatilo/taskmd/internal/task"
)

//nolint:gochecknoglobals // CLI flags, config, and formatter are package-level by design
var (
	jsonOutput bool
	formatter  output.Formatter
	cfg        *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "taskmd",
		Short: "Coordinate markdown checklist tasks across parallel workers",
		Long:  "taskmd - mark and reserve tasks in a markdown checklist file, safe for concurrent worker agents.",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if jsonOutput {
				formatter = output.NewJSONFormatter()
			} else {
				formatter = output.NewHumanFormatter()
			}

			var err error
			cfg, err = config.Load()
			if err != nil {
				printError(err)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	rootCmd.AddCommand(
		markCmd(),
		completeCmd(),
		batchCmd(),
		reportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// printOutput writes task text to stdout. Stdout carries only task text so
// callers can consume it as a wire format.
func printOutput(s string) {
	os.Stdout.WriteString(s) //nolint:gosec // stdout write errors are unrecoverable
}

// printDiagnostic writes an informational line to stderr.
func printDiagnostic(s string) {
	os.Stderr.WriteString(s) //nolint:gosec // stderr write errors are unrecoverable
}

func printError(err error) {
	os.Stderr.WriteString(formatter.FormatError(err)) //nolint:gosec // stderr write errors are unrecoverable
	os.Exit(1)
}

// taskFile resolves the task file path: positional argument if given,
// configured default otherwise.
func taskFile(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.File
}

// stateMarker maps a configured state name to its marker.
func stateMarker(state string) (task.Marker, error) {
	switch state {
	case "done":
		return task.MarkerDone, nil
	case "progress":
		return task.MarkerInProgress, nil
	case "blocked":
		return task.MarkerBlocked, nil
	default:
		return 0, InvalidStateError{Value: state}
	}
}

// markCmd implements 'taskmd mark'.
func markCmd() *cobra.Command {
	var done, progress, blocked bool
	cmd := &cobra.Command{
		Use:   "mark [file]",
		Short: "Mark the first incomplete task as done, in-progress, or blocked",
		Long: `Mark the first incomplete task and print its block.

mark runs without the file lock and is only safe when a single writer touches
the file. Concurrent workers must use 'complete' and 'batch' instead.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			target := task.MarkerDone
			switch {
			case progress:
				target = task.MarkerInProgress
			case blocked:
				target = task.MarkerBlocked
			case done:
				target = task.MarkerDone
			default:
				var err error
				target, err = stateMarker(cfg.DefaultState)
				if err != nil {
					printError(err)
				}
			}

			store := storage.NewStore(taskFile(args))
			var block string
			err := store.Update(func(doc *checklist.Document) error {
				b, markErr := doc.MarkFirst(target)
				if markErr != nil {
					return markErr
				}
				block = doc.Text(b)
				return nil
			})
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatBlock(block))
		},
	}
	cmd.Flags().BoolVar(&done, "done", false, "Mark as done [x] (default)")
	cmd.Flags().BoolVar(&progress, "progress", false, "Mark as in-progress [>] instead of done [x]")
	cmd.Flags().BoolVar(&blocked, "blocked", false, "Mark as blocked [!] instead of done [x]")
	cmd.MarkFlagsMutuallyExclusive("done", "progress", "blocked")
	return cmd
}

// completeCmd implements 'taskmd complete'.
func completeCmd() *cobra.Command {
	var taskText string
	var done, blocked bool
	cmd := &cobra.Command{
		Use:   "complete [file]",
		Short: "Mark a specific task as done or blocked by matching its description",
		Long: `Mark the task whose description matches --task and print its block.

Matching normalizes whitespace and only considers incomplete or in-progress
tasks, so a task already done or blocked is never re-completed. The whole
read-modify-write cycle holds an exclusive lock on the file.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			target := task.MarkerDone
			if blocked {
				target = task.MarkerBlocked
			}

			store := storage.NewStore(taskFile(args))
			var block string
			err := store.UpdateLocked(func(doc *checklist.Document) error {
				b, markErr := doc.MarkMatching(taskText, target)
				if markErr != nil {
					return markErr
				}
				block = doc.Text(b)
				return nil
			})
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatBlock(block))
		},
	}
	cmd.Flags().StringVar(&taskText, "task", "", "The task description text to match (first line after the checkbox)")
	cmd.Flags().BoolVar(&done, "done", false, "Mark as done [x] (default)")
	cmd.Flags().BoolVar(&blocked, "blocked", false, "Mark as blocked [!] instead of done [x]")
	cmd.MarkFlagsMutuallyExclusive("done", "blocked")
	_ = cmd.MarkFlagRequired("task")
	return cmd
}

// batchCmd implements 'taskmd batch'.
func batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch [file] <count>",
		Short: "Reserve up to N incomplete tasks and mark them all in-progress",
		Long: `Reserve up to N incomplete tasks in one locked pass and print them as
numbered blocks for dispatch to parallel workers. All reservations happen
under a single lock hold, so two concurrent batch calls never claim the same
task. Finding fewer than N tasks is not an error; finding zero is.`,
		Args: cobra.RangeArgs(1, 2),
		Run: func(_ *cobra.Command, args []string) {
			file := cfg.File
			countArg := args[0]
			if len(args) == 2 {
				file = args[0]
				countArg = args[1]
			}

			count, convErr := strconv.Atoi(countArg)
			if convErr != nil || count < 1 {
				printError(InvalidCountError{Value: countArg})
			}

			store := storage.NewStore(file)
			var reserved []output.ReservedTask
			err := store.UpdateLocked(func(doc *checklist.Document) error {
				blocks, reserveErr := doc.Reserve(count)
				if reserveErr != nil {
					return reserveErr
				}
				for i, b := range blocks {
					reserved = append(reserved, output.ReservedTask{Number: i + 1, Text: doc.Text(b)})
				}
				return nil
			})
			if err != nil {
				printError(err)
			}

			printOutput(formatter.FormatBatch(reserved))
			printDiagnostic(fmt.Sprintf("Total: %d tasks extracted\n", len(reserved)))
		},
	}
}
