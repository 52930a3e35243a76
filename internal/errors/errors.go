//nolint:revive // Package name intentionally matches stdlib for domain clarity
package errors

import "fmt"

// FileMissingError indicates the task file doesn't exist.
type FileMissingError struct {
	Path string
}

func (e FileMissingError) Error() string {
	return fmt.Sprintf("no tasks found (file %s doesn't exist)", e.Path)
}

// NoTasksError indicates no line matched the operation's eligibility rule.
type NoTasksError struct{}

func (e NoTasksError) Error() string {
	return "no incomplete tasks found"
}

// TaskNotMatchedError indicates no incomplete or in-progress line matched
// the requested description text.
type TaskNotMatchedError struct {
	Text string
}

func (e TaskNotMatchedError) Error() string {
	return fmt.Sprintf("could not find task matching: %s", e.Text)
}

// IllegalTransitionError indicates a state change outside the legal set
// (e.g. re-completing a done task).
type IllegalTransitionError struct {
	From string
	To   string
}

func (e IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition: %s -> %s", e.From, e.To)
}

// LockError indicates the exclusive lock on the task file could not be taken.
type LockError struct {
	Path string
	Err  error
}

func (e LockError) Error() string {
	return fmt.Sprintf("failed to lock %s: %v", e.Path, e.Err)
}

func (e LockError) Unwrap() error {
	return e.Err
}

// NoLogsError indicates no parseable log file was given to the report
// generator.
type NoLogsError struct{}

func (e NoLogsError) Error() string {
	return "no valid log files found"
}
