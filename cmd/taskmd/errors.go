package main

import "fmt"

// InvalidCountError indicates the batch count argument isn't a positive
// integer.
type InvalidCountError struct {
	Value string
}

func (e InvalidCountError) Error() string {
	return fmt.Sprintf("count must be a positive integer, got %q", e.Value)
}

// InvalidStateError indicates a configured state name outside the known set.
type InvalidStateError struct {
	Value string
}

func (e InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: %s (valid: done, progress, blocked)", e.Value)
}
