package output

// ReservedTask pairs a batch position (1-based) with the reserved task
// block's text.
type ReservedTask struct {
	Number int
	Text   string
}

// Formatter defines the interface for output formatting.
type Formatter interface {
	FormatBlock(text string) string
	FormatBatch(tasks []ReservedTask) string
	FormatError(err error) string
	FormatMessage(msg string) string
}
