package output

import (
	"fmt"
	"strings"
)

// HumanFormatter emits task text verbatim. This is the wire format worker
// agents parse, so FormatBlock must never decorate the block.
type HumanFormatter struct{}

// NewHumanFormatter creates a new HumanFormatter.
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// FormatBlock returns the task block text unchanged.
func (f *HumanFormatter) FormatBlock(text string) string {
	return text
}

// FormatBatch numbers each reserved task under a "=== TASK n ===" header,
// separated by blank lines.
func (f *HumanFormatter) FormatBatch(tasks []ReservedTask) string {
	var sb strings.Builder
	for _, t := range tasks {
		fmt.Fprintf(&sb, "=== TASK %d ===\n", t.Number)
		sb.WriteString(t.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatError formats an error for display.
func (f *HumanFormatter) FormatError(err error) string {
	return fmt.Sprintf("Error: %s\n", err.Error())
}

// FormatMessage formats a simple message.
func (f *HumanFormatter) FormatMessage(msg string) string {
	return msg + "\n"
}
