package output

import "encoding/json"

// JSONFormatter formats output as JSON for machine consumers.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// marshalJSON marshals a value to indented JSON with a trailing newline.
func marshalJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data) + "\n"
}

// blockJSON is the JSON representation of a marked task block.
type blockJSON struct {
	Text string `json:"text"`
}

// FormatBlock formats a single task block as JSON.
func (f *JSONFormatter) FormatBlock(text string) string {
	return marshalJSON(blockJSON{Text: text})
}

// batchTaskJSON is the JSON representation of one reserved task.
type batchTaskJSON struct {
	Task int    `json:"task"`
	Text string `json:"text"`
}

// FormatBatch formats the reserved tasks as a JSON array.
func (f *JSONFormatter) FormatBatch(tasks []ReservedTask) string {
	jsonTasks := make([]batchTaskJSON, len(tasks))
	for i, t := range tasks {
		jsonTasks[i] = batchTaskJSON{Task: t.Number, Text: t.Text}
	}
	return marshalJSON(jsonTasks)
}

// errorJSON is the JSON representation of an error.
type errorJSON struct {
	Error string `json:"error"`
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(err error) string {
	return marshalJSON(errorJSON{Error: err.Error()})
}

// messageJSON is the JSON representation of a message.
type messageJSON struct {
	Message string `json:"message"`
}

// FormatMessage formats a simple message as JSON.
func (f *JSONFormatter) FormatMessage(msg string) string {
	return marshalJSON(messageJSON{Message: msg})
}
