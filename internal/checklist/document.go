// Package checklist models a markdown task file as an ordered line sequence
// and implements the state-transition and batch-reservation engines over it.
package checklist

import "strings"

// Document is an in-memory view of a task file. Mutations happen on the line
// slice; nothing is persisted until the caller writes Bytes back out.
type Document struct {
	lines        []string
	finalNewline bool
}

// Parse splits file contents into lines. Whether the file ended with a
// newline is remembered so Bytes can reproduce the original shape.
func Parse(data []byte) *Document {
	if len(data) == 0 {
		return &Document{}
	}
	s := string(data)
	final := strings.HasSuffix(s, "\n")
	if final {
		s = strings.TrimSuffix(s, "\n")
	}
	return &Document{lines: strings.Split(s, "\n"), finalNewline: final}
}

// Bytes serializes the document back to file contents.
func (d *Document) Bytes() []byte {
	if len(d.lines) == 0 {
		return nil
	}
	s := strings.Join(d.lines, "\n")
	if d.finalNewline {
		s += "\n"
	}
	return []byte(s)
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Line returns the raw text of line i.
func (d *Document) Line(i int) string {
	return d.lines[i]
}
