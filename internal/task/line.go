package task

import (
	"regexp"
	"strings"
)

// lineRe recognizes a checklist line: "- [<marker>] <description>".
// Anchored at column 0; indented checklist syntax is body text, not a task.
var lineRe = regexp.MustCompile(`^- \[([ >x!])\] (.+)`)

// Line is the parsed form of a checklist line. Description holds the raw
// text after the marker, byte-for-byte as it appears in the file.
type Line struct {
	Marker      Marker
	Description string
}

// ParseLine parses s as a checklist line. The second return value is false
// when s is not a checklist line.
func ParseLine(s string) (Line, bool) {
	m := lineRe.FindStringSubmatch(s)
	if m == nil {
		return Line{}, false
	}
	return Line{Marker: Marker(m[1][0]), Description: m[2]}, true
}

// Render produces the checklist line text for the parsed form. Description
// bytes are preserved exactly, so rewriting a marker never disturbs the rest
// of the line.
func (l Line) Render() string {
	return "- [" + string(l.Marker) + "] " + l.Description
}

// NormalizeDescription collapses runs of whitespace to single spaces and
// trims the ends, producing the lookup key used for match-by-description.
func NormalizeDescription(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
