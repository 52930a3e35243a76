package checklist

import "strings"

// Block is the contiguous range of lines making up one task: the checklist
// line at Start plus its indented/blank continuation body through End
// (inclusive). Trailing blank lines are already trimmed off End.
type Block struct {
	Start int
	End   int
}

// blockAt delimits the task block beginning at the checklist line at start.
// Starting at start+1, indented non-blank lines and blank lines belong to the
// block; the first other line (another checklist line, a heading, or
// non-indented content) ends it. Every engine in this package delimits blocks
// through this one function so no two operations can disagree about where a
// task ends.
func (d *Document) blockAt(start int) Block {
	j := start + 1
	for j < len(d.lines) {
		line := d.lines[j]
		if !isBlank(line) && !isIndented(line) {
			break
		}
		j++
	}

	end := j - 1
	for end > start && isBlank(d.lines[end]) {
		end--
	}
	return Block{Start: start, End: end}
}

// Text returns the block's lines joined with newlines, ending in exactly one
// newline.
func (d *Document) Text(b Block) string {
	return strings.Join(d.lines[b.Start:b.End+1], "\n") + "\n"
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isIndented(s string) bool {
	return strings.HasPrefix(s, " ") || strings.HasPrefix(s, "\t")
}
