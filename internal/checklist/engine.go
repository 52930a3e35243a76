package checklist

import (
	taskerrors "github.com/abatilo/taskmd/internal/errors"
	"github.com/abatilo/taskmd/internal/task"
)

// MarkFirst rewrites the first incomplete checklist line to target and
// returns its block. Callers must serialize access externally; this operation
// is only safe for single-writer workflows.
func (d *Document) MarkFirst(target task.Marker) (Block, error) {
	for i, s := range d.lines {
		line, ok := task.ParseLine(s)
		if !ok || line.Marker != task.MarkerIncomplete {
			continue
		}
		return d.transition(i, line, target)
	}
	return Block{}, taskerrors.NoTasksError{}
}

// MarkMatching rewrites the checklist line whose normalized description
// equals text to target and returns its block. Only incomplete and
// in-progress lines are eligible, so an already-done or already-blocked task
// can never be re-completed. On duplicate descriptions the first occurrence
// in file order wins.
func (d *Document) MarkMatching(text string, target task.Marker) (Block, error) {
	want := task.NormalizeDescription(text)
	for i, s := range d.lines {
		line, ok := task.ParseLine(s)
		if !ok {
			continue
		}
		if line.Marker != task.MarkerIncomplete && line.Marker != task.MarkerInProgress {
			continue
		}
		if task.NormalizeDescription(line.Description) != want {
			continue
		}
		return d.transition(i, line, target)
	}
	return Block{}, taskerrors.TaskNotMatchedError{Text: text}
}

// Reserve collects up to n incomplete tasks from the top of the file and
// marks every one of them in-progress. The scan advances past each collected
// block, so blocks never overlap. Fewer than n tasks is not an error; zero
// is.
func (d *Document) Reserve(n int) ([]Block, error) {
	var blocks []Block
	i := 0
	for i < len(d.lines) && len(blocks) < n {
		line, ok := task.ParseLine(d.lines[i])
		if !ok || line.Marker != task.MarkerIncomplete {
			i++
			continue
		}
		b := d.blockAt(i)
		blocks = append(blocks, b)
		i = b.End + 1
	}

	if len(blocks) == 0 {
		return nil, taskerrors.NoTasksError{}
	}

	for _, b := range blocks {
		line, _ := task.ParseLine(d.lines[b.Start])
		line.Marker = task.MarkerInProgress
		d.lines[b.Start] = line.Render()
	}
	return blocks, nil
}

// transition applies a single marker rewrite at line i, enforcing the legal
// transition set.
func (d *Document) transition(i int, line task.Line, target task.Marker) (Block, error) {
	if !line.Marker.CanTransition(target) {
		return Block{}, taskerrors.IllegalTransitionError{
			From: line.Marker.String(),
			To:   target.String(),
		}
	}
	line.Marker = target
	d.lines[i] = line.Render()
	return d.blockAt(i), nil
}
