//nolint:testpackage // Tests require internal access for thorough testing
package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/abatilo/taskmd/internal/checklist"
	taskerrors "github.com/abatilo/taskmd/internal/errors"
	"github.com/abatilo/taskmd/internal/task"
)

func writeTaskFile(t *testing.T, content string) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "TODO.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write task file: %v", err)
	}
	return NewStore(path)
}

func TestUpdate(t *testing.T) {
	store := writeTaskFile(t, "- [ ] Fix bug\n  details here\n- [ ] Next task\n")

	var block string
	err := store.Update(func(doc *checklist.Document) error {
		b, markErr := doc.MarkFirst(task.MarkerDone)
		if markErr != nil {
			return markErr
		}
		block = doc.Text(b)
		return nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if want := "- [x] Fix bug\n  details here\n"; block != want {
		t.Errorf("block = %q, want %q", block, want)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if want := "- [x] Fix bug\n  details here\n- [ ] Next task\n"; string(data) != want {
		t.Errorf("file = %q, want %q", data, want)
	}
}

func TestUpdateMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.md"))

	err := store.Update(func(*checklist.Document) error { return nil })
	var missing taskerrors.FileMissingError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want FileMissingError", err)
	}

	if err = store.UpdateLocked(func(*checklist.Document) error { return nil }); !errors.As(err, &missing) {
		t.Errorf("UpdateLocked err = %v, want FileMissingError", err)
	}
}

func TestUpdateErrorLeavesFileUnchanged(t *testing.T) {
	content := "- [x] all done already\n"
	store := writeTaskFile(t, content)

	err := store.UpdateLocked(func(doc *checklist.Document) error {
		_, reserveErr := doc.Reserve(3)
		return reserveErr
	})
	if !errors.As(err, &taskerrors.NoTasksError{}) {
		t.Fatalf("err = %v, want NoTasksError", err)
	}

	data, _ := os.ReadFile(store.Path())
	if string(data) != content {
		t.Errorf("file changed on failed update: %q", data)
	}
}

func TestUpdateLockedSerializesReservations(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 20; i++ {
		sb.WriteString("- [ ] task\n  body\n")
	}
	store := writeTaskFile(t, sb.String())

	const workers = 5
	results := make([][]int, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			_ = store.UpdateLocked(func(doc *checklist.Document) error {
				blocks, err := doc.Reserve(4)
				if err != nil {
					return err
				}
				for _, b := range blocks {
					results[w] = append(results[w], b.Start)
				}
				return nil
			})
		}(w)
	}
	wg.Wait()

	seen := map[int]bool{}
	total := 0
	for _, starts := range results {
		for _, s := range starts {
			if seen[s] {
				t.Errorf("task at line %d reserved by two workers", s)
			}
			seen[s] = true
			total++
		}
	}
	if total != 20 {
		t.Errorf("reserved %d tasks, want all 20", total)
	}

	data, _ := os.ReadFile(store.Path())
	if strings.Contains(string(data), "- [ ]") {
		t.Error("incomplete tasks remain after full reservation")
	}
}
