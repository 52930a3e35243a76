// Package report turns test-runner log files into a markdown validation
// report. It shares no state with the task file protocol; it only follows
// the same parse-structured-text, emit-markdown idiom.
package report

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// CategoryResult holds everything extracted from one log file.
type CategoryResult struct {
	Category          string
	Total             int
	Passed            int
	Failed            int
	TestFiles         []string
	CompilationErrors []string
}

var (
	totalRe    = regexp.MustCompile(`Total:\s*(\d+)`)
	passedRe   = regexp.MustCompile(`Passed:\s*(\d+)`)
	failedRe   = regexp.MustCompile(`Failed:\s*(\d+)`)
	testFileRe = regexp.MustCompile(`Running tests in:\s*(\S+)`)
)

const scriptErrorPrefix = "SCRIPT ERROR:"

// ParseLog parses a single test log file. The category name is the file's
// base name with any "_results" suffix stripped.
func ParseLog(path string) (*CategoryResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content := string(data)

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	r := &CategoryResult{
		Category: strings.TrimSuffix(base, "_results"),
	}

	r.Total = firstInt(totalRe, content)
	r.Passed = firstInt(passedRe, content)
	r.Failed = firstInt(failedRe, content)

	for _, m := range testFileRe.FindAllStringSubmatch(content, -1) {
		r.TestFiles = append(r.TestFiles, m[1])
	}
	r.CompilationErrors = parseScriptErrors(content)

	return r, nil
}

// firstInt returns the first captured integer for re in content, or zero.
func firstInt(re *regexp.Regexp, content string) int {
	m := re.FindStringSubmatch(content)
	if m == nil {
		return 0
	}
	n := 0
	for _, c := range m[1] {
		n = n*10 + int(c-'0')
	}
	return n
}

// parseScriptErrors collects multi-line SCRIPT ERROR blocks. An error block
// runs until the next SCRIPT ERROR line, the next test-run line, or EOF.
func parseScriptErrors(content string) []string {
	var errs []string
	var cur []string

	flush := func() {
		if cur == nil {
			return
		}
		if text := strings.TrimSpace(strings.Join(cur, "\n")); text != "" {
			errs = append(errs, text)
		}
		cur = nil
	}

	for _, line := range strings.Split(content, "\n") {
		switch {
		case strings.HasPrefix(line, scriptErrorPrefix):
			flush()
			cur = []string{strings.TrimSpace(strings.TrimPrefix(line, scriptErrorPrefix))}
		case strings.HasPrefix(line, "Running tests"):
			flush()
		case cur != nil:
			cur = append(cur, line)
		}
	}
	flush()
	return errs
}
