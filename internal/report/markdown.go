package report

import (
	"fmt"
	"strings"
	"time"
)

const errorExcerptLen = 200

// Generate renders the markdown validation report for the parsed results.
// maxErrors caps how many compilation errors are shown per category.
func Generate(results []*CategoryResult, maxErrors int, now time.Time) string {
	var sb strings.Builder

	sb.WriteString("# Test Validation Report\n")
	fmt.Fprintf(&sb, "**Generated:** %s\n\n", now.Format("2006-01-02 15:04:05"))

	totalTests, totalPassed, totalFailed := 0, 0, 0
	for _, r := range results {
		totalTests += r.Total
		totalPassed += r.Passed
		totalFailed += r.Failed
	}

	sb.WriteString("## Overall Summary\n\n")
	fmt.Fprintf(&sb, "- **Total Tests**: %d\n", totalTests)
	if totalTests > 0 {
		fmt.Fprintf(&sb, "- **Passed**: %d (%.1f%%)\n", totalPassed, pct(totalPassed, totalTests))
		fmt.Fprintf(&sb, "- **Failed**: %d (%.1f%%)\n", totalFailed, pct(totalFailed, totalTests))
	} else {
		sb.WriteString("- **Passed**: 0\n- **Failed**: 0\n")
	}
	sb.WriteString("\n")

	sb.WriteString("## Results by Category\n\n")
	for _, r := range results {
		writeCategory(&sb, r, maxErrors)
	}

	writeRecommendations(&sb, results, totalFailed)
	return sb.String()
}

func writeCategory(sb *strings.Builder, r *CategoryResult, maxErrors int) {
	icon := "✅"
	if r.Failed > 0 || r.Total == 0 {
		icon = "❌"
	}

	fmt.Fprintf(sb, "### %s %s\n\n", icon, titleCase(r.Category))
	fmt.Fprintf(sb, "- **Total**: %d\n", r.Total)
	fmt.Fprintf(sb, "- **Passed**: %d\n", r.Passed)
	fmt.Fprintf(sb, "- **Failed**: %d\n\n", r.Failed)

	if len(r.TestFiles) > 0 {
		fmt.Fprintf(sb, "**Test Files** (%d):\n", len(r.TestFiles))
		for _, f := range r.TestFiles {
			fmt.Fprintf(sb, "- `%s`\n", f)
		}
		sb.WriteString("\n")
	}

	if len(r.CompilationErrors) > 0 {
		sb.WriteString("**Compilation Errors:**\n")
		for i, e := range r.CompilationErrors {
			if i == maxErrors {
				fmt.Fprintf(sb, "... and %d more errors\n", len(r.CompilationErrors)-maxErrors)
				break
			}
			fmt.Fprintf(sb, "%d. %s...\n", i+1, excerpt(e))
		}
		sb.WriteString("\n")
	}
}

func writeRecommendations(sb *strings.Builder, results []*CategoryResult, totalFailed int) {
	sb.WriteString("## Recommendations\n\n")

	if totalFailed > 0 {
		sb.WriteString("### Critical Issues\n\n")
		for _, r := range results {
			if r.Failed > 0 {
				fmt.Fprintf(sb, "- Fix %d failing tests in **%s**\n", r.Failed, r.Category)
			}
		}
		sb.WriteString("\n")
	}

	hasCompileErrors := false
	for _, r := range results {
		if len(r.CompilationErrors) > 0 {
			hasCompileErrors = true
			break
		}
	}
	if hasCompileErrors {
		sb.WriteString("### Compilation Errors\n\n")
		sb.WriteString("The following categories have compilation errors that prevent tests from running:\n")
		for _, r := range results {
			if len(r.CompilationErrors) > 0 {
				fmt.Fprintf(sb, "- **%s**: %d errors\n", r.Category, len(r.CompilationErrors))
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("### Next Steps\n\n")
	sb.WriteString("1. Fix all compilation errors\n")
	sb.WriteString("2. Investigate and fix failing tests\n")
	sb.WriteString("3. Run validation again to verify fixes\n")
	sb.WriteString("4. Update test coverage for missing areas\n")
}

// excerpt flattens an error to one line capped at errorExcerptLen bytes.
func excerpt(e string) string {
	flat := strings.ReplaceAll(strings.TrimSpace(e), "\n", " ")
	if len(flat) > errorExcerptLen {
		return flat[:errorExcerptLen]
	}
	return flat
}

// titleCase renders a category slug as a heading ("battle_logic" -> "Battle Logic").
func titleCase(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func pct(n, total int) float64 {
	return float64(n) / float64(total) * 100
}
