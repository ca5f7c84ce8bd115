package pretty

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/luaoutline/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "5 symbols resolved (3 structural, 2 heuristic), 1 unresolved in 2 files".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	fileWord := wordFiles
	if stats.FilesRequested == 1 {
		fileWord = wordFile
	}

	symbolWord := "symbols"
	if stats.SymbolsResolved == 1 {
		symbolWord = "symbol"
	}

	resolved := fmt.Sprintf("%d %s resolved", stats.SymbolsResolved, symbolWord)
	if breakdown := strategyBreakdown(stats.ResolvedByStrategy); breakdown != "" {
		resolved += " (" + breakdown + ")"
	}

	parts := []string{s.Success.Render(resolved)}
	if stats.SymbolsFailed > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d unresolved", stats.SymbolsFailed)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d unreadable", stats.FilesErrored)))
	}

	return strings.Join(parts, ", ") + s.Dim.Render(fmt.Sprintf(" in %d %s", stats.FilesRequested, fileWord)) + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files processed:   " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesErrored > 0 {
		builder.WriteString("  Files with errors: " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Symbols:           " +
		s.SummaryValue.Render(strconv.Itoa(stats.SymbolsTotal)) + "\n")
	builder.WriteString("    Resolved:        " +
		s.Success.Render(strconv.Itoa(stats.SymbolsResolved)) + "\n")
	for _, name := range sortedKeys(stats.ResolvedByStrategy) {
		builder.WriteString(fmt.Sprintf("      %-15s %s\n", name+":",
			s.SummaryValue.Render(strconv.Itoa(stats.ResolvedByStrategy[name]))))
	}

	if stats.SymbolsFailed > 0 {
		builder.WriteString("    Unresolved:      " +
			s.Failure.Render(strconv.Itoa(stats.SymbolsFailed)) + "\n")
		for _, name := range sortedKeys(stats.FailedByKind) {
			builder.WriteString(fmt.Sprintf("      %-15s %s\n", name+":",
				s.Failure.Render(strconv.Itoa(stats.FailedByKind[name]))))
		}
	}

	builder.WriteString("\n")

	switch {
	case stats.FilesErrored > 0 || stats.SymbolsFailed > 0:
		builder.WriteString(s.Failure.Render("Some symbols could not be resolved"))
	default:
		builder.WriteString(s.Success.Render("All symbols resolved"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// strategyBreakdown formats per-strategy counts, structural first.
func strategyBreakdown(counts map[string]int) string {
	parts := make([]string, 0, len(counts))
	for _, name := range sortedKeys(counts) {
		parts = append(parts, fmt.Sprintf("%d %s", counts[name], name))
	}
	return strings.Join(parts, ", ")
}

// sortedKeys orders strategy and failure names, putting "structural" first.
func sortedKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for key, count := range counts {
		if count > 0 {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i] == "structural" || keys[j] == "structural" {
			return keys[i] == "structural" && keys[j] != "structural"
		}
		return keys[i] < keys[j]
	})
	return keys
}
