package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/luaoutline/internal/ui/pretty"
	"github.com/yaklabco/luaoutline/pkg/runner"
)

func TestFormatSummary_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesRequested:     3,
		FilesProcessed:     3,
		SymbolsTotal:       9,
		SymbolsResolved:    7,
		SymbolsFailed:      2,
		ResolvedByStrategy: map[string]int{"heuristic": 2, "structural": 5},
		FailedByKind:       map[string]int{"body-unresolvable": 2},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Files processed:   3")
	assert.Contains(t, result, "Symbols:           9")
	assert.Contains(t, result, "Resolved:        7")
	assert.Contains(t, result, "structural:     5")
	assert.Contains(t, result, "Unresolved:      2")
	assert.Contains(t, result, "body-unresolvable:")
	assert.Contains(t, result, "Some symbols could not be resolved")
	assert.NotContains(t, result, "Files with errors:")
}

func TestFormatSummary_AllResolved(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesRequested:     1,
		FilesProcessed:     1,
		SymbolsTotal:       2,
		SymbolsResolved:    2,
		ResolvedByStrategy: map[string]int{"heuristic": 2},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "All symbols resolved")
	assert.NotContains(t, result, "Unresolved:")
}

func TestFormatSummary_FileErrors(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummary(runner.Stats{FilesRequested: 2, FilesProcessed: 1, FilesErrored: 1})

	assert.Contains(t, result, "Files with errors: 1")
	assert.Contains(t, result, "Some symbols could not be resolved")
}

func TestFormatSummaryOneLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name  string
		stats runner.Stats
		want  string
	}{
		{
			name: "structural first",
			stats: runner.Stats{
				FilesRequested:     2,
				SymbolsResolved:    5,
				ResolvedByStrategy: map[string]int{"heuristic": 2, "structural": 3},
			},
			want: "5 symbols resolved (3 structural, 2 heuristic) in 2 files\n",
		},
		{
			name: "single symbol and failures",
			stats: runner.Stats{
				FilesRequested:     1,
				FilesErrored:       1,
				SymbolsResolved:    1,
				SymbolsFailed:      4,
				ResolvedByStrategy: map[string]int{"heuristic": 1},
			},
			want: "1 symbol resolved (1 heuristic), 4 unresolved, 1 unreadable in 1 file\n",
		},
		{
			name:  "nothing resolved",
			stats: runner.Stats{FilesRequested: 0},
			want:  "0 symbols resolved in 0 files\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats))
		})
	}
}
