package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petzku/qc2md/internal/core/domain"
)

func note(time, category, text string) domain.Annotation {
	return domain.Annotation{Time: time, Category: category, Text: text}
}

// TestCategorize_Flat groups by category verbatim
func TestCategorize_Flat(t *testing.T) {
	entries := []domain.Annotation{
		note("00:01:00", "Phrasing", "first"),
		note("00:02:00", "Typeset", "second"),
		note("00:03:00", "Phrasing", "third"),
	}

	groups := Categorize(entries, false)

	require.Len(t, groups, 2)
	assert.Equal(t, []domain.Annotation{entries[0], entries[2]}, groups["Phrasing"])
	assert.Equal(t, []domain.Annotation{entries[1]}, groups["Typeset"])
}

// TestCategorize_Collapsed merges everything except standalone categories
// into the Script bucket
func TestCategorize_Collapsed(t *testing.T) {
	entries := []domain.Annotation{
		note("00:01:00", "Phrasing", "a"),
		note("00:02:00", "Typeset", "b"),
		note("00:03:00", "Grammar", "c"),
		note("00:04:00", "Timing", "d"),
		note("00:05:00", "Encode", "e"),
		note("00:06:00", "Nitpick", "f"),
	}

	groups := Categorize(entries, true)

	require.Len(t, groups, 4)
	assert.Equal(t, []string{"Encode", "Script", "Timing", "Typeset"}, groups.Keys())

	// Non-standalone entries keep chronological report order inside Script.
	script := groups[domain.CollapsedGroup]
	require.Len(t, script, 3)
	assert.Equal(t, "a", script[0].Text)
	assert.Equal(t, "c", script[1].Text)
	assert.Equal(t, "f", script[2].Text)
}

// TestCategorize_CollapsedScriptCategory keeps a literal Script category in
// the same bucket it would collapse into
func TestCategorize_CollapsedScriptCategory(t *testing.T) {
	entries := []domain.Annotation{
		note("00:01:00", "Script", "explicit"),
		note("00:02:00", "Phrasing", "merged"),
	}

	groups := Categorize(entries, true)

	require.Len(t, groups, 1)
	assert.Len(t, groups["Script"], 2)
}

// TestCategorize_Deterministic produces the same grouping on repeat runs
func TestCategorize_Deterministic(t *testing.T) {
	entries := []domain.Annotation{
		note("00:01:00", "Phrasing", "a"),
		note("00:02:00", "Timing", "b"),
		note("00:03:00", "Phrasing", "c"),
	}

	first := Categorize(entries, true)
	second := Categorize(entries, true)

	assert.Equal(t, first, second)
}

// TestCategorize_Empty yields no groups
func TestCategorize_Empty(t *testing.T) {
	assert.Empty(t, Categorize(nil, false))
	assert.Empty(t, Categorize(nil, true))
}
