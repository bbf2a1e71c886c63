package lexicon

import (
	"sort"
	"strings"
	"testing"

	"github.com/poiesic/collegium/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_AllScoreableCategoriesHaveEntries(t *testing.T) {
	lex := Default()

	for _, c := range core.Categories {
		entry := lex.Entry(c)
		assert.NotEmpty(t, entry.Keywords, "category %s has no keywords", c.Label())
		assert.NotEmpty(t, entry.Synonyms, "category %s has no synonyms", c.Label())
		assert.NotEmpty(t, entry.Examples, "category %s has no examples", c.Label())
	}
}

func TestDefault_UnclassifiedHasNoEntry(t *testing.T) {
	lex := Default()
	entry := lex.Entry(core.CategoryUnclassified)
	assert.Empty(t, entry.Keywords)
}

func TestDefault_SurfaceFormsAreLowercase(t *testing.T) {
	lex := Default()

	dicts := map[string]Dict{
		"skills":        lex.Skills(),
		"roles":         lex.Roles(),
		"departments":   lex.Departments(),
		"interests":     lex.Interests(),
		"timePeriods":   lex.TimePeriods(),
		"eventTypes":    lex.EventTypes(),
		"taskStatuses":  lex.TaskStatuses(),
		"priorities":    lex.Priorities(),
		"activityTypes": lex.ActivityTypes(),
	}

	for name, dict := range dicts {
		t.Run(name, func(t *testing.T) {
			require.NotEmpty(t, dict)
			for tag, forms := range dict {
				require.NotEmpty(t, forms, "tag %s has no surface forms", tag)
				for _, form := range forms {
					assert.Equal(t, strings.ToLower(form), form,
						"%s: surface form %q of tag %q is not lowercase", name, form, tag)
				}
			}
		})
	}
}

func TestDict_TagsSorted(t *testing.T) {
	lex := Default()
	tags := lex.Skills().Tags()
	require.NotEmpty(t, tags)
	assert.True(t, sort.StringsAreSorted(tags))

	// Repeated calls return the same order.
	assert.Equal(t, tags, lex.Skills().Tags())
}

func TestDefault_TimePeriodTags(t *testing.T) {
	periods := Default().TimePeriods()
	for _, tag := range []string{"today", "tomorrow", "week", "month"} {
		assert.Contains(t, periods, tag)
	}
}

func TestDefault_StatusAndPriorityTags(t *testing.T) {
	lex := Default()
	for _, tag := range []string{"todo", "in_progress", "done", "blocked"} {
		assert.Contains(t, lex.TaskStatuses(), tag)
	}
	for _, tag := range []string{"high", "medium", "low"} {
		assert.Contains(t, lex.Priorities(), tag)
	}
}
