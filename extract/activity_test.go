package extract

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/collegium/core"
	"github.com/poiesic/collegium/lexicon"
	"github.com/poiesic/collegium/storage"
)

func newActivityExtractor(t *testing.T, resolver EmployeeResolver) *ActivityExtractor {
	t.Helper()
	e, err := NewActivityExtractor(lexicon.Default(), resolver, fixedClock())
	require.NoError(t, err)
	return e
}

func TestActivityExtractor_AlwaysActiveOnly(t *testing.T) {
	e := newActivityExtractor(t, staff())

	queries := []string{
		"кто хочет поиграть",
		"все активности",
		"чем заняться на неделе",
		"что-нибудь интересное",
	}

	closed := &core.Activity{Name: "Закрытый клуб", IsActive: false}
	for _, q := range queries {
		filter, err := e.Extract(context.Background(), q)
		require.NoError(t, err, "query %q", q)
		assert.False(t, storage.MatchFilter(storage.ActivityFields{Activity: closed}, filter),
			"closed activity must never match, query %q", q)
	}
}

func TestActivityExtractor_ReferencedEmployee(t *testing.T) {
	e := newActivityExtractor(t, staff())

	filter, err := e.Extract(context.Background(), "куда записана мария")
	require.NoError(t, err)

	hers := &core.Activity{IsActive: true, ParticipantIds: []core.ID{2}}
	others := &core.Activity{IsActive: true, ParticipantIds: []core.ID{1}}
	assert.True(t, storage.MatchFilter(storage.ActivityFields{Activity: hers}, filter))
	assert.False(t, storage.MatchFilter(storage.ActivityFields{Activity: others}, filter))
}

func TestActivityExtractor_CatchAll(t *testing.T) {
	e := newActivityExtractor(t, staff())

	filter, err := e.Extract(context.Background(), "покажи все активности")
	require.NoError(t, err)

	require.Len(t, filter.All, 1)
	assert.Equal(t, storage.OpTrue, filter.All[0].Op)
}

func TestActivityExtractor_YogaNarrowsByName(t *testing.T) {
	e := newActivityExtractor(t, staff())

	filter, err := e.Extract(context.Background(), "кто занимается йогой")
	require.NoError(t, err)

	yoga := &core.Activity{Name: "Йога по утрам", Type: core.ActivityTraining, IsActive: true}
	otherTraining := &core.Activity{Name: "Английский язык", Type: core.ActivityTraining, IsActive: true}
	assert.True(t, storage.MatchFilter(storage.ActivityFields{Activity: yoga}, filter))
	assert.False(t, storage.MatchFilter(storage.ActivityFields{Activity: otherTraining}, filter))
}

func TestActivityExtractor_GamesType(t *testing.T) {
	e := newActivityExtractor(t, staff())

	filter, err := e.Extract(context.Background(), "кто хочет поиграть")
	require.NoError(t, err)

	games := &core.Activity{Type: core.ActivityGame, IsActive: true}
	lunch := &core.Activity{Type: core.ActivityLunch, IsActive: true}
	assert.True(t, storage.MatchFilter(storage.ActivityFields{Activity: games}, filter))
	assert.False(t, storage.MatchFilter(storage.ActivityFields{Activity: lunch}, filter))
}

func TestActivityExtractor_EntertainmentFormsFallThrough(t *testing.T) {
	e := newActivityExtractor(t, staff())

	// "кино" belongs to a tag with no activity type behind it, so the
	// query lands in the substring branch instead of a type filter.
	filter, err := e.Extract(context.Background(), "кино")
	require.NoError(t, err)

	movies := &core.Activity{Name: "Вечер кино", IsActive: true}
	sport := &core.Activity{Type: core.ActivitySport, IsActive: true}
	assert.True(t, storage.MatchFilter(storage.ActivityFields{Activity: movies}, filter))
	assert.False(t, storage.MatchFilter(storage.ActivityFields{Activity: sport}, filter))

	// A typed tag alongside it still wins the type branch.
	filter, err = e.Extract(context.Background(), "настольные игры или кино")
	require.NoError(t, err)

	games := &core.Activity{Type: core.ActivityGame, IsActive: true}
	lunch := &core.Activity{Type: core.ActivityLunch, IsActive: true}
	assert.True(t, storage.MatchFilter(storage.ActivityFields{Activity: games}, filter))
	assert.False(t, storage.MatchFilter(storage.ActivityFields{Activity: lunch}, filter))
}

func TestActivityExtractor_WeekWindow(t *testing.T) {
	e := newActivityExtractor(t, staff())

	filter, err := e.Extract(context.Background(), "чем заняться на неделе")
	require.NoError(t, err)

	inWeek := &core.Activity{
		IsActive: true,
		Date:     time.Date(2026, time.August, 28, 19, 0, 0, 0, time.Local),
	}
	nextWeek := &core.Activity{
		IsActive: true,
		Date:     time.Date(2026, time.September, 4, 19, 0, 0, 0, time.Local),
	}
	assert.True(t, storage.MatchFilter(storage.ActivityFields{Activity: inWeek}, filter))
	assert.False(t, storage.MatchFilter(storage.ActivityFields{Activity: nextWeek}, filter))
}

func TestActivityExtractor_Fallback(t *testing.T) {
	e := newActivityExtractor(t, staff())

	filter, err := e.Extract(context.Background(), "шахматы")
	require.NoError(t, err)

	named := &core.Activity{Name: "Турнир по шахматам", IsActive: true}
	assert.False(t, storage.MatchFilter(storage.ActivityFields{Activity: named}, filter),
		"inflected name does not contain the query verbatim")

	tagged := &core.Activity{Name: "Клуб", Tags: "шахматы, логика", IsActive: true}
	assert.True(t, storage.MatchFilter(storage.ActivityFields{Activity: tagged}, filter))
}
