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

func fixedClock() Option {
	return WithClock(func() time.Time { return sunday })
}

func newEventExtractor(t *testing.T, resolver EmployeeResolver) *EventExtractor {
	t.Helper()
	e, err := NewEventExtractor(lexicon.Default(), resolver, fixedClock())
	require.NoError(t, err)
	return e
}

func TestEventExtractor_ReferencedEmployee(t *testing.T) {
	e := newEventExtractor(t, staff())

	filter, err := e.Extract(context.Background(), "какие мероприятия посетит иван")
	require.NoError(t, err)

	require.Len(t, filter.All, 1)
	assert.Equal(t, storage.OpHasRef, filter.All[0].Op)

	with := &core.Event{Name: "Планерка", ParticipantIds: []core.ID{1, 2}}
	without := &core.Event{Name: "Демо", ParticipantIds: []core.ID{2}}
	assert.True(t, storage.MatchFilter(storage.EventFields{Event: with}, filter))
	assert.False(t, storage.MatchFilter(storage.EventFields{Event: without}, filter))
}

func TestEventExtractor_TypeKeyword(t *testing.T) {
	e := newEventExtractor(t, staff())

	filter, err := e.Extract(context.Background(), "когда тренинг")
	require.NoError(t, err)

	training := &core.Event{Type: core.EventTraining}
	party := &core.Event{Type: core.EventCorporate}
	assert.True(t, storage.MatchFilter(storage.EventFields{Event: training}, filter))
	assert.False(t, storage.MatchFilter(storage.EventFields{Event: party}, filter))
}

func TestEventExtractor_SeminarMapsToTraining(t *testing.T) {
	e := newEventExtractor(t, staff())

	filter, err := e.Extract(context.Background(), "когда будет следующий семинар")
	require.NoError(t, err)

	training := &core.Event{Type: core.EventTraining}
	assert.True(t, storage.MatchFilter(storage.EventFields{Event: training}, filter))
}

func TestEventExtractor_WeekWindow(t *testing.T) {
	e := newEventExtractor(t, staff())

	filter, err := e.Extract(context.Background(), "что будет на неделе")
	require.NoError(t, err)

	require.Len(t, filter.All, 1)
	cond := filter.All[0]
	assert.Equal(t, storage.OpRange, cond.Op)
	assert.Equal(t, time.Monday, cond.From.Weekday())
	assert.Equal(t, cond.From.AddDate(0, 0, 6), cond.To)

	inWeek := &core.Event{Date: time.Date(2026, time.August, 26, 10, 0, 0, 0, time.Local)}
	nextWeek := &core.Event{Date: time.Date(2026, time.September, 2, 10, 0, 0, 0, time.Local)}
	assert.True(t, storage.MatchFilter(storage.EventFields{Event: inWeek}, filter))
	assert.False(t, storage.MatchFilter(storage.EventFields{Event: nextWeek}, filter))
}

func TestEventExtractor_MonthWindow(t *testing.T) {
	e := newEventExtractor(t, staff())

	filter, err := e.Extract(context.Background(), "что запланировано в этом месяце")
	require.NoError(t, err)

	require.Len(t, filter.All, 1)
	cond := filter.All[0]
	assert.Equal(t, storage.OpRange, cond.Op)
	assert.Equal(t, cond.From.AddDate(0, 0, 30), cond.To)
}

func TestEventExtractor_Fallback(t *testing.T) {
	e := newEventExtractor(t, staff())

	filter, err := e.Extract(context.Background(), "планерка")
	require.NoError(t, err)

	require.Len(t, filter.All, 1)
	assert.Equal(t, storage.OpAnyOf, filter.All[0].Op)

	named := &core.Event{Name: "Планерка команды"}
	other := &core.Event{Name: "Демо"}
	assert.True(t, storage.MatchFilter(storage.EventFields{Event: named}, filter))
	assert.False(t, storage.MatchFilter(storage.EventFields{Event: other}, filter))
}
