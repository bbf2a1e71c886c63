package extract

import (
	"context"
	"time"

	"github.com/poiesic/collegium/core"
	"github.com/poiesic/collegium/lexicon"
	"github.com/poiesic/collegium/storage"
)

var eventTypeByTag = map[string]core.EventType{
	"meeting":    core.EventMeeting,
	"training":   core.EventTraining,
	"conference": core.EventConference,
	"corporate":  core.EventCorporate,
	"birthday":   core.EventBirthday,
}

// EventExtractor turns event queries into event filters.
type EventExtractor struct {
	lex      *lexicon.Lexicon
	resolver EmployeeResolver
	now      func() time.Time
}

// NewEventExtractor creates an event extractor.
func NewEventExtractor(lex *lexicon.Lexicon, resolver EmployeeResolver, opts ...Option) (*EventExtractor, error) {
	if lex == nil {
		return nil, ErrLexiconRequired
	}
	if resolver == nil {
		return nil, ErrResolverRequired
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &EventExtractor{lex: lex, resolver: resolver, now: cfg.now}, nil
}

// Extract builds a filter for the query. Branches are mutually exclusive
// in priority order: referenced employee, event-type keyword, week
// window, month window; only when none fires does the whole query become
// a substring scan over the text fields.
func (e *EventExtractor) Extract(ctx context.Context, query string) (storage.Filter, error) {
	q := lower(query)

	employee, err := referencedEmployee(ctx, e.resolver, q)
	if err != nil {
		return storage.Filter{}, err
	}
	if employee != nil {
		return storage.Filter{All: []storage.Condition{
			storage.HasRef(storage.FieldParticipants, employee.Id),
		}}, nil
	}

	if tags := matchedTags(q, e.lex.EventTypes()); len(tags) > 0 {
		conds := make([]storage.Condition, 0, len(tags))
		for _, tag := range tags {
			conds = append(conds, storage.Equals(storage.FieldType, eventTypeByTag[tag].Label()))
		}
		return storage.Filter{All: []storage.Condition{orGroup(conds...)}}, nil
	}

	// Week takes precedence over month: "на этой неделе в этом месяце"
	// reads as a week question.
	if hasPeriod(e.lex, q, "week") {
		w := WeekWindow(e.now())
		return storage.Filter{All: []storage.Condition{
			storage.Between(storage.FieldDate, w.From, w.To),
		}}, nil
	}
	if hasPeriod(e.lex, q, "month") {
		w := MonthWindow(e.now())
		return storage.Filter{All: []storage.Condition{
			storage.Between(storage.FieldDate, w.From, w.To),
		}}, nil
	}

	return storage.Filter{All: []storage.Condition{storage.AnyOf(
		storage.Contains(storage.FieldName, q),
		storage.Contains(storage.FieldType, q),
		storage.Contains(storage.FieldDescription, q),
	)}}, nil
}
