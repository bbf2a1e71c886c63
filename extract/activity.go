package extract

import (
	"context"
	"strings"
	"time"

	"github.com/poiesic/collegium/core"
	"github.com/poiesic/collegium/lexicon"
	"github.com/poiesic/collegium/storage"
)

var activityTypeByTag = map[string]core.ActivityType{
	"yoga":  core.ActivityTraining,
	"games": core.ActivityGame,
	"lunch": core.ActivityLunch,
	"sport": core.ActivitySport,
}

// ActivityExtractor turns social activity queries into activity filters.
// Every filter it produces includes the is-active condition: closed
// activities are never offered.
type ActivityExtractor struct {
	lex      *lexicon.Lexicon
	resolver EmployeeResolver
	now      func() time.Time
}

// NewActivityExtractor creates an activity extractor.
func NewActivityExtractor(lex *lexicon.Lexicon, resolver EmployeeResolver, opts ...Option) (*ActivityExtractor, error) {
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

	return &ActivityExtractor{lex: lex, resolver: resolver, now: cfg.now}, nil
}

// Extract builds a filter for the query. Branches are mutually exclusive
// in priority order: referenced employee, catch-all "все", activity-type
// keyword, week window, month window, then the substring fallback.
func (a *ActivityExtractor) Extract(ctx context.Context, query string) (storage.Filter, error) {
	q := lower(query)
	active := storage.IsTrue(storage.FieldActive)

	employee, err := referencedEmployee(ctx, a.resolver, q)
	if err != nil {
		return storage.Filter{}, err
	}
	if employee != nil {
		return storage.Filter{All: []storage.Condition{
			active,
			storage.HasRef(storage.FieldParticipants, employee.Id),
		}}, nil
	}

	if strings.Contains(q, "все") {
		return storage.Filter{All: []storage.Condition{active}}, nil
	}

	// First matched type wins, in Tags() order. Tags like "развлечения"
	// exist only to score social queries and map to no activity type;
	// those fall through to the later branches.
	for _, tag := range matchedTags(q, a.lex.ActivityTypes()) {
		activityType, ok := activityTypeByTag[tag]
		if !ok {
			continue
		}
		filter := storage.Filter{All: []storage.Condition{
			active,
			storage.Equals(storage.FieldType, activityType.Label()),
		}}
		// Yoga shares the training type with other activities and is
		// narrowed down by name
		if tag == "yoga" {
			filter = filter.And(storage.Contains(storage.FieldName, "йога"))
		}
		return filter, nil
	}

	if hasPeriod(a.lex, q, "week") {
		w := WeekWindow(a.now())
		return storage.Filter{All: []storage.Condition{
			active,
			storage.Between(storage.FieldDate, w.From, w.To),
		}}, nil
	}
	if hasPeriod(a.lex, q, "month") {
		w := MonthWindow(a.now())
		return storage.Filter{All: []storage.Condition{
			active,
			storage.Between(storage.FieldDate, w.From, w.To),
		}}, nil
	}

	return storage.Filter{All: []storage.Condition{active, storage.AnyOf(
		storage.Contains(storage.FieldName, q),
		storage.Contains(storage.FieldDescription, q),
		storage.Contains(storage.FieldType, q),
		storage.Contains(storage.FieldTags, q),
	)}}, nil
}
