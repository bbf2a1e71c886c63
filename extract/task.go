package extract

import (
	"context"
	"strings"
	"time"

	"github.com/poiesic/collegium/core"
	"github.com/poiesic/collegium/lexicon"
	"github.com/poiesic/collegium/storage"
)

var taskStatusByTag = map[string]core.TaskStatus{
	"todo":        core.TaskTodo,
	"in_progress": core.TaskInProgress,
	"done":        core.TaskDone,
	"blocked":     core.TaskBlocked,
}

var priorityByTag = map[string]core.Priority{
	"high":   core.PriorityHigh,
	"medium": core.PriorityMedium,
	"low":    core.PriorityLow,
}

// TaskExtractor turns task queries into task filters.
// Unlike the event and activity extractors it accumulates conditions:
// assignee, status, priority, deadline and tag cues all AND together, so
// "какие задачи в работе у Ивана" filters on both the status and the
// assignee.
type TaskExtractor struct {
	lex      *lexicon.Lexicon
	resolver EmployeeResolver
	now      func() time.Time
}

// NewTaskExtractor creates a task extractor.
func NewTaskExtractor(lex *lexicon.Lexicon, resolver EmployeeResolver, opts ...Option) (*TaskExtractor, error) {
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

	return &TaskExtractor{lex: lex, resolver: resolver, now: cfg.now}, nil
}

// Extract builds a filter for the query.
func (t *TaskExtractor) Extract(ctx context.Context, query string) (storage.Filter, error) {
	q := lower(query)

	var filter storage.Filter

	employee, err := referencedEmployee(ctx, t.resolver, q)
	if err != nil {
		return storage.Filter{}, err
	}
	if employee != nil {
		filter = filter.And(storage.HasRef(storage.FieldAssignee, employee.Id))
	}

	if tags := matchedTags(q, t.lex.TaskStatuses()); len(tags) > 0 {
		conds := make([]storage.Condition, 0, len(tags))
		for _, tag := range tags {
			conds = append(conds, storage.Equals(storage.FieldStatus, taskStatusByTag[tag].Label()))
		}
		filter = filter.And(orGroup(conds...))
	}

	if tags := matchedTags(q, t.lex.Priorities()); len(tags) > 0 {
		conds := make([]storage.Condition, 0, len(tags))
		for _, tag := range tags {
			conds = append(conds, storage.Equals(storage.FieldPriority, priorityByTag[tag].Label()))
		}
		filter = filter.And(orGroup(conds...))
	}

	if w, ok := t.deadlineWindow(q); ok {
		filter = filter.And(storage.Between(storage.FieldDeadline, w.From, w.To))
	}

	if tag, ok := tagCapture(q); ok {
		filter = filter.And(storage.Contains(storage.FieldTags, tag))
	}

	if len(filter.All) == 0 {
		filter = filter.And(storage.AnyOf(
			storage.Contains(storage.FieldTitle, q),
			storage.Contains(storage.FieldDescription, q),
			storage.Contains(storage.FieldTags, q),
		))
	}

	return filter, nil
}

// deadlineWindow resolves the first matching temporal cue, in priority
// order today, tomorrow, week, month.
func (t *TaskExtractor) deadlineWindow(q string) (Window, bool) {
	switch {
	case hasPeriod(t.lex, q, "today"):
		return TodayWindow(t.now()), true
	case hasPeriod(t.lex, q, "tomorrow"):
		return TomorrowWindow(t.now()), true
	case hasPeriod(t.lex, q, "week"):
		return WeekWindow(t.now()), true
	case hasPeriod(t.lex, q, "month"):
		return MonthWindow(t.now()), true
	}
	return Window{}, false
}

// tagCapture treats everything after the last literal "тег" as a
// verbatim tag substring: "тег backend" captures "backend". Inflected
// forms capture their ending too ("тегом backend" -> "ом backend"), a
// known limitation of the keyword approach.
func tagCapture(q string) (string, bool) {
	idx := strings.LastIndex(q, "тег")
	if idx < 0 {
		return "", false
	}
	tag := strings.TrimSpace(q[idx+len("тег"):])
	if tag == "" {
		return "", false
	}
	return tag, true
}
