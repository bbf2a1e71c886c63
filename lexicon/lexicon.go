package lexicon

import (
	"sort"

	"github.com/poiesic/collegium/core"
)

// Entry holds the keyword, synonym and example phrase lists for one category.
type Entry struct {
	Keywords []string
	Synonyms []string
	Examples []string
}

// Dict maps a canonical tag to its lowercase surface forms.
// Duplicate surface forms across dictionaries are tolerated; match
// scores simply accumulate.
type Dict map[string][]string

// Tags returns the dictionary tags in sorted order.
// Extraction walks tags in this order so that first-match behavior
// stays deterministic.
func (d Dict) Tags() []string {
	tags := make([]string, 0, len(d))
	for tag := range d {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Lexicon is the static per-category classification data plus the
// secondary dictionaries shared with the attribute extractors.
// It is read-only after construction and safe for concurrent use.
type Lexicon struct {
	entries map[core.Category]Entry

	skills        Dict
	roles         Dict
	departments   Dict
	interests     Dict
	timePeriods   Dict
	eventTypes    Dict
	taskStatuses  Dict
	priorities    Dict
	activityTypes Dict
}

// Entry returns the lexicon entry for a category.
// The zero Entry is returned for categories without one.
func (l *Lexicon) Entry(c core.Category) Entry {
	return l.entries[c]
}

// Skills returns the technology skill dictionary (tag -> surface forms).
func (l *Lexicon) Skills() Dict { return l.skills }

// Roles returns the role/position dictionary.
func (l *Lexicon) Roles() Dict { return l.roles }

// Departments returns the department dictionary.
func (l *Lexicon) Departments() Dict { return l.departments }

// Interests returns the personal interest dictionary. Tags double as the
// substring searched in the employee interests field.
func (l *Lexicon) Interests() Dict { return l.interests }

// TimePeriods returns the temporal cue dictionary
// (tags: today, tomorrow, week, month).
func (l *Lexicon) TimePeriods() Dict { return l.timePeriods }

// EventTypes returns the event type dictionary.
func (l *Lexicon) EventTypes() Dict { return l.eventTypes }

// TaskStatuses returns the task status dictionary
// (tags: todo, in_progress, done, blocked).
func (l *Lexicon) TaskStatuses() Dict { return l.taskStatuses }

// Priorities returns the task priority dictionary
// (tags: high, medium, low).
func (l *Lexicon) Priorities() Dict { return l.priorities }

// ActivityTypes returns the social activity dictionary.
func (l *Lexicon) ActivityTypes() Dict { return l.activityTypes }
