package storage

import (
	"strings"
	"time"

	"github.com/poiesic/collegium/core"
)

// Field identifies a record attribute a condition applies to.
// Fields are interpreted by each record kind's FieldReader; a field a
// record kind does not expose reads as the zero value and the condition
// simply fails to match.
type Field string

const (
	FieldName       Field = "name"
	FieldTitle      Field = "title"
	FieldPosition   Field = "position"
	FieldDepartment Field = "department"
	FieldEmail      Field = "email"
	FieldSkills     Field = "skills"
	FieldInterests  Field = "interests"
	FieldBio        Field = "bio"

	FieldType        Field = "type"
	FieldStatus      Field = "status"
	FieldPriority    Field = "priority"
	FieldDescription Field = "description"
	FieldLocation    Field = "location"
	FieldTags        Field = "tags"

	FieldDate     Field = "date"
	FieldDeadline Field = "deadline"

	FieldAssignee     Field = "assignee"
	FieldParticipants Field = "participants"

	FieldActive Field = "active"
)

// Op is the comparison a condition performs.
type Op int

const (
	// OpContains matches when the condition value occurs as a
	// case-insensitive substring of the field.
	OpContains Op = iota + 1
	// OpEquals matches on case-insensitive string equality.
	OpEquals
	// OpRange matches when the field's date falls inside the closed
	// range [From, To], compared at day granularity.
	OpRange
	// OpHasRef matches when the field's reference set contains Ref.
	OpHasRef
	// OpAnyOf matches when at least one nested condition matches.
	OpAnyOf
	// OpTrue matches when the boolean field is true.
	OpTrue
)

// Condition is one typed predicate over a record attribute.
type Condition struct {
	Field Field
	Op    Op

	Value    string
	From, To time.Time
	Ref      core.ID
	Any      []Condition
}

// Filter is a conjunction of conditions. The empty filter matches every
// record. Disjunction exists only through OpAnyOf groups nested inside
// the conjunction.
type Filter struct {
	All []Condition
}

// And returns a copy of the filter with extra conditions appended.
func (f Filter) And(conds ...Condition) Filter {
	all := make([]Condition, 0, len(f.All)+len(conds))
	all = append(all, f.All...)
	all = append(all, conds...)
	return Filter{All: all}
}

// Contains builds a case-insensitive substring condition.
func Contains(field Field, value string) Condition {
	return Condition{Field: field, Op: OpContains, Value: value}
}

// Equals builds a case-insensitive equality condition.
func Equals(field Field, value string) Condition {
	return Condition{Field: field, Op: OpEquals, Value: value}
}

// Between builds a closed date-range condition. Both bounds are
// inclusive and compared at day granularity.
func Between(field Field, from, to time.Time) Condition {
	return Condition{Field: field, Op: OpRange, From: from, To: to}
}

// HasRef builds a reference-membership condition.
func HasRef(field Field, ref core.ID) Condition {
	return Condition{Field: field, Op: OpHasRef, Ref: ref}
}

// AnyOf builds a disjunction of conditions.
func AnyOf(conds ...Condition) Condition {
	return Condition{Op: OpAnyOf, Any: conds}
}

// IsTrue builds a boolean condition.
func IsTrue(field Field) Condition {
	return Condition{Field: field, Op: OpTrue}
}

// FieldReader exposes a record's attributes to filter evaluation.
// Unknown fields read as zero values.
type FieldReader interface {
	StringField(f Field) string
	TimeField(f Field) time.Time
	RefsField(f Field) []core.ID
	BoolField(f Field) bool
}

// MatchFilter reports whether the record satisfies every condition of
// the filter.
func MatchFilter(r FieldReader, f Filter) bool {
	for _, cond := range f.All {
		if !matchCondition(r, cond) {
			return false
		}
	}
	return true
}

func matchCondition(r FieldReader, cond Condition) bool {
	switch cond.Op {
	case OpContains:
		return strings.Contains(
			strings.ToLower(r.StringField(cond.Field)),
			strings.ToLower(cond.Value))
	case OpEquals:
		return strings.EqualFold(r.StringField(cond.Field), cond.Value)
	case OpRange:
		day := truncateToDay(r.TimeField(cond.Field))
		return !day.Before(truncateToDay(cond.From)) && !day.After(truncateToDay(cond.To))
	case OpHasRef:
		for _, ref := range r.RefsField(cond.Field) {
			if ref == cond.Ref {
				return true
			}
		}
		return false
	case OpAnyOf:
		for _, sub := range cond.Any {
			if matchCondition(r, sub) {
				return true
			}
		}
		return false
	case OpTrue:
		return r.BoolField(cond.Field)
	}
	return false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
