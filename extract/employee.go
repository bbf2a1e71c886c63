package extract

import (
	"strings"

	"github.com/poiesic/collegium/lexicon"
	"github.com/poiesic/collegium/storage"
)

// EmployeeExtractor turns people queries into employee filters.
// It is the only extractor without store access: employee queries name
// criteria, not other records.
type EmployeeExtractor struct {
	lex *lexicon.Lexicon
}

// NewEmployeeExtractor creates an employee extractor.
func NewEmployeeExtractor(lex *lexicon.Lexicon) (*EmployeeExtractor, error) {
	if lex == nil {
		return nil, ErrLexiconRequired
	}
	return &EmployeeExtractor{lex: lex}, nil
}

// Extract builds a filter from skill, interest, role and department cues.
//
// Within one dictionary, multiple matched tags become an OR-group; the
// groups of different dictionaries are ANDed. A query asking for "все" /
// "всех" returns the empty filter, which matches every employee. When
// nothing matches at all, the whole query becomes one OR-group substring
// scan over the text fields.
func (e *EmployeeExtractor) Extract(query string) storage.Filter {
	q := lower(query)

	if strings.Contains(q, "все") {
		return storage.Filter{}
	}

	var filter storage.Filter

	if tags := matchedTags(q, e.lex.Skills()); len(tags) > 0 {
		conds := make([]storage.Condition, 0, len(tags))
		for _, tag := range tags {
			conds = append(conds, storage.Contains(storage.FieldSkills, tag))
		}
		filter = filter.And(orGroup(conds...))
	}

	// Interest tags double as the stored substring
	if tags := matchedTags(q, e.lex.Interests()); len(tags) > 0 {
		conds := make([]storage.Condition, 0, len(tags))
		for _, tag := range tags {
			conds = append(conds, storage.Contains(storage.FieldInterests, tag))
		}
		filter = filter.And(orGroup(conds...))
	}

	if cond, ok := surfaceFormGroup(q, e.lex.Roles(), storage.FieldPosition); ok {
		filter = filter.And(cond)
	}

	if cond, ok := surfaceFormGroup(q, e.lex.Departments(), storage.FieldDepartment); ok {
		filter = filter.And(cond)
	}

	if len(filter.All) == 0 {
		filter = filter.And(storage.AnyOf(
			storage.Contains(storage.FieldName, q),
			storage.Contains(storage.FieldPosition, q),
			storage.Contains(storage.FieldDepartment, q),
			storage.Contains(storage.FieldInterests, q),
			storage.Contains(storage.FieldSkills, q),
		))
	}

	return filter
}

// surfaceFormGroup builds an OR-group probing the field with every
// surface form of every matched tag. Records store free-form text
// ("Старший разработчик"), so any of the tag's spellings may be the one
// that appears there.
func surfaceFormGroup(query string, d lexicon.Dict, field storage.Field) (storage.Condition, bool) {
	tags := matchedTags(query, d)
	if len(tags) == 0 {
		return storage.Condition{}, false
	}
	var conds []storage.Condition
	for _, tag := range tags {
		for _, form := range d[tag] {
			conds = append(conds, storage.Contains(field, form))
		}
	}
	return orGroup(conds...), true
}
