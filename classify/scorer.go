package classify

import (
	"strings"

	"github.com/poiesic/collegium/core"
	"github.com/poiesic/collegium/lexicon"
)

// Match weights for the rule scorer. Scores accumulate additively with no
// cap, so a query hitting many signals for one category can exceed 1.0.
const (
	keywordHitWeight    = 0.4
	keywordPrefixWeight = 0.2
	synonymHitWeight    = 0.3
	synonymPrefixWeight = 0.15
	exampleHitWeight    = 0.6
	exampleTokenWeight  = 0.3

	skillBonus        = 1.0
	roleBonus         = 0.8
	departmentBonus   = 0.8
	timePeriodBonus   = 1.0
	eventTypeBonus    = 0.8
	taskStatusBonus   = 1.0
	priorityBonus     = 0.8
	activityTypeBonus = 0.8
)

// Scorer computes rule-based match scores between a normalized query and
// a category. Stateless apart from the shared read-only lexicon.
type Scorer struct {
	lex *lexicon.Lexicon
}

// NewScorer creates a scorer over the given lexicon.
func NewScorer(lex *lexicon.Lexicon) (*Scorer, error) {
	if lex == nil {
		return nil, ErrLexiconRequired
	}
	return &Scorer{lex: lex}, nil
}

// Score returns a non-negative match score for the query against one
// category. The query must already be normalized.
func (s *Scorer) Score(query string, c core.Category) float64 {
	entry := s.lex.Entry(c)
	tokens := strings.Fields(query)

	score := 0.0

	for _, keyword := range entry.Keywords {
		switch {
		case strings.Contains(query, keyword):
			score += keywordHitWeight
		case anyPrefixRelation(tokens, keyword):
			score += keywordPrefixWeight
		}
	}

	for _, synonym := range entry.Synonyms {
		switch {
		case strings.Contains(query, synonym):
			score += synonymHitWeight
		case anyPrefixRelation(tokens, synonym):
			score += synonymPrefixWeight
		}
	}

	for _, example := range entry.Examples {
		switch {
		case strings.Contains(query, example):
			score += exampleHitWeight
		case anyTokenIn(tokens, example):
			score += exampleTokenWeight
		}
	}

	switch c {
	case core.CategoryEmployeeSearch:
		score += dictBonus(query, s.lex.Skills(), skillBonus)
		score += dictBonus(query, s.lex.Roles(), roleBonus)
		score += dictBonus(query, s.lex.Departments(), departmentBonus)
	case core.CategoryEventInfo:
		score += dictBonus(query, s.lex.TimePeriods(), timePeriodBonus)
		score += dictBonus(query, s.lex.EventTypes(), eventTypeBonus)
	case core.CategoryTaskInfo:
		score += dictBonus(query, s.lex.TaskStatuses(), taskStatusBonus)
		score += dictBonus(query, s.lex.Priorities(), priorityBonus)
	case core.CategorySocialActivity:
		score += dictBonus(query, s.lex.ActivityTypes(), activityTypeBonus)
	}

	return score
}

// dictBonus adds weight once per tag whose surface forms hit the query.
func dictBonus(query string, d lexicon.Dict, weight float64) float64 {
	bonus := 0.0
	for _, forms := range d {
		for _, form := range forms {
			if strings.Contains(query, form) {
				bonus += weight
				break
			}
		}
	}
	return bonus
}

// anyPrefixRelation reports whether any token and the term share a prefix
// relation in either direction.
func anyPrefixRelation(tokens []string, term string) bool {
	for _, token := range tokens {
		if strings.HasPrefix(token, term) || strings.HasPrefix(term, token) {
			return true
		}
	}
	return false
}

// anyTokenIn reports whether any query token occurs inside the phrase.
func anyTokenIn(tokens []string, phrase string) bool {
	for _, token := range tokens {
		if strings.Contains(phrase, token) {
			return true
		}
	}
	return false
}
