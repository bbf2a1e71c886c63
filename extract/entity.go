package extract

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/poiesic/collegium/core"
	"github.com/poiesic/collegium/storage"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tokens shorter than this are prepositions and endings, not names.
const minEntityTokenLen = 4

// lower folds s with Russian casing rules. cases.Caser values carry
// internal state, so extractors running on concurrent queries each
// build their own instead of sharing one.
func lower(s string) string {
	return cases.Lower(language.Russian).String(s)
}

// EmployeeResolver resolves a name fragment to an employee record.
// storage.EmployeeRepository satisfies it.
type EmployeeResolver interface {
	FindEmployeeByNameFragment(ctx context.Context, fragment string) (*core.Employee, error)
}

// referencedEmployee tries every query token of at least
// minEntityTokenLen runes against the store and returns the first
// employee whose name contains one. The first hit in token order wins;
// multiple employees sharing a fragment is an accepted ambiguity.
// Matching is plain substring over the stored nominative name, so
// inflected forms miss: "задачи Ивана" does not resolve to "Иван
// Петров" because "Ивана" is not a substring of the record.
// Returns nil when no token resolves.
func referencedEmployee(ctx context.Context, resolver EmployeeResolver, query string) (*core.Employee, error) {
	for _, token := range strings.Fields(query) {
		if utf8.RuneCountInString(token) < minEntityTokenLen {
			continue
		}
		employee, err := resolver.FindEmployeeByNameFragment(ctx, token)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return nil, err
		}
		return employee, nil
	}
	return nil, nil
}
