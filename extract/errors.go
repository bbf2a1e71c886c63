package extract

import "errors"

var (
	// ErrLexiconRequired is returned when a lexicon is not provided.
	ErrLexiconRequired = errors.New("lexicon required")

	// ErrResolverRequired is returned when an employee resolver is not provided.
	ErrResolverRequired = errors.New("employee resolver required")
)
