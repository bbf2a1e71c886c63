package collegium

import "errors"

var (
	// ErrAssistantRequired is returned when a nil assistant is passed to a constructor.
	ErrAssistantRequired = errors.New("assistant is required")
	// ErrLexiconRequired is returned when a nil lexicon is passed to a constructor.
	ErrLexiconRequired = errors.New("lexicon is required")
	// ErrEmployeeRepositoryRequired is returned when the employee repository is nil.
	ErrEmployeeRepositoryRequired = errors.New("employee repository is required")
	// ErrEventRepositoryRequired is returned when the event repository is nil.
	ErrEventRepositoryRequired = errors.New("event repository is required")
	// ErrTaskRepositoryRequired is returned when the task repository is nil.
	ErrTaskRepositoryRequired = errors.New("task repository is required")
	// ErrActivityRepositoryRequired is returned when the activity repository is nil.
	ErrActivityRepositoryRequired = errors.New("activity repository is required")
)
