package forms

import "errors"

var (
	// ErrMissingField is returned when a required template line is absent or empty.
	ErrMissingField = errors.New("required field is missing")
	// ErrInvalidDate is returned when a date is not in дд.мм.гггг form.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidTime is returned when a time is not in чч:мм form.
	ErrInvalidTime = errors.New("invalid time")
	// ErrInvalidPriority is returned for priorities outside высокий/средний/низкий.
	ErrInvalidPriority = errors.New("invalid priority")
	// ErrInvalidActivityType is returned for unknown activity types.
	ErrInvalidActivityType = errors.New("invalid activity type")
	// ErrInvalidNumber is returned when a numeric field does not parse.
	ErrInvalidNumber = errors.New("invalid number")
)
