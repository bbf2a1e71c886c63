package forms

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/poiesic/collegium/core"
)

// dateLayout is the дд.мм.гггг form users type.
const dateLayout = "02.01.2006"

// timeLayout is the чч:мм form users type.
const timeLayout = "15:04"

// lower folds s with Russian casing rules. cases.Caser values carry
// internal state and are built per call rather than shared.
func lower(s string) string {
	return cases.Lower(language.Russian).String(s)
}

// TaskForm holds the parsed fields of a task creation template:
//
//	Создать задачу: [название]
//	Описание: [описание]
//	Исполнитель: [имя]
//	Срок: [дд.мм.гггг]
//	Приоритет: [высокий/средний/низкий]
//	Теги: [тег1, тег2]
//
// Assignee is the raw name fragment, resolution against storage is the
// caller's job.
type TaskForm struct {
	Title       string
	Description string
	Assignee    string
	Deadline    time.Time
	Priority    core.Priority
	Tags        string
}

// ActivityForm holds the parsed fields of an activity creation template:
//
//	Создать активность: [название]
//	Тип: [игра/обед/тренинг]
//	Дата: [дд.мм.гггг]
//	Время: [чч:мм]
//	Место: [место]
//	Описание: [описание]
//	Макс. участников: [число]
//
// Date carries the time of day when a Время line is present.
type ActivityForm struct {
	Name            string
	Type            core.ActivityType
	Date            time.Time
	Location        string
	Description     string
	MaxParticipants int
}

// ParseTaskForm parses a task creation message.
// Title, assignee and deadline are required.
func ParseTaskForm(text string) (*TaskForm, error) {
	form := &TaskForm{}
	var haveDeadline bool

	for key, value := range fields(text) {
		switch {
		case strings.Contains(key, "название") || strings.Contains(key, "задачу"):
			form.Title = value
		case strings.Contains(key, "описание"):
			form.Description = value
		case strings.Contains(key, "исполнитель"):
			form.Assignee = value
		case strings.Contains(key, "срок"):
			deadline, err := time.ParseInLocation(dateLayout, value, time.Local)
			if err != nil {
				return nil, fmt.Errorf("%w: срок %q", ErrInvalidDate, value)
			}
			form.Deadline = deadline
			haveDeadline = true
		case strings.Contains(key, "приоритет"):
			priority := core.ParsePriority(lower(value))
			if priority == 0 {
				return nil, fmt.Errorf("%w: приоритет %q", ErrInvalidPriority, value)
			}
			form.Priority = priority
		case strings.Contains(key, "теги"):
			form.Tags = value
		}
	}

	switch {
	case form.Title == "":
		return nil, fmt.Errorf("%w: название", ErrMissingField)
	case form.Assignee == "":
		return nil, fmt.Errorf("%w: исполнитель", ErrMissingField)
	case !haveDeadline:
		return nil, fmt.Errorf("%w: срок", ErrMissingField)
	}

	return form, nil
}

// ParseActivityForm parses an activity creation message.
// Name, type, date, time and location are required.
func ParseActivityForm(text string) (*ActivityForm, error) {
	form := &ActivityForm{}
	var haveDate, haveTime bool
	var clock time.Time

	for key, value := range fields(text) {
		switch {
		case strings.Contains(key, "название") || strings.Contains(key, "активность"):
			form.Name = value
		case strings.Contains(key, "тип"):
			activityType := core.ParseActivityType(lower(value))
			if activityType == 0 {
				return nil, fmt.Errorf("%w: тип %q", ErrInvalidActivityType, value)
			}
			form.Type = activityType
		case strings.Contains(key, "дата"):
			date, err := time.ParseInLocation(dateLayout, value, time.Local)
			if err != nil {
				return nil, fmt.Errorf("%w: дата %q", ErrInvalidDate, value)
			}
			form.Date = date
			haveDate = true
		case strings.Contains(key, "время"):
			parsed, err := time.Parse(timeLayout, value)
			if err != nil {
				return nil, fmt.Errorf("%w: время %q", ErrInvalidTime, value)
			}
			clock = parsed
			haveTime = true
		case strings.Contains(key, "место"):
			form.Location = value
		case strings.Contains(key, "описание"):
			form.Description = value
		case strings.Contains(key, "макс"):
			limit, err := strconv.Atoi(value)
			if err != nil || limit < 1 {
				return nil, fmt.Errorf("%w: макс. участников %q", ErrInvalidNumber, value)
			}
			form.MaxParticipants = limit
		}
	}

	switch {
	case form.Name == "":
		return nil, fmt.Errorf("%w: название", ErrMissingField)
	case form.Type == 0:
		return nil, fmt.Errorf("%w: тип", ErrMissingField)
	case !haveDate:
		return nil, fmt.Errorf("%w: дата", ErrMissingField)
	case !haveTime:
		return nil, fmt.Errorf("%w: время", ErrMissingField)
	case form.Location == "":
		return nil, fmt.Errorf("%w: место", ErrMissingField)
	}

	form.Date = time.Date(form.Date.Year(), form.Date.Month(), form.Date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.Local)

	return form, nil
}

// fields splits the message into key/value pairs, one per line. Keys
// are lowercased and trimmed, lines without a colon are skipped.
func fields(text string) map[string]string {
	result := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = lower(strings.TrimSpace(key))
		result[key] = strings.TrimSpace(value)
	}
	return result
}
