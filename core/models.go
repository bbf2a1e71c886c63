package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs, which keeps
// re-seeding idempotent.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// EventType classifies an organizational event.
type EventType int

const (
	// EventConference is a conference.
	EventConference EventType = iota + 1
	// EventTraining is a training or seminar session.
	EventTraining
	// EventBirthday is a birthday celebration.
	EventBirthday
	// EventCorporate is a company-wide party.
	EventCorporate
	// EventMeeting is a regular meeting.
	EventMeeting
	// EventSeminar is a seminar.
	EventSeminar
)

// Label returns the Russian surface form of the event type, as stored
// and rendered to users.
func (t EventType) Label() string {
	switch t {
	case EventConference:
		return "конференция"
	case EventTraining:
		return "тренинг"
	case EventBirthday:
		return "день рождения"
	case EventCorporate:
		return "корпоратив"
	case EventMeeting:
		return "встреча"
	case EventSeminar:
		return "семинар"
	}
	return "неизвестно"
}

// ActivityType classifies a social activity.
type ActivityType int

const (
	// ActivityGame is a game session (board games and similar).
	ActivityGame ActivityType = iota + 1
	// ActivityLunch is a shared lunch.
	ActivityLunch
	// ActivityTraining is a training style activity (yoga and similar).
	ActivityTraining
	// ActivitySport is a sport activity.
	ActivitySport
	// ActivityTeamBuilding is a team building activity.
	ActivityTeamBuilding
)

// Label returns the Russian surface form of the activity type.
func (t ActivityType) Label() string {
	switch t {
	case ActivityGame:
		return "игра"
	case ActivityLunch:
		return "обед"
	case ActivityTraining:
		return "тренинг"
	case ActivitySport:
		return "спорт"
	case ActivityTeamBuilding:
		return "тимбилдинг"
	}
	return "неизвестно"
}

// ParseActivityType resolves a Russian label to its activity type.
// Unknown labels return the zero value.
func ParseActivityType(label string) ActivityType {
	for _, t := range []ActivityType{ActivityGame, ActivityLunch, ActivityTraining, ActivitySport, ActivityTeamBuilding} {
		if t.Label() == label {
			return t
		}
	}
	return 0
}

// TaskStatus is the workflow state of a task.
type TaskStatus int

const (
	// TaskTodo is a task waiting to be started.
	TaskTodo TaskStatus = iota + 1
	// TaskInProgress is a task being worked on.
	TaskInProgress
	// TaskDone is a finished task.
	TaskDone
	// TaskBlocked is a task that cannot proceed.
	TaskBlocked
)

// Label returns the Russian surface form of the task status.
func (s TaskStatus) Label() string {
	switch s {
	case TaskTodo:
		return "к выполнению"
	case TaskInProgress:
		return "в работе"
	case TaskDone:
		return "выполнено"
	case TaskBlocked:
		return "заблокировано"
	}
	return "неизвестно"
}

// ParseTaskStatus maps a status label back to its TaskStatus.
// Returns 0 if the label is unknown.
func ParseTaskStatus(label string) TaskStatus {
	for _, s := range []TaskStatus{TaskTodo, TaskInProgress, TaskDone, TaskBlocked} {
		if s.Label() == label {
			return s
		}
	}
	return 0
}

// Priority is the urgency level of a task.
type Priority int

const (
	// PriorityLow marks non-urgent tasks.
	PriorityLow Priority = iota + 1
	// PriorityMedium marks regular tasks.
	PriorityMedium
	// PriorityHigh marks urgent tasks.
	PriorityHigh
)

// Label returns the Russian surface form of the priority.
func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "низкий"
	case PriorityMedium:
		return "средний"
	case PriorityHigh:
		return "высокий"
	}
	return "неизвестно"
}

// ParsePriority maps a priority label back to its Priority.
// Returns 0 if the label is unknown.
func ParsePriority(label string) Priority {
	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh} {
		if p.Label() == label {
			return p
		}
	}
	return 0
}

// Employee is a member of the organization.
type Employee struct {
	Id         ID
	Name       string
	Position   string
	Department string
	Email      string
	Phone      string
	HireDate   time.Time
	Birthday   time.Time
	Skills     string // comma-separated free text, matched by substring
	Interests  string // comma-separated free text, matched by substring
	Bio        string
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// Event is a scheduled organizational event with a participant list.
type Event struct {
	Id             ID
	Name           string
	Type           EventType
	Date           time.Time // includes the start time of day
	Location       string
	Description    string
	ParticipantIds []ID
	InsertedAt     time.Time
	UpdatedAt      time.Time
}

// Task is a unit of work assigned to an employee.
type Task struct {
	Id          ID
	Title       string
	Description string
	Status      TaskStatus
	Priority    Priority
	Deadline    time.Time
	Tags        string // comma-separated free text, matched by substring
	AssigneeId  ID
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// Activity is a social activity employees can join.
type Activity struct {
	Id              ID
	Name            string
	Type            ActivityType
	Date            time.Time // includes the start time of day
	Location        string
	Description     string
	MaxParticipants int
	IsActive        bool
	Tags            string
	ParticipantIds  []ID
	InsertedAt      time.Time
	UpdatedAt       time.Time
}
