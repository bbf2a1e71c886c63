package core

import (
	"errors"
	"testing"
	"time"
)

func TestValidateEmployee(t *testing.T) {
	tests := []struct {
		name     string
		employee *Employee
		wantErr  error
	}{
		{
			name: "valid employee",
			employee: &Employee{
				Name:       "Иван Петров",
				Position:   "Senior Developer",
				Department: "IT",
			},
			wantErr: nil,
		},
		{
			name:     "valid with ID 0",
			employee: &Employee{Name: "Анна Сидорова"},
			wantErr:  nil,
		},
		{
			name:     "nil employee",
			employee: nil,
			wantErr:  ErrInvalidEmployee,
		},
		{
			name:     "empty name",
			employee: &Employee{Position: "Developer"},
			wantErr:  ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmployee(tt.employee)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateEmployee() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateEmployee() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateEvent(t *testing.T) {
	tests := []struct {
		name    string
		event   *Event
		wantErr error
	}{
		{
			name:    "valid event",
			event:   &Event{Name: "Python Meetup", Type: EventConference, Date: time.Now()},
			wantErr: nil,
		},
		{
			name:    "nil event",
			event:   nil,
			wantErr: ErrInvalidEvent,
		},
		{
			name:    "empty name",
			event:   &Event{Type: EventMeeting},
			wantErr: ErrEmptyName,
		},
		{
			name:    "invalid type",
			event:   &Event{Name: "X", Type: EventType(42)},
			wantErr: ErrInvalidEventType,
		},
		{
			name:    "zero type",
			event:   &Event{Name: "X"},
			wantErr: ErrInvalidEventType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEvent(tt.event)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateEvent() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateEvent() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTask(t *testing.T) {
	tests := []struct {
		name    string
		task    *Task
		wantErr error
	}{
		{
			name:    "valid task",
			task:    &Task{Title: "Рефакторинг API", Status: TaskInProgress, AssigneeId: 1},
			wantErr: nil,
		},
		{
			name:    "valid without priority",
			task:    &Task{Title: "X", Status: TaskTodo, AssigneeId: 7},
			wantErr: nil,
		},
		{
			name:    "nil task",
			task:    nil,
			wantErr: ErrInvalidTask,
		},
		{
			name:    "empty title",
			task:    &Task{Status: TaskTodo, AssigneeId: 1},
			wantErr: ErrEmptyName,
		},
		{
			name:    "invalid status",
			task:    &Task{Title: "X", Status: TaskStatus(9), AssigneeId: 1},
			wantErr: ErrInvalidTaskStatus,
		},
		{
			name:    "invalid priority",
			task:    &Task{Title: "X", Status: TaskTodo, Priority: Priority(9), AssigneeId: 1},
			wantErr: ErrInvalidPriority,
		},
		{
			name:    "missing assignee",
			task:    &Task{Title: "X", Status: TaskTodo},
			wantErr: ErrMissingAssignee,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTask(tt.task)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateTask() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTask() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateActivity(t *testing.T) {
	tests := []struct {
		name     string
		activity *Activity
		wantErr  error
	}{
		{
			name:     "valid activity",
			activity: &Activity{Name: "Настольные игры", Type: ActivityGame, MaxParticipants: 8, IsActive: true},
			wantErr:  nil,
		},
		{
			name:     "zero max participants means unlimited",
			activity: &Activity{Name: "Обед", Type: ActivityLunch},
			wantErr:  nil,
		},
		{
			name:     "nil activity",
			activity: nil,
			wantErr:  ErrInvalidActivity,
		},
		{
			name:     "empty name",
			activity: &Activity{Type: ActivityGame},
			wantErr:  ErrEmptyName,
		},
		{
			name:     "invalid type",
			activity: &Activity{Name: "X", Type: ActivityType(42)},
			wantErr:  ErrInvalidActivityType,
		},
		{
			name:     "negative max participants",
			activity: &Activity{Name: "X", Type: ActivityGame, MaxParticipants: -1},
			wantErr:  ErrInvalidActivity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateActivity(tt.activity)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateActivity() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateActivity() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
