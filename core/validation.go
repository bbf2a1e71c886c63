// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import "fmt"

// ValidateEmployee validates an Employee according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//
// NOT validated:
//   - ID (0 is valid from database sequences)
//   - Contact and profile fields (all optional)
func ValidateEmployee(employee *Employee) error {
	if employee == nil {
		return fmt.Errorf("%w: employee is nil", ErrInvalidEmployee)
	}
	if employee.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEmployee, ErrEmptyName)
	}
	return nil
}

// ValidateEvent validates an Event according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Type must be a valid EventType
func ValidateEvent(event *Event) error {
	if event == nil {
		return fmt.Errorf("%w: event is nil", ErrInvalidEvent)
	}
	if event.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEvent, ErrEmptyName)
	}
	if event.Type < EventConference || event.Type > EventSeminar {
		return fmt.Errorf("%w: %w: value %d", ErrInvalidEvent, ErrInvalidEventType, event.Type)
	}
	return nil
}

// ValidateTask validates a Task according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - Status must be a valid TaskStatus
//   - Priority, when set, must be a valid Priority (0 means unset)
//   - AssigneeId must be set
func ValidateTask(task *Task) error {
	if task == nil {
		return fmt.Errorf("%w: task is nil", ErrInvalidTask)
	}
	if task.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTask, ErrEmptyName)
	}
	if task.Status < TaskTodo || task.Status > TaskBlocked {
		return fmt.Errorf("%w: %w: value %d", ErrInvalidTask, ErrInvalidTaskStatus, task.Status)
	}
	if task.Priority != 0 && (task.Priority < PriorityLow || task.Priority > PriorityHigh) {
		return fmt.Errorf("%w: %w: value %d", ErrInvalidTask, ErrInvalidPriority, task.Priority)
	}
	if task.AssigneeId == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidTask, ErrMissingAssignee)
	}
	return nil
}

// ValidateActivity validates an Activity according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Type must be a valid ActivityType
//   - MaxParticipants must not be negative (0 means unlimited)
func ValidateActivity(activity *Activity) error {
	if activity == nil {
		return fmt.Errorf("%w: activity is nil", ErrInvalidActivity)
	}
	if activity.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidActivity, ErrEmptyName)
	}
	if activity.Type < ActivityGame || activity.Type > ActivityTeamBuilding {
		return fmt.Errorf("%w: %w: value %d", ErrInvalidActivity, ErrInvalidActivityType, activity.Type)
	}
	if activity.MaxParticipants < 0 {
		return fmt.Errorf("%w: max participants cannot be negative", ErrInvalidActivity)
	}
	return nil
}
