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

import "errors"

// Domain validation errors
var (
	// ErrInvalidEmployee indicates an Employee failed validation.
	ErrInvalidEmployee = errors.New("invalid employee")

	// ErrInvalidEvent indicates an Event failed validation.
	ErrInvalidEvent = errors.New("invalid event")

	// ErrInvalidTask indicates a Task failed validation.
	ErrInvalidTask = errors.New("invalid task")

	// ErrInvalidActivity indicates an Activity failed validation.
	ErrInvalidActivity = errors.New("invalid activity")

	// ErrEmptyName indicates a required name or title field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrInvalidEventType indicates an invalid EventType value.
	ErrInvalidEventType = errors.New("invalid event type")

	// ErrInvalidActivityType indicates an invalid ActivityType value.
	ErrInvalidActivityType = errors.New("invalid activity type")

	// ErrInvalidTaskStatus indicates an invalid TaskStatus value.
	ErrInvalidTaskStatus = errors.New("invalid task status")

	// ErrInvalidPriority indicates an invalid Priority value.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrMissingAssignee indicates a task without an assignee.
	ErrMissingAssignee = errors.New("task must have an assignee")
)
