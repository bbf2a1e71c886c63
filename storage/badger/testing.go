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

package badger

import "github.com/poiesic/collegium/storage"

// MemoryRepositories bundles in-memory repositories for testing.
// Caller must call Close when done.
type MemoryRepositories struct {
	Employees  storage.EmployeeRepository
	Events     storage.EventRepository
	Tasks      storage.TaskRepository
	Activities storage.ActivityRepository

	backend *Backend
}

// Close closes all repositories and the shared backend.
func (m *MemoryRepositories) Close() error {
	m.Employees.Close()
	m.Events.Close()
	m.Tasks.Close()
	m.Activities.Close()
	return m.backend.Close()
}

// NewMemoryRepositories creates in-memory repositories over a shared
// BadgerDB backend for testing.
func NewMemoryRepositories() (*MemoryRepositories, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, err
	}

	employees, err := NewEmployeeRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	events, err := NewEventRepository(backend)
	if err != nil {
		employees.Close()
		backend.Close()
		return nil, err
	}

	tasks, err := NewTaskRepository(backend)
	if err != nil {
		events.Close()
		employees.Close()
		backend.Close()
		return nil, err
	}

	activities, err := NewActivityRepository(backend)
	if err != nil {
		tasks.Close()
		events.Close()
		employees.Close()
		backend.Close()
		return nil, err
	}

	return &MemoryRepositories{
		Employees:  employees,
		Events:     events,
		Tasks:      tasks,
		Activities: activities,
		backend:    backend,
	}, nil
}
