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

package collegium

import (
	"log/slog"

	"github.com/poiesic/collegium/ai"
	"github.com/poiesic/collegium/lexicon"
	"github.com/poiesic/collegium/storage"
	"github.com/poiesic/collegium/storage/badger"
)

// Database aggregates the storage backend and the four domain
// repositories behind a single open/close lifecycle.
type Database struct {
	backend    *badger.Backend
	employees  storage.EmployeeRepository
	events     storage.EventRepository
	tasks      storage.TaskRepository
	activities storage.ActivityRepository
	logger     *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	inMemory bool
}

// WithInMemory opens the backend in memory instead of on disk.
// All data is lost when the database is closed.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create employee repository
	employees, err := badger.NewEmployeeRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create event repository
	events, err := badger.NewEventRepository(backend)
	if err != nil {
		employees.Close()
		backend.Close()
		return nil, err
	}

	// Create task repository
	tasks, err := badger.NewTaskRepository(backend)
	if err != nil {
		events.Close()
		employees.Close()
		backend.Close()
		return nil, err
	}

	// Create activity repository
	activities, err := badger.NewActivityRepository(backend)
	if err != nil {
		tasks.Close()
		events.Close()
		employees.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:    backend,
		employees:  employees,
		events:     events,
		tasks:      tasks,
		activities: activities,
		logger:     slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	// Close repositories
	if err := db.activities.Close(); err != nil {
		db.logger.Error("error closing activity repository", "err", err)
		return err
	}
	if err := db.tasks.Close(); err != nil {
		db.logger.Error("error closing task repository", "err", err)
		return err
	}
	if err := db.events.Close(); err != nil {
		db.logger.Error("error closing event repository", "err", err)
		return err
	}
	if err := db.employees.Close(); err != nil {
		db.logger.Error("error closing employee repository", "err", err)
		return err
	}

	// Close backend
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) EmployeeRepository() storage.EmployeeRepository {
	return db.employees
}

func (db *Database) EventRepository() storage.EventRepository {
	return db.events
}

func (db *Database) TaskRepository() storage.TaskRepository {
	return db.tasks
}

func (db *Database) ActivityRepository() storage.ActivityRepository {
	return db.activities
}

// NewAssistant builds an assistant over the database repositories with
// the default lexicon. The fallback classifier may be nil.
func (db *Database) NewAssistant(fallback ai.ZeroShotClassifier, opts ...AssistantOption) (*Assistant, error) {
	return NewAssistant(lexicon.Default(), fallback,
		db.employees, db.events, db.tasks, db.activities, opts...)
}
