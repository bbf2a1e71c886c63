package storage

import (
	"context"

	"github.com/poiesic/collegium/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// EmployeeRepository provides operations for managing employee records.
type EmployeeRepository interface {
	Repository
	// AddEmployees adds one or more employees to storage.
	// For employees with Id=0, generates new IDs from sequence.
	// Sets InsertedAt timestamp if not already set.
	// Returns the employees with generated IDs and timestamps populated.
	AddEmployees(ctx context.Context, employees ...*core.Employee) ([]*core.Employee, error)

	// GetEmployee retrieves a single employee by ID.
	// Returns ErrNotFound if the employee doesn't exist.
	GetEmployee(ctx context.Context, id core.ID) (*core.Employee, error)

	// GetEmployees retrieves multiple employees by their IDs.
	// Returns only the employees that exist (no error for missing ones).
	GetEmployees(ctx context.Context, ids ...core.ID) ([]*core.Employee, error)

	// FindEmployees returns all employees matching the filter, ordered
	// by ID. An empty filter returns the whole collection.
	FindEmployees(ctx context.Context, filter Filter) ([]*core.Employee, error)

	// FindEmployeeByNameFragment returns the first employee, in ID
	// order, whose name contains the fragment case-insensitively.
	// Returns ErrNotFound when no name matches.
	FindEmployeeByNameFragment(ctx context.Context, fragment string) (*core.Employee, error)
}

// EventRepository provides operations for managing event records.
type EventRepository interface {
	Repository
	// AddEvents adds one or more events to storage.
	// For events with Id=0, generates new IDs from sequence.
	AddEvents(ctx context.Context, events ...*core.Event) ([]*core.Event, error)

	// GetEvent retrieves a single event by ID.
	// Returns ErrNotFound if the event doesn't exist.
	GetEvent(ctx context.Context, id core.ID) (*core.Event, error)

	// GetEvents retrieves multiple events by their IDs.
	GetEvents(ctx context.Context, ids ...core.ID) ([]*core.Event, error)

	// FindEvents returns all events matching the filter, ordered by ID.
	FindEvents(ctx context.Context, filter Filter) ([]*core.Event, error)
}

// TaskRepository provides operations for managing task records.
type TaskRepository interface {
	Repository
	// AddTasks adds one or more tasks to storage.
	// For tasks with Id=0, generates new IDs from sequence.
	AddTasks(ctx context.Context, tasks ...*core.Task) ([]*core.Task, error)

	// UpdateTasks updates existing tasks.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any task doesn't exist.
	UpdateTasks(ctx context.Context, tasks ...*core.Task) ([]*core.Task, error)

	// GetTask retrieves a single task by ID.
	// Returns ErrNotFound if the task doesn't exist.
	GetTask(ctx context.Context, id core.ID) (*core.Task, error)

	// GetTasks retrieves multiple tasks by their IDs.
	GetTasks(ctx context.Context, ids ...core.ID) ([]*core.Task, error)

	// FindTasks returns all tasks matching the filter, ordered by ID.
	FindTasks(ctx context.Context, filter Filter) ([]*core.Task, error)
}

// ActivityRepository provides operations for managing social activity records.
type ActivityRepository interface {
	Repository
	// AddActivities adds one or more activities to storage.
	// For activities with Id=0, generates new IDs from sequence.
	AddActivities(ctx context.Context, activities ...*core.Activity) ([]*core.Activity, error)

	// UpdateActivities updates existing activities.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any activity doesn't exist.
	UpdateActivities(ctx context.Context, activities ...*core.Activity) ([]*core.Activity, error)

	// GetActivity retrieves a single activity by ID.
	// Returns ErrNotFound if the activity doesn't exist.
	GetActivity(ctx context.Context, id core.ID) (*core.Activity, error)

	// GetActivities retrieves multiple activities by their IDs.
	GetActivities(ctx context.Context, ids ...core.ID) ([]*core.Activity, error)

	// FindActivities returns all activities matching the filter, ordered
	// by ID.
	FindActivities(ctx context.Context, filter Filter) ([]*core.Activity, error)
}
