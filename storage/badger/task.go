package badger

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/collegium/core"
	"github.com/poiesic/collegium/storage"
)

// TaskRepository implements storage.TaskRepository for BadgerDB.
type TaskRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.TaskRepository = (*TaskRepository)(nil)

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(backend *Backend) (*TaskRepository, error) {
	idSeq, err := backend.GetSequence(taskIDSeq)
	if err != nil {
		return nil, err
	}

	return &TaskRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *TaskRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *TaskRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddTasks adds one or more tasks to storage.
func (r *TaskRepository) AddTasks(ctx context.Context, tasks ...*core.Task) ([]*core.Task, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, task := range tasks {
			if task.Id == 0 {
				id, err := nextID(r.idSeq)
				if err != nil {
					return err
				}
				task.Id = id
			}

			now := time.Now().UTC()
			if task.InsertedAt.IsZero() {
				task.InsertedAt = now
			}
			task.UpdatedAt = now

			key := makeTaskKey(task.Id)
			if err := tx.Set(key, storage.MarshalTask(task)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return tasks, err
}

// UpdateTasks updates existing tasks.
func (r *TaskRepository) UpdateTasks(ctx context.Context, tasks ...*core.Task) ([]*core.Task, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, task := range tasks {
			key := makeTaskKey(task.Id)

			old, err := r.readTask(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			task.InsertedAt = old.InsertedAt
			task.UpdatedAt = time.Now().UTC()

			if err := tx.Set(key, storage.MarshalTask(task)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return tasks, err
}

// GetTask retrieves a single task by ID.
func (r *TaskRepository) GetTask(ctx context.Context, id core.ID) (*core.Task, error) {
	var result *core.Task
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readTask(tx, makeTaskKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetTasks retrieves multiple tasks by their IDs.
// Missing IDs are skipped.
func (r *TaskRepository) GetTasks(ctx context.Context, ids ...core.ID) ([]*core.Task, error) {
	var result []*core.Task
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			task, err := r.readTask(tx, makeTaskKey(id))
			if err != nil {
				return err
			}
			if task != nil {
				result = append(result, task)
			}
		}
		return nil
	}, false)
	return result, err
}

// FindTasks scans the whole collection and evaluates the filter against
// each record.
func (r *TaskRepository) FindTasks(ctx context.Context, filter storage.Filter) ([]*core.Task, error) {
	var result []*core.Task
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(taskRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var task *core.Task
			err := iter.Item().Value(func(val []byte) error {
				var err error
				task, err = storage.UnmarshalTask(val)
				return err
			})
			if err != nil {
				return err
			}
			if task == nil {
				continue
			}
			if storage.MatchFilter(storage.TaskFields{Task: task}, filter) {
				result = append(result, task)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(result, func(a, b *core.Task) int {
		return cmp.Compare(a.Id, b.Id)
	})
	return result, nil
}

func (r *TaskRepository) readTask(tx *badger.Txn, key []byte) (*core.Task, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var task *core.Task
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		task, unmarshalErr = storage.UnmarshalTask(val)
		return unmarshalErr
	})
	return task, err
}
