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

// ActivityRepository implements storage.ActivityRepository for BadgerDB.
type ActivityRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.ActivityRepository = (*ActivityRepository)(nil)

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(backend *Backend) (*ActivityRepository, error) {
	idSeq, err := backend.GetSequence(activityIDSeq)
	if err != nil {
		return nil, err
	}

	return &ActivityRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *ActivityRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *ActivityRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddActivities adds one or more activities to storage.
func (r *ActivityRepository) AddActivities(ctx context.Context, activities ...*core.Activity) ([]*core.Activity, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, activity := range activities {
			if activity.Id == 0 {
				id, err := nextID(r.idSeq)
				if err != nil {
					return err
				}
				activity.Id = id
			}

			now := time.Now().UTC()
			if activity.InsertedAt.IsZero() {
				activity.InsertedAt = now
			}
			activity.UpdatedAt = now

			key := makeActivityKey(activity.Id)
			if err := tx.Set(key, storage.MarshalActivity(activity)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return activities, err
}

// UpdateActivities updates existing activities.
func (r *ActivityRepository) UpdateActivities(ctx context.Context, activities ...*core.Activity) ([]*core.Activity, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, activity := range activities {
			key := makeActivityKey(activity.Id)

			old, err := r.readActivity(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			activity.InsertedAt = old.InsertedAt
			activity.UpdatedAt = time.Now().UTC()

			if err := tx.Set(key, storage.MarshalActivity(activity)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return activities, err
}

// GetActivity retrieves a single activity by ID.
func (r *ActivityRepository) GetActivity(ctx context.Context, id core.ID) (*core.Activity, error) {
	var result *core.Activity
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readActivity(tx, makeActivityKey(id))
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

// GetActivities retrieves multiple activities by their IDs.
// Missing IDs are skipped.
func (r *ActivityRepository) GetActivities(ctx context.Context, ids ...core.ID) ([]*core.Activity, error) {
	var result []*core.Activity
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			activity, err := r.readActivity(tx, makeActivityKey(id))
			if err != nil {
				return err
			}
			if activity != nil {
				result = append(result, activity)
			}
		}
		return nil
	}, false)
	return result, err
}

// FindActivities scans the whole collection and evaluates the filter
// against each record.
func (r *ActivityRepository) FindActivities(ctx context.Context, filter storage.Filter) ([]*core.Activity, error) {
	var result []*core.Activity
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(activityRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var activity *core.Activity
			err := iter.Item().Value(func(val []byte) error {
				var err error
				activity, err = storage.UnmarshalActivity(val)
				return err
			})
			if err != nil {
				return err
			}
			if activity == nil {
				continue
			}
			if storage.MatchFilter(storage.ActivityFields{Activity: activity}, filter) {
				result = append(result, activity)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(result, func(a, b *core.Activity) int {
		return cmp.Compare(a.Id, b.Id)
	})
	return result, nil
}

func (r *ActivityRepository) readActivity(tx *badger.Txn, key []byte) (*core.Activity, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var activity *core.Activity
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		activity, unmarshalErr = storage.UnmarshalActivity(val)
		return unmarshalErr
	})
	return activity, err
}
