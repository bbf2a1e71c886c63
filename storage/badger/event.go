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

// EventRepository implements storage.EventRepository for BadgerDB.
type EventRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.EventRepository = (*EventRepository)(nil)

// NewEventRepository creates a new EventRepository.
func NewEventRepository(backend *Backend) (*EventRepository, error) {
	idSeq, err := backend.GetSequence(eventIDSeq)
	if err != nil {
		return nil, err
	}

	return &EventRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *EventRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *EventRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddEvents adds one or more events to storage.
func (r *EventRepository) AddEvents(ctx context.Context, events ...*core.Event) ([]*core.Event, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, event := range events {
			if event.Id == 0 {
				id, err := nextID(r.idSeq)
				if err != nil {
					return err
				}
				event.Id = id
			}

			now := time.Now().UTC()
			if event.InsertedAt.IsZero() {
				event.InsertedAt = now
			}
			event.UpdatedAt = now

			key := makeEventKey(event.Id)
			if err := tx.Set(key, storage.MarshalEvent(event)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return events, err
}

// GetEvent retrieves a single event by ID.
func (r *EventRepository) GetEvent(ctx context.Context, id core.ID) (*core.Event, error) {
	var result *core.Event
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readEvent(tx, makeEventKey(id))
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

// GetEvents retrieves multiple events by their IDs.
// Missing IDs are skipped.
func (r *EventRepository) GetEvents(ctx context.Context, ids ...core.ID) ([]*core.Event, error) {
	var result []*core.Event
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			event, err := r.readEvent(tx, makeEventKey(id))
			if err != nil {
				return err
			}
			if event != nil {
				result = append(result, event)
			}
		}
		return nil
	}, false)
	return result, err
}

// FindEvents scans the whole collection and evaluates the filter against
// each record.
func (r *EventRepository) FindEvents(ctx context.Context, filter storage.Filter) ([]*core.Event, error) {
	var result []*core.Event
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(eventRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var event *core.Event
			err := iter.Item().Value(func(val []byte) error {
				var err error
				event, err = storage.UnmarshalEvent(val)
				return err
			})
			if err != nil {
				return err
			}
			if event == nil {
				continue
			}
			if storage.MatchFilter(storage.EventFields{Event: event}, filter) {
				result = append(result, event)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(result, func(a, b *core.Event) int {
		return cmp.Compare(a.Id, b.Id)
	})
	return result, nil
}

func (r *EventRepository) readEvent(tx *badger.Txn, key []byte) (*core.Event, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var event *core.Event
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		event, unmarshalErr = storage.UnmarshalEvent(val)
		return unmarshalErr
	})
	return event, err
}
