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

// EmployeeRepository implements storage.EmployeeRepository for BadgerDB.
type EmployeeRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.EmployeeRepository = (*EmployeeRepository)(nil)

// NewEmployeeRepository creates a new EmployeeRepository.
func NewEmployeeRepository(backend *Backend) (*EmployeeRepository, error) {
	idSeq, err := backend.GetSequence(employeeIDSeq)
	if err != nil {
		return nil, err
	}

	return &EmployeeRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *EmployeeRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *EmployeeRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddEmployees adds one or more employees to storage.
// Employees with a content-based ID keep it, which makes re-seeding
// idempotent; zero IDs are filled from the sequence.
func (r *EmployeeRepository) AddEmployees(ctx context.Context, employees ...*core.Employee) ([]*core.Employee, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, employee := range employees {
			if employee.Id == 0 {
				id, err := nextID(r.idSeq)
				if err != nil {
					return err
				}
				employee.Id = id
			}

			now := time.Now().UTC()
			if employee.InsertedAt.IsZero() {
				employee.InsertedAt = now
			}
			employee.UpdatedAt = now

			key := makeEmployeeKey(employee.Id)
			if err := tx.Set(key, storage.MarshalEmployee(employee)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return employees, err
}

// GetEmployee retrieves a single employee by ID.
func (r *EmployeeRepository) GetEmployee(ctx context.Context, id core.ID) (*core.Employee, error) {
	var result *core.Employee
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readEmployee(tx, makeEmployeeKey(id))
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

// GetEmployees retrieves multiple employees by their IDs.
// Missing IDs are skipped.
func (r *EmployeeRepository) GetEmployees(ctx context.Context, ids ...core.ID) ([]*core.Employee, error) {
	var result []*core.Employee
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			employee, err := r.readEmployee(tx, makeEmployeeKey(id))
			if err != nil {
				return err
			}
			if employee != nil {
				result = append(result, employee)
			}
		}
		return nil
	}, false)
	return result, err
}

// FindEmployees scans the whole collection and evaluates the filter
// against each record. The collection is small and fixed, so a full scan
// stays cheap and avoids per-field indices.
func (r *EmployeeRepository) FindEmployees(ctx context.Context, filter storage.Filter) ([]*core.Employee, error) {
	var result []*core.Employee
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(employeeRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var employee *core.Employee
			err := iter.Item().Value(func(val []byte) error {
				var err error
				employee, err = storage.UnmarshalEmployee(val)
				return err
			})
			if err != nil {
				return err
			}
			if employee == nil {
				continue
			}
			if storage.MatchFilter(storage.EmployeeFields{Employee: employee}, filter) {
				result = append(result, employee)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	// Keys sort lexicographically, not numerically
	slices.SortFunc(result, func(a, b *core.Employee) int {
		return cmp.Compare(a.Id, b.Id)
	})
	return result, nil
}

// FindEmployeeByNameFragment returns the first employee, in ID order,
// whose name contains the fragment case-insensitively.
func (r *EmployeeRepository) FindEmployeeByNameFragment(ctx context.Context, fragment string) (*core.Employee, error) {
	matches, err := r.FindEmployees(ctx, storage.Filter{All: []storage.Condition{
		storage.Contains(storage.FieldName, fragment),
	}})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, storage.ErrNotFound
	}
	return matches[0], nil
}

func (r *EmployeeRepository) readEmployee(tx *badger.Txn, key []byte) (*core.Employee, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var employee *core.Employee
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		employee, unmarshalErr = storage.UnmarshalEmployee(val)
		return unmarshalErr
	})
	return employee, err
}

// nextID draws the next ID from a sequence, skipping the zero a fresh
// BadgerDB sequence returns on its first call.
func nextID(seq *badger.Sequence) (core.ID, error) {
	next, err := seq.Next()
	if err != nil {
		return 0, err
	}
	if next == 0 {
		next, err = seq.Next()
		if err != nil {
			return 0, err
		}
	}
	return core.ID(next), nil
}
