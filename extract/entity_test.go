package extract

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/collegium/core"
	"github.com/poiesic/collegium/storage"
)

// fakeResolver resolves name fragments against an in-memory slice,
// mirroring the repository's first-match-in-ID-order contract.
type fakeResolver struct {
	employees []*core.Employee
}

func (f *fakeResolver) FindEmployeeByNameFragment(ctx context.Context, fragment string) (*core.Employee, error) {
	for _, e := range f.employees {
		if strings.Contains(strings.ToLower(e.Name), strings.ToLower(fragment)) {
			return e, nil
		}
	}
	return nil, storage.ErrNotFound
}

func staff() *fakeResolver {
	return &fakeResolver{employees: []*core.Employee{
		{Id: 1, Name: "Иван Петров"},
		{Id: 2, Name: "Мария Сидорова"},
	}}
}

func TestReferencedEmployee(t *testing.T) {
	ctx := context.Background()
	resolver := staff()

	t.Run("finds by long token", func(t *testing.T) {
		employee, err := referencedEmployee(ctx, resolver, "задачи которые делает мария")
		require.NoError(t, err)
		require.NotNil(t, employee)
		assert.Equal(t, core.ID(2), employee.Id)
	})

	t.Run("short tokens are skipped", func(t *testing.T) {
		// "ван" is a fragment of "Иван" but too short to resolve
		employee, err := referencedEmployee(ctx, resolver, "а ну ка ван")
		require.NoError(t, err)
		assert.Nil(t, employee)
	})

	t.Run("inflected form does not match", func(t *testing.T) {
		// genitive "Ивана" is not a substring of the stored "Иван Петров"
		employee, err := referencedEmployee(ctx, resolver, "задачи ивана")
		require.NoError(t, err)
		assert.Nil(t, employee)
	})

	t.Run("first matching token wins", func(t *testing.T) {
		employee, err := referencedEmployee(ctx, resolver, "мария и иван")
		require.NoError(t, err)
		require.NotNil(t, employee)
		assert.Equal(t, core.ID(2), employee.Id)
	})

	t.Run("no match", func(t *testing.T) {
		employee, err := referencedEmployee(ctx, resolver, "совершенно посторонний текст")
		require.NoError(t, err)
		assert.Nil(t, employee)
	})
}
