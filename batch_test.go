package collegium

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aimock "github.com/poiesic/collegium/ai/mock"
	"github.com/poiesic/collegium/core"
)

func TestNewBatchProcessor(t *testing.T) {
	t.Run("nil assistant", func(t *testing.T) {
		_, err := NewBatchProcessor(nil)
		assert.ErrorIs(t, err, ErrAssistantRequired)
	})

	t.Run("with pool size", func(t *testing.T) {
		assistant := seededAssistant(t, aimock.NewMockClassifier())
		processor, err := NewBatchProcessor(assistant, WithPoolSize(2))
		require.NoError(t, err)
		defer processor.Release()
		assert.NotNil(t, processor)
	})
}

func TestBatchProcessor_Process(t *testing.T) {
	assistant := seededAssistant(t, aimock.NewMockClassifier())
	processor, err := NewBatchProcessor(assistant, WithPoolSize(2))
	require.NoError(t, err)
	defer processor.Release()

	queries := []string{
		"Привет!",
		"Кто знает Python?",
		"Какие задачи в работе?",
	}
	results := processor.Process(context.Background(), queries)
	require.Len(t, results, len(queries))

	// Results keep input order regardless of completion order.
	for i, result := range results {
		assert.Equal(t, queries[i], result.Query)
		require.NoError(t, result.Err)
		require.NotNil(t, result.Answer)
	}

	assert.Equal(t, core.CategoryGreeting, results[0].Answer.Category)
	assert.Equal(t, core.CategoryEmployeeSearch, results[1].Answer.Category)
	assert.Equal(t, core.CategoryTaskInfo, results[2].Answer.Category)
}

func TestBatchProcessor_Empty(t *testing.T) {
	assistant := seededAssistant(t, aimock.NewMockClassifier())
	processor, err := NewBatchProcessor(assistant)
	require.NoError(t, err)
	defer processor.Release()

	results := processor.Process(context.Background(), nil)
	assert.Empty(t, results)
}
