package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/collegium/ai"
	"github.com/poiesic/collegium/ai/mock"
	"github.com/poiesic/collegium/core"
	"github.com/poiesic/collegium/lexicon"
)

func TestNewClassifier_NilLexicon(t *testing.T) {
	_, err := NewClassifier(nil, nil)
	assert.ErrorIs(t, err, ErrLexiconRequired)
}

func TestNewClassifier_InvalidFloors(t *testing.T) {
	_, err := NewClassifier(lexicon.Default(), nil, WithRuleFloor(-0.1))
	assert.ErrorIs(t, err, ErrInvalidFloor)

	_, err = NewClassifier(lexicon.Default(), nil, WithFinalFloor(-1))
	assert.ErrorIs(t, err, ErrInvalidFloor)
}

func TestClassifier_RulesWinWithoutFallback(t *testing.T) {
	fallback := mock.NewMockClassifier()
	classifier, err := NewClassifier(lexicon.Default(), fallback)
	require.NoError(t, err)

	result, err := classifier.Classify(context.Background(), "Покажи сотрудников")
	require.NoError(t, err)

	assert.Equal(t, core.CategoryEmployeeSearch, result.Category)
	assert.Equal(t, SourceRules, result.Source)
	assert.GreaterOrEqual(t, result.Confidence, DefaultRuleFloor)
	assert.Zero(t, fallback.CallCount(), "fallback must not be consulted")
}

func TestClassifier_FallbackOnLowRuleScore(t *testing.T) {
	fallback := mock.NewMockClassifier().WithClassifyFunc(
		func(ctx context.Context, text string, labels []string) ([]ai.LabelScore, error) {
			assert.Equal(t, core.CategoryLabels(), labels)
			return []ai.LabelScore{
				{Label: core.CategoryTaskInfo.Label(), Score: 0.9},
				{Label: core.CategoryUnclassified.Label(), Score: 0.1},
			}, nil
		})
	classifier, err := NewClassifier(lexicon.Default(), fallback)
	require.NoError(t, err)

	result, err := classifier.Classify(context.Background(), "фыва")
	require.NoError(t, err)

	assert.Equal(t, core.CategoryTaskInfo, result.Category)
	assert.Equal(t, SourceFallback, result.Source)
	assert.InDelta(t, 0.9, result.Confidence, 0.0001)
	assert.Equal(t, 1, fallback.CallCount())
}

func TestClassifier_FinalFloorDemotesToUnclassified(t *testing.T) {
	fallback := mock.NewMockClassifier().WithClassifyFunc(
		func(ctx context.Context, text string, labels []string) ([]ai.LabelScore, error) {
			return []ai.LabelScore{
				{Label: core.CategoryGreeting.Label(), Score: 0.1},
			}, nil
		})
	classifier, err := NewClassifier(lexicon.Default(), fallback)
	require.NoError(t, err)

	result, err := classifier.Classify(context.Background(), "фыва")
	require.NoError(t, err)

	assert.Equal(t, core.CategoryUnclassified, result.Category)
	assert.InDelta(t, 0.1, result.Confidence, 0.0001, "confidence is preserved on demotion")
}

func TestClassifier_FallbackError(t *testing.T) {
	fallback := mock.NewMockClassifier().WithClassifyFunc(
		func(ctx context.Context, text string, labels []string) ([]ai.LabelScore, error) {
			return nil, errors.New("connection refused")
		})
	classifier, err := NewClassifier(lexicon.Default(), fallback)
	require.NoError(t, err)

	_, err = classifier.Classify(context.Background(), "фыва")
	assert.ErrorIs(t, err, ErrFallbackUnavailable)
}

func TestClassifier_NilFallback(t *testing.T) {
	classifier, err := NewClassifier(lexicon.Default(), nil)
	require.NoError(t, err)

	_, err = classifier.Classify(context.Background(), "фыва")
	assert.ErrorIs(t, err, ErrFallbackUnavailable)
}

func TestClassifier_RuleFloorOptionForcesFallback(t *testing.T) {
	fallback := mock.NewMockClassifier().WithClassifyFunc(
		func(ctx context.Context, text string, labels []string) ([]ai.LabelScore, error) {
			return []ai.LabelScore{
				{Label: core.CategoryGeneralInfo.Label(), Score: 0.8},
			}, nil
		})
	classifier, err := NewClassifier(lexicon.Default(), fallback, WithRuleFloor(100))
	require.NoError(t, err)

	result, err := classifier.Classify(context.Background(), "Покажи сотрудников")
	require.NoError(t, err)

	assert.Equal(t, core.CategoryGeneralInfo, result.Category)
	assert.Equal(t, SourceFallback, result.Source)
	assert.Equal(t, 1, fallback.CallCount())
}
