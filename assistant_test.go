package collegium

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/collegium/ai"
	aimock "github.com/poiesic/collegium/ai/mock"
	"github.com/poiesic/collegium/classify"
	"github.com/poiesic/collegium/core"
	"github.com/poiesic/collegium/lexicon"
	"github.com/poiesic/collegium/respond"
	"github.com/poiesic/collegium/storage"
	"github.com/poiesic/collegium/storage/badger"
)

// Monday within the seed dataset's week of events.
var seedMonday = time.Date(2025, time.May, 19, 9, 0, 0, 0, time.Local)

func seededAssistant(t *testing.T, fallback ai.ZeroShotClassifier, opts ...AssistantOption) *Assistant {
	t.Helper()

	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { repos.Close() })

	ctx := context.Background()
	records := NewSeedRecords()
	_, err = repos.Employees.AddEmployees(ctx, records.Employees...)
	require.NoError(t, err)
	_, err = repos.Events.AddEvents(ctx, records.Events...)
	require.NoError(t, err)
	_, err = repos.Tasks.AddTasks(ctx, records.Tasks...)
	require.NoError(t, err)
	_, err = repos.Activities.AddActivities(ctx, records.Activities...)
	require.NoError(t, err)

	assistant, err := NewAssistant(lexicon.Default(), fallback,
		repos.Employees, repos.Events, repos.Tasks, repos.Activities, opts...)
	require.NoError(t, err)
	return assistant
}

func TestNewAssistant_Validation(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	t.Run("nil lexicon", func(t *testing.T) {
		_, err := NewAssistant(nil, nil, repos.Employees, repos.Events, repos.Tasks, repos.Activities)
		assert.ErrorIs(t, err, ErrLexiconRequired)
	})

	t.Run("nil employee repository", func(t *testing.T) {
		_, err := NewAssistant(lexicon.Default(), nil, nil, repos.Events, repos.Tasks, repos.Activities)
		assert.ErrorIs(t, err, ErrEmployeeRepositoryRequired)
	})

	t.Run("nil activity repository", func(t *testing.T) {
		_, err := NewAssistant(lexicon.Default(), nil, repos.Employees, repos.Events, repos.Tasks, nil)
		assert.ErrorIs(t, err, ErrActivityRepositoryRequired)
	})
}

func TestAssistant_Greeting(t *testing.T) {
	mock := aimock.NewMockClassifier()
	assistant := seededAssistant(t, mock)

	answer, err := assistant.Answer(context.Background(), "Привет!")
	require.NoError(t, err)

	assert.Equal(t, core.CategoryGreeting, answer.Category)
	assert.Equal(t, WelcomeMessage, answer.Text)
	assert.Equal(t, classify.SourceRules, answer.Source)
	assert.Zero(t, mock.CallCount(), "greetings should never reach the fallback")
}

func TestAssistant_EmployeeSearch(t *testing.T) {
	mock := aimock.NewMockClassifier()
	assistant := seededAssistant(t, mock)

	answer, err := assistant.Answer(context.Background(), "Кто знает Python?")
	require.NoError(t, err)

	assert.Equal(t, core.CategoryEmployeeSearch, answer.Category)
	assert.Equal(t, classify.SourceRules, answer.Source)
	assert.Contains(t, answer.Text, "Иван Петров")
	assert.Contains(t, answer.Text, "Мария Иванова")
	assert.NotContains(t, answer.Text, "Анна Сидорова")
	assert.Zero(t, mock.CallCount())
}

func TestAssistant_EventsThisWeek(t *testing.T) {
	assistant := seededAssistant(t, aimock.NewMockClassifier(),
		WithClock(func() time.Time { return seedMonday }))

	answer, err := assistant.Answer(context.Background(), "Какие мероприятия на этой неделе?")
	require.NoError(t, err)

	assert.Equal(t, core.CategoryEventInfo, answer.Category)
	assert.Contains(t, answer.Text, "Python Meetup")
	assert.Contains(t, answer.Text, "Тренинг по Agile")
	assert.NotContains(t, answer.Text, "День рождения Анны")
	// Participant IDs are resolved to names.
	assert.Contains(t, answer.Text, "Иван Петров")
}

func TestAssistant_TasksInProgress(t *testing.T) {
	assistant := seededAssistant(t, aimock.NewMockClassifier())

	answer, err := assistant.Answer(context.Background(), "Какие задачи в работе?")
	require.NoError(t, err)

	assert.Equal(t, core.CategoryTaskInfo, answer.Category)
	assert.Contains(t, answer.Text, "Рефакторинг API")
	assert.Contains(t, answer.Text, "Иван Петров")
	assert.NotContains(t, answer.Text, "Написание тестов")
}

func TestAssistant_Activities(t *testing.T) {
	assistant := seededAssistant(t, aimock.NewMockClassifier())

	answer, err := assistant.Answer(context.Background(), "Кто хочет поиграть в настольные игры?")
	require.NoError(t, err)

	assert.Equal(t, core.CategorySocialActivity, answer.Category)
	assert.Contains(t, answer.Text, "Настольные игры")
	assert.NotContains(t, answer.Text, "Йога в офисе")
}

func TestAssistant_GeneralInfo(t *testing.T) {
	assistant := seededAssistant(t, aimock.NewMockClassifier())

	answer, err := assistant.Answer(context.Background(), "Где находится офис?")
	require.NoError(t, err)

	assert.Equal(t, core.CategoryGeneralInfo, answer.Category)
	assert.Contains(t, answer.Text, "Москва")
}

func TestAssistant_FallbackRoutes(t *testing.T) {
	mock := aimock.NewMockClassifier().WithClassifyFunc(
		func(ctx context.Context, text string, labels []string) ([]ai.LabelScore, error) {
			return []ai.LabelScore{{Label: core.CategorySocialActivity.Label(), Score: 0.9}}, nil
		})
	assistant := seededAssistant(t, mock)

	answer, err := assistant.Answer(context.Background(), "фыва")
	require.NoError(t, err)

	assert.Equal(t, core.CategorySocialActivity, answer.Category)
	assert.Equal(t, classify.SourceFallback, answer.Source)
	assert.Equal(t, respond.NoActivities, answer.Text)
	assert.Equal(t, 1, mock.CallCount())
}

func TestAssistant_FallbackErrorDegrades(t *testing.T) {
	mock := aimock.NewMockClassifier().WithClassifyFunc(
		func(ctx context.Context, text string, labels []string) ([]ai.LabelScore, error) {
			return nil, errors.New("model offline")
		})
	assistant := seededAssistant(t, mock)

	answer, err := assistant.Answer(context.Background(), "фыва")
	require.NoError(t, err, "fallback failure must not fail the query")

	assert.Equal(t, core.CategoryUnclassified, answer.Category)
	assert.Zero(t, answer.Confidence)
	assert.Equal(t, UnclassifiedHelp, answer.Text)
}

// brokenEmployeeRepository fails every search, simulating a record
// store that went away mid-session.
type brokenEmployeeRepository struct {
	storage.EmployeeRepository
}

func (brokenEmployeeRepository) FindEmployees(ctx context.Context, filter storage.Filter) ([]*core.Employee, error) {
	return nil, errors.New("store closed")
}

func (brokenEmployeeRepository) FindEmployeeByNameFragment(ctx context.Context, fragment string) (*core.Employee, error) {
	return nil, errors.New("store closed")
}

func TestAssistant_StoreErrorDegrades(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { repos.Close() })

	assistant, err := NewAssistant(lexicon.Default(), aimock.NewMockClassifier(),
		brokenEmployeeRepository{repos.Employees}, repos.Events, repos.Tasks, repos.Activities)
	require.NoError(t, err)

	answer, err := assistant.Answer(context.Background(), "Кто знает Python?")
	require.NoError(t, err, "storage failure must not fail the query")

	assert.Equal(t, core.CategoryEmployeeSearch, answer.Category)
	assert.Equal(t, StoreUnavailable, answer.Text)
}

func TestAssistant_NilFallbackDegrades(t *testing.T) {
	assistant := seededAssistant(t, nil)

	answer, err := assistant.Answer(context.Background(), "фыва")
	require.NoError(t, err)

	assert.Equal(t, core.CategoryUnclassified, answer.Category)
	assert.Equal(t, UnclassifiedHelp, answer.Text)
}

func TestAssistant_UnclassifiedChecksKnowledgeBase(t *testing.T) {
	// Scores below the final floor demote the query to unclassified, but
	// the knowledge base still recognizes it.
	mock := aimock.NewMockClassifier().WithClassifyFunc(
		func(ctx context.Context, text string, labels []string) ([]ai.LabelScore, error) {
			scores := make([]ai.LabelScore, len(labels))
			for i, label := range labels {
				scores[i] = ai.LabelScore{Label: label, Score: 0.05}
			}
			return scores, nil
		})
	assistant := seededAssistant(t, mock)

	answer, err := assistant.Answer(context.Background(), "нужна поддержка")
	require.NoError(t, err)

	assert.Equal(t, core.CategoryUnclassified, answer.Category)
	assert.Contains(t, answer.Text, "support@company.com")
}
