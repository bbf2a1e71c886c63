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
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/poiesic/collegium/ai"
	"github.com/poiesic/collegium/classify"
	"github.com/poiesic/collegium/core"
	"github.com/poiesic/collegium/extract"
	"github.com/poiesic/collegium/lexicon"
	"github.com/poiesic/collegium/respond"
	"github.com/poiesic/collegium/storage"
)

// lower folds s with Russian casing rules. A cases.Caser carries
// internal state and is not safe for concurrent use, so each call
// constructs its own.
func lower(s string) string {
	return cases.Lower(language.Russian).String(s)
}

// Assistant answers free-form Russian questions about employees,
// events, tasks and social activities. It classifies the query,
// builds a filter from its attributes, runs it against storage and
// renders the matches as grouped text.
type Assistant struct {
	classifier *classify.Classifier
	employees  storage.EmployeeRepository
	events     storage.EventRepository
	tasks      storage.TaskRepository
	activities storage.ActivityRepository

	employeeEx *extract.EmployeeExtractor
	eventEx    *extract.EventExtractor
	taskEx     *extract.TaskExtractor
	activityEx *extract.ActivityExtractor

	now    func() time.Time
	logger *slog.Logger

	classifierOpts []classify.Option
}

// AssistantOption configures an Assistant.
type AssistantOption func(*Assistant) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) AssistantOption {
	return func(a *Assistant) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// WithClock sets the time source used to resolve relative periods like
// "на этой неделе". Default is time.Now.
func WithClock(now func() time.Time) AssistantOption {
	return func(a *Assistant) error {
		if now != nil {
			a.now = now
		}
		return nil
	}
}

// WithClassifierOptions forwards options to the intent classifier.
func WithClassifierOptions(opts ...classify.Option) AssistantOption {
	return func(a *Assistant) error {
		a.classifierOpts = append(a.classifierOpts, opts...)
		return nil
	}
}

// NewAssistant creates an assistant over the given repositories.
// The fallback classifier may be nil, in which case queries the rule
// scorer cannot place are answered from the knowledge base or with the
// help message.
func NewAssistant(
	lex *lexicon.Lexicon,
	fallback ai.ZeroShotClassifier,
	employees storage.EmployeeRepository,
	events storage.EventRepository,
	tasks storage.TaskRepository,
	activities storage.ActivityRepository,
	opts ...AssistantOption,
) (*Assistant, error) {
	if lex == nil {
		return nil, ErrLexiconRequired
	}
	if employees == nil {
		return nil, ErrEmployeeRepositoryRequired
	}
	if events == nil {
		return nil, ErrEventRepositoryRequired
	}
	if tasks == nil {
		return nil, ErrTaskRepositoryRequired
	}
	if activities == nil {
		return nil, ErrActivityRepositoryRequired
	}

	a := &Assistant{
		employees:  employees,
		events:     events,
		tasks:      tasks,
		activities: activities,
		now:        time.Now,
		logger:     slog.Default(),
	}

	// Apply options before building the classifier and extractors so
	// they see the final clock and logger.
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	classifierOpts := append([]classify.Option{classify.WithLogger(a.logger)}, a.classifierOpts...)
	classifier, err := classify.NewClassifier(lex, fallback, classifierOpts...)
	if err != nil {
		return nil, err
	}
	a.classifier = classifier

	employeeEx, err := extract.NewEmployeeExtractor(lex)
	if err != nil {
		return nil, err
	}
	eventEx, err := extract.NewEventExtractor(lex, employees, extract.WithClock(a.now))
	if err != nil {
		return nil, err
	}
	taskEx, err := extract.NewTaskExtractor(lex, employees, extract.WithClock(a.now))
	if err != nil {
		return nil, err
	}
	activityEx, err := extract.NewActivityExtractor(lex, employees, extract.WithClock(a.now))
	if err != nil {
		return nil, err
	}

	a.employeeEx = employeeEx
	a.eventEx = eventEx
	a.taskEx = taskEx
	a.activityEx = activityEx

	return a, nil
}

// Answer is one reply of the assistant. Category, Confidence and
// Source carry the classification outcome alongside the rendered text.
type Answer struct {
	Category   core.Category
	Confidence float64
	Source     classify.Source
	Text       string
}

// Answer classifies the query, routes it to the matching extractor and
// repository, and renders the result. A failing zero-shot fallback
// degrades the query to unclassified instead of failing the call, and
// a failing record store yields a retry-later reply.
func (a *Assistant) Answer(ctx context.Context, query string) (*Answer, error) {
	lowered := lower(query)

	// Greetings short-circuit classification entirely.
	if isGreeting(lowered) {
		return &Answer{
			Category:   core.CategoryGreeting,
			Confidence: 1,
			Source:     classify.SourceRules,
			Text:       WelcomeMessage,
		}, nil
	}

	result, err := a.classifier.Classify(ctx, query)
	if err != nil {
		if !errors.Is(err, classify.ErrFallbackUnavailable) {
			return nil, err
		}
		a.logger.Warn("fallback classifier unavailable, degrading to unclassified", "err", err)
		result = &classify.Result{Category: core.CategoryUnclassified, Source: classify.SourceFallback}
	}

	text, err := a.answer(ctx, result.Category, query)
	if err != nil {
		// Storage trouble must not leave the user without a reply.
		a.logger.Error("answering query failed, sending retry message", "category", result.Category, "err", err)
		text = StoreUnavailable
	}

	return &Answer{
		Category:   result.Category,
		Confidence: result.Confidence,
		Source:     result.Source,
		Text:       text,
	}, nil
}

func (a *Assistant) answer(ctx context.Context, category core.Category, query string) (string, error) {
	switch category {
	case core.CategoryEmployeeSearch:
		return a.answerEmployees(ctx, query)
	case core.CategoryEventInfo:
		return a.answerEvents(ctx, query)
	case core.CategoryTaskInfo:
		return a.answerTasks(ctx, query)
	case core.CategorySocialActivity:
		return a.answerActivities(ctx, query)
	case core.CategoryGreeting:
		return WelcomeMessage, nil
	case core.CategoryGeneralInfo:
		return GeneralInfo(query), nil
	}

	// Unclassified: the knowledge base gets a shot before admitting defeat.
	if text := GeneralInfo(query); text != NoGeneralInfo {
		return text, nil
	}
	return UnclassifiedHelp, nil
}

func (a *Assistant) answerEmployees(ctx context.Context, query string) (string, error) {
	filter := a.employeeEx.Extract(query)
	found, err := a.employees.FindEmployees(ctx, filter)
	if err != nil {
		return "", err
	}
	return respond.Employees(found), nil
}

func (a *Assistant) answerEvents(ctx context.Context, query string) (string, error) {
	filter, err := a.eventEx.Extract(ctx, query)
	if err != nil {
		return "", err
	}
	found, err := a.events.FindEvents(ctx, filter)
	if err != nil {
		return "", err
	}
	var ids []core.ID
	for _, event := range found {
		ids = append(ids, event.ParticipantIds...)
	}
	names, err := a.employeeNames(ctx, ids)
	if err != nil {
		return "", err
	}
	return respond.Events(found, names), nil
}

func (a *Assistant) answerTasks(ctx context.Context, query string) (string, error) {
	filter, err := a.taskEx.Extract(ctx, query)
	if err != nil {
		return "", err
	}
	found, err := a.tasks.FindTasks(ctx, filter)
	if err != nil {
		return "", err
	}
	var ids []core.ID
	for _, task := range found {
		if task.AssigneeId != 0 {
			ids = append(ids, task.AssigneeId)
		}
	}
	names, err := a.employeeNames(ctx, ids)
	if err != nil {
		return "", err
	}
	return respond.Tasks(found, names), nil
}

func (a *Assistant) answerActivities(ctx context.Context, query string) (string, error) {
	filter, err := a.activityEx.Extract(ctx, query)
	if err != nil {
		return "", err
	}
	found, err := a.activities.FindActivities(ctx, filter)
	if err != nil {
		return "", err
	}
	var ids []core.ID
	for _, activity := range found {
		ids = append(ids, activity.ParticipantIds...)
	}
	names, err := a.employeeNames(ctx, ids)
	if err != nil {
		return "", err
	}
	return respond.Activities(found, names), nil
}

// employeeNames resolves employee IDs to display names. Unknown IDs
// are simply absent from the map.
func (a *Assistant) employeeNames(ctx context.Context, ids []core.ID) (map[core.ID]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	seen := make(map[core.ID]bool, len(ids))
	unique := make([]core.ID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	found, err := a.employees.GetEmployees(ctx, unique...)
	if err != nil {
		return nil, err
	}

	names := make(map[core.ID]string, len(found))
	for _, employee := range found {
		names[employee.Id] = employee.Name
	}
	return names, nil
}
