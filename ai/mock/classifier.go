package mock

import (
	"context"

	"github.com/poiesic/collegium/ai"
)

// MockClassifier is a test double for ai.ZeroShotClassifier.
// It allows custom behavior injection via function fields.
type MockClassifier struct {
	// ClassifyFunc is called by Classify if set.
	// If nil, uses default deterministic behavior.
	ClassifyFunc func(ctx context.Context, text string, labels []string) ([]ai.LabelScore, error)

	callCount int
}

// NewMockClassifier creates a mock classifier with default deterministic
// behavior.
// Note: Returns concrete type to allow behavior injection and assertions.
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{}
}

// WithClassifyFunc sets the custom classify behavior and returns the mock
// for chaining.
func (m *MockClassifier) WithClassifyFunc(fn func(ctx context.Context, text string, labels []string) ([]ai.LabelScore, error)) *MockClassifier {
	m.ClassifyFunc = fn
	return m
}

// Classify scores the offered labels.
// Default behavior: the first label gets 0.5, every following label half of
// the previous one. Deterministic and independent of the text.
func (m *MockClassifier) Classify(ctx context.Context, text string, labels []string) ([]ai.LabelScore, error) {
	m.callCount++

	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, text, labels)
	}

	scores := make([]ai.LabelScore, 0, len(labels))
	score := 0.5
	for _, label := range labels {
		scores = append(scores, ai.LabelScore{Label: label, Score: score})
		score /= 2
	}
	return scores, nil
}

// CallCount returns the number of times Classify was called.
func (m *MockClassifier) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockClassifier) Reset() {
	m.callCount = 0
	m.ClassifyFunc = nil
}
