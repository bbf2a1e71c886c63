package ai

import "context"

// LabelScore pairs a candidate label with its probability.
// Scores need not sum to 1 across an arbitrary label set; they only have
// to be comparable for argmax.
type LabelScore struct {
	Label string
	Score float64
}

// ZeroShotClassifier scores a text against an arbitrary set of candidate
// labels. Implementations must be thread-safe for concurrent use.
type ZeroShotClassifier interface {
	// Classify returns one score per offered label, ordered by score
	// descending. Every offered label appears exactly once in the result
	// with a score >= 0.
	// Returns an error if the underlying model is unreachable or the
	// context deadline expires; no retries are attempted.
	Classify(ctx context.Context, text string, labels []string) ([]LabelScore, error)
}
