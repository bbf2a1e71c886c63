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

package classify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/collegium/ai"
	"github.com/poiesic/collegium/core"
	"github.com/poiesic/collegium/lexicon"
)

const (
	// DefaultRuleFloor decides whether keyword matching is trusted at all.
	DefaultRuleFloor = 0.3
	// DefaultFinalFloor decides whether to admit defeat and return the
	// unclassified category even after the fallback ran.
	DefaultFinalFloor = 0.2
)

// Source records which stage produced a classification result.
type Source string

const (
	// SourceRules means the deterministic scorer won outright.
	SourceRules Source = "rules"
	// SourceFallback means the zero-shot model was consulted.
	SourceFallback Source = "fallback"
)

// Result is the outcome of classifying one query.
// Confidence is preserved even when the category is demoted to
// unclassified by the final floor.
type Result struct {
	Category   core.Category
	Confidence float64
	Source     Source
}

// Classifier resolves query intent with rule scoring first and a
// zero-shot model second.
type Classifier struct {
	scorer     *Scorer
	fallback   ai.ZeroShotClassifier
	ruleFloor  float64
	finalFloor float64
	logger     *slog.Logger
}

// Option configures a Classifier.
type Option func(*Classifier) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// WithRuleFloor overrides the rule-confidence floor below which the
// fallback model is consulted.
func WithRuleFloor(floor float64) Option {
	return func(c *Classifier) error {
		if floor < 0 {
			return ErrInvalidFloor
		}
		c.ruleFloor = floor
		return nil
	}
}

// WithFinalFloor overrides the floor below which results are demoted to
// the unclassified category.
func WithFinalFloor(floor float64) Option {
	return func(c *Classifier) error {
		if floor < 0 {
			return ErrInvalidFloor
		}
		c.finalFloor = floor
		return nil
	}
}

// NewClassifier creates a classifier over the given lexicon.
// fallback may be nil, in which case queries the rule scorer cannot
// resolve fail with ErrFallbackUnavailable.
func NewClassifier(lex *lexicon.Lexicon, fallback ai.ZeroShotClassifier, opts ...Option) (*Classifier, error) {
	scorer, err := NewScorer(lex)
	if err != nil {
		return nil, err
	}

	c := &Classifier{
		scorer:     scorer,
		fallback:   fallback,
		ruleFloor:  DefaultRuleFloor,
		finalFloor: DefaultFinalFloor,
		logger:     slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Classify resolves the intent of a free-text query.
//
// The query is normalized, scored against every category, and the best
// rule score wins unless it falls below the rule floor. In that case the
// zero-shot fallback is consulted with the full label set and its top
// label taken instead. Either way, a confidence below the final floor
// demotes the category to unclassified while keeping the confidence.
func (c *Classifier) Classify(ctx context.Context, query string) (*Result, error) {
	normalized := Normalize(query)
	c.logger.Debug("classifying query", "normalized", normalized)

	result := &Result{Category: core.Categories[0], Source: SourceRules}
	for _, category := range core.Categories {
		score := c.scorer.Score(normalized, category)
		if score > result.Confidence {
			result.Category = category
			result.Confidence = score
		}
	}

	if result.Confidence < c.ruleFloor {
		fallbackResult, err := c.classifyWithFallback(ctx, normalized)
		if err != nil {
			return nil, err
		}
		result = fallbackResult
	}

	if result.Confidence < c.finalFloor {
		result.Category = core.CategoryUnclassified
	}

	c.logger.Info("classified query",
		"category", result.Category.Label(),
		"confidence", result.Confidence,
		"source", result.Source)

	return result, nil
}

func (c *Classifier) classifyWithFallback(ctx context.Context, normalized string) (*Result, error) {
	if c.fallback == nil {
		return nil, ErrFallbackUnavailable
	}

	c.logger.Info("rule scores inconclusive, using zero-shot fallback")

	scores, err := c.fallback.Classify(ctx, normalized, core.CategoryLabels())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFallbackUnavailable, err)
	}
	if len(scores) == 0 {
		return nil, fmt.Errorf("%w: empty label scores", ErrFallbackUnavailable)
	}

	top := scores[0]
	return &Result{
		Category:   core.CategoryFromLabel(top.Label),
		Confidence: top.Score,
		Source:     SourceFallback,
	}, nil
}
