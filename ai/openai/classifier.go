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

package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/poiesic/collegium/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Classifier implements ai.ZeroShotClassifier using OpenAI-compatible chat APIs.
type Classifier struct {
	client  llms.Model
	timeout time.Duration
	logger  *slog.Logger
}

// labelScore is an internal type used for JSON unmarshaling.
// It matches the structure expected from the LLM.
type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// scoring is the wrapper structure for the LLM's JSON response.
type scoring struct {
	Scores []labelScore `json:"scores"`
}

// newClassifier is an internal constructor that returns the concrete type.
func newClassifier(config *ai.Config) (*Classifier, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't
	// require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.ClassifierHost),
		openai.WithToken("none"),
		openai.WithModel(config.ClassifierModel),
	)
	if err != nil {
		return nil, err
	}

	return &Classifier{
		client:  client,
		timeout: config.Timeout,
		logger:  slog.Default().With("component", "openai-classifier"),
	}, nil
}

// NewClassifier creates a new zero-shot classifier using the provided
// configuration.
//
// Returns ai.ZeroShotClassifier interface to enforce abstraction.
func NewClassifier(config *ai.Config) (ai.ZeroShotClassifier, error) {
	return newClassifier(config)
}

// Classify scores the text against the offered labels with a single LLM call.
// There is deliberately no retry loop: the caller degrades to a default
// intent when the model is unreachable or returns garbage.
func (c *Classifier) Classify(ctx context.Context, text string, labels []string) ([]ai.LabelScore, error) {
	if len(labels) == 0 {
		return []ai.LabelScore{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text = scrubString(text)
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildSystemPrompt(labels)),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	response, err := c.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
	if err != nil {
		c.logger.Error("failed to generate content", "err", err)
		return nil, err
	}
	if len(response.Choices) < 1 {
		return nil, fmt.Errorf("classifier returned no choices")
	}

	// Strip markdown code fences if present
	responseText := strings.TrimSpace(response.Choices[0].Content)
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")
	responseText = strings.TrimSpace(responseText)

	responseText = repairJSON(responseText)

	var result scoring
	if err := json.Unmarshal([]byte(responseText), &result); err != nil {
		c.logger.Warn("error parsing classifier response", "response", responseText, "err", err)
		return nil, fmt.Errorf("malformed classifier response: %w", err)
	}

	// Every offered label must appear exactly once with a score >= 0,
	// regardless of what the model produced.
	byLabel := make(map[string]float64, len(result.Scores))
	for _, ls := range result.Scores {
		if ls.Score < 0 {
			ls.Score = 0
		}
		byLabel[ls.Label] = ls.Score
	}

	scores := make([]ai.LabelScore, 0, len(labels))
	for _, label := range labels {
		scores = append(scores, ai.LabelScore{Label: label, Score: byLabel[label]})
	}
	slices.SortStableFunc(scores, func(a, b ai.LabelScore) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	c.logger.Debug("zero-shot classification", "top", scores[0].Label, "score", scores[0].Score)
	return scores, nil
}
