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

// Package ai provides abstractions for the statistical fallback classifier.
//
// The rule-based scorer handles the bulk of intent classification; this
// package defines the ZeroShotClassifier interface it falls back to when
// keyword scoring is inconclusive. The interface takes an arbitrary label
// set and returns comparable per-label scores, mirroring a zero-shot
// classification model.
//
// # Implementation Packages
//
//   - ai/openai: production implementation using OpenAI-compatible chat APIs
//   - ai/mock: test doubles for unit testing without external dependencies
//
// Public constructors (openai.NewClassifier) return the interface type to
// enforce abstraction. Mock constructors return concrete types so tests can
// inject behavior and assert on call counts.
//
// # Usage Example
//
//	cfg := ai.DefaultConfig()
//	clf, err := openai.NewClassifier(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	scores, err := clf.Classify(ctx, "кто знает python", core.CategoryLabels())
package ai
