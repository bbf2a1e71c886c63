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

import "errors"

var (
	// ErrLexiconRequired is returned when a lexicon is not provided.
	ErrLexiconRequired = errors.New("lexicon required")

	// ErrInvalidFloor is returned when a confidence floor is negative.
	ErrInvalidFloor = errors.New("confidence floor must not be negative")

	// ErrFallbackUnavailable is returned when rule scoring is inconclusive
	// and the zero-shot fallback cannot produce a result. Callers should
	// degrade to the unclassified category with zero confidence.
	ErrFallbackUnavailable = errors.New("zero-shot fallback unavailable")
)
