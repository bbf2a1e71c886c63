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

// Package classify turns a free-text query into an intent category.
//
// Classification is hybrid: a deterministic scorer accumulates weighted
// lexicon matches (keywords, synonyms, example phrases, secondary
// dictionaries) for every category, and a zero-shot model is consulted
// only when the best rule score falls below a confidence floor. A second,
// lower floor demotes weak winners to the unclassified category while
// preserving the numeric confidence for the caller.
package classify
