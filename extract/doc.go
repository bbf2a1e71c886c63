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

// Package extract turns free-text queries into typed storage filters,
// one extractor per record domain.
//
// Extractors work on the raw lowercase query (not the normalized form
// the classifier uses): stop words like "кто" can carry no filter
// signal, but surface forms such as "в работе" must survive intact.
//
// Each extractor composes a conjunction of conditions from its domain
// dictionaries, named-entity references and temporal cues; only when
// none of those fire does it fall back to a single OR-group matching the
// whole query across the domain's text fields.
package extract
