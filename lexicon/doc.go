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

// Package lexicon holds the static classification data for the query pipeline.
//
// Each scoreable category carries a keyword list, a synonym list and a list
// of example phrases. Categories that drive record search additionally expose
// secondary dictionaries (skills, roles, departments, time periods, event
// types, task statuses, priorities, activity types) mapping canonical tags
// to their lowercase surface forms.
//
// The lexicon is tuned for Russian queries. It is built once at process
// start via Default() and passed explicitly into the scorer and the
// attribute extractors; nothing in this package mutates it afterwards, so a
// single instance can serve concurrent requests.
package lexicon
