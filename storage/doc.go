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

// Package storage provides the storage abstraction layer for collegium.
//
// This package defines repository interfaces that decouple storage
// implementation from business logic, plus the typed filter model the
// attribute extractors emit. It allows for different storage backends
// (BadgerDB, in-memory, etc.) to be used interchangeably.
//
// # Filter Model
//
// A Filter is a conjunction of Conditions; disjunction appears only as
// an OpAnyOf group nested inside the conjunction. Conditions are
// evaluated against records through the FieldReader adapters
// (EmployeeFields, EventFields, TaskFields, ActivityFields), which keeps
// filter evaluation independent of any particular backend:
//
//	f := storage.Filter{All: []storage.Condition{
//	    storage.Contains(storage.FieldSkills, "python"),
//	    storage.Equals(storage.FieldDepartment, "IT"),
//	}}
//	match := storage.MatchFilter(storage.EmployeeFields{Employee: e}, f)
//
// # Constructor Return Type Pattern
//
// This package follows a strict "return interface" pattern for all public
// constructors to enforce abstraction and enable multiple storage backend
// implementations:
//
//	repo, err := badger.NewEmployeeRepository(backend)  // returns storage.EmployeeRepository
//
// Internal package constructors may return concrete types since they're
// only used within the implementation package.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation and
// timeout support. Pass context.Background() for operations without
// specific timeout requirements.
package storage
