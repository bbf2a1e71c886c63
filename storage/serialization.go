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

package storage

import (
	"github.com/poiesic/collegium/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalEmployee serializes an Employee to bytes.
func MarshalEmployee(employee *core.Employee) []byte {
	buf := make([]byte, core.EmployeeMUS.Size(*employee))
	core.EmployeeMUS.Marshal(*employee, buf)
	return buf
}

// UnmarshalEmployee deserializes an Employee from bytes.
func UnmarshalEmployee(data []byte) (*core.Employee, error) {
	employee, _, err := core.EmployeeMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// MarshalEvent serializes an Event to bytes.
func MarshalEvent(event *core.Event) []byte {
	buf := make([]byte, core.EventMUS.Size(*event))
	core.EventMUS.Marshal(*event, buf)
	return buf
}

// UnmarshalEvent deserializes an Event from bytes.
func UnmarshalEvent(data []byte) (*core.Event, error) {
	event, _, err := core.EventMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// MarshalTask serializes a Task to bytes.
func MarshalTask(task *core.Task) []byte {
	buf := make([]byte, core.TaskMUS.Size(*task))
	core.TaskMUS.Marshal(*task, buf)
	return buf
}

// UnmarshalTask deserializes a Task from bytes.
func UnmarshalTask(data []byte) (*core.Task, error) {
	task, _, err := core.TaskMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// MarshalActivity serializes an Activity to bytes.
func MarshalActivity(activity *core.Activity) []byte {
	buf := make([]byte, core.ActivityMUS.Size(*activity))
	core.ActivityMUS.Marshal(*activity, buf)
	return buf
}

// UnmarshalActivity deserializes an Activity from bytes.
func UnmarshalActivity(data []byte) (*core.Activity, error) {
	activity, _, err := core.ActivityMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &activity, nil
}
