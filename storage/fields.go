package storage

import (
	"time"

	"github.com/poiesic/collegium/core"
)

// EmployeeFields adapts an Employee to filter evaluation.
type EmployeeFields struct {
	*core.Employee
}

func (e EmployeeFields) StringField(f Field) string {
	switch f {
	case FieldName:
		return e.Name
	case FieldPosition:
		return e.Position
	case FieldDepartment:
		return e.Department
	case FieldEmail:
		return e.Email
	case FieldSkills:
		return e.Skills
	case FieldInterests:
		return e.Interests
	case FieldBio:
		return e.Bio
	}
	return ""
}

func (e EmployeeFields) TimeField(f Field) time.Time {
	switch f {
	case FieldDate:
		return e.HireDate
	}
	return time.Time{}
}

func (e EmployeeFields) RefsField(Field) []core.ID { return nil }

func (e EmployeeFields) BoolField(Field) bool { return false }

// EventFields adapts an Event to filter evaluation.
type EventFields struct {
	*core.Event
}

func (e EventFields) StringField(f Field) string {
	switch f {
	case FieldName, FieldTitle:
		return e.Name
	case FieldType:
		return e.Type.Label()
	case FieldLocation:
		return e.Location
	case FieldDescription:
		return e.Description
	}
	return ""
}

func (e EventFields) TimeField(f Field) time.Time {
	switch f {
	case FieldDate:
		return e.Date
	}
	return time.Time{}
}

func (e EventFields) RefsField(f Field) []core.ID {
	switch f {
	case FieldParticipants:
		return e.ParticipantIds
	}
	return nil
}

func (e EventFields) BoolField(Field) bool { return false }

// TaskFields adapts a Task to filter evaluation.
type TaskFields struct {
	*core.Task
}

func (t TaskFields) StringField(f Field) string {
	switch f {
	case FieldName, FieldTitle:
		return t.Title
	case FieldStatus:
		return t.Status.Label()
	case FieldPriority:
		return t.Priority.Label()
	case FieldDescription:
		return t.Description
	case FieldTags:
		return t.Tags
	}
	return ""
}

func (t TaskFields) TimeField(f Field) time.Time {
	switch f {
	case FieldDeadline, FieldDate:
		return t.Deadline
	}
	return time.Time{}
}

func (t TaskFields) RefsField(f Field) []core.ID {
	switch f {
	case FieldAssignee:
		if t.AssigneeId == 0 {
			return nil
		}
		return []core.ID{t.AssigneeId}
	}
	return nil
}

func (t TaskFields) BoolField(Field) bool { return false }

// ActivityFields adapts an Activity to filter evaluation.
type ActivityFields struct {
	*core.Activity
}

func (a ActivityFields) StringField(f Field) string {
	switch f {
	case FieldName, FieldTitle:
		return a.Name
	case FieldType:
		return a.Type.Label()
	case FieldLocation:
		return a.Location
	case FieldDescription:
		return a.Description
	case FieldTags:
		return a.Tags
	}
	return ""
}

func (a ActivityFields) TimeField(f Field) time.Time {
	switch f {
	case FieldDate:
		return a.Date
	}
	return time.Time{}
}

func (a ActivityFields) RefsField(f Field) []core.ID {
	switch f {
	case FieldParticipants:
		return a.ParticipantIds
	}
	return nil
}

func (a ActivityFields) BoolField(f Field) bool {
	switch f {
	case FieldActive:
		return a.IsActive
	}
	return false
}
