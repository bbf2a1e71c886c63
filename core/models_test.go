package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "same content produces same ID", content: "ivan@company.com"},
		{name: "empty string", content: ""},
		{name: "cyrillic content", content: "Иван Петров"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("ivan@company.com")
	id2 := IDFromContent("anna@company.com")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestTaskStatus_Label_RoundTrip(t *testing.T) {
	for _, s := range []TaskStatus{TaskTodo, TaskInProgress, TaskDone, TaskBlocked} {
		if got := ParseTaskStatus(s.Label()); got != s {
			t.Errorf("ParseTaskStatus(%q) = %v, want %v", s.Label(), got, s)
		}
	}
	if got := ParseTaskStatus("nonsense"); got != 0 {
		t.Errorf("ParseTaskStatus(unknown) = %v, want 0", got)
	}
}

func TestPriority_Label_RoundTrip(t *testing.T) {
	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh} {
		if got := ParsePriority(p.Label()); got != p {
			t.Errorf("ParsePriority(%q) = %v, want %v", p.Label(), got, p)
		}
	}
}

func TestEventType_Label(t *testing.T) {
	if got := EventBirthday.Label(); got != "день рождения" {
		t.Errorf("EventBirthday.Label() = %q", got)
	}
	if got := EventType(99).Label(); got != "неизвестно" {
		t.Errorf("unknown EventType label = %q", got)
	}
}

func TestCategoryFromLabel(t *testing.T) {
	tests := []struct {
		label string
		want  Category
	}{
		{"поиск сотрудника", CategoryEmployeeSearch},
		{"информация о мероприятии", CategoryEventInfo},
		{"информация о задаче", CategoryTaskInfo},
		{"социальные активности", CategorySocialActivity},
		{"приветствие", CategoryGreeting},
		{"общая информация", CategoryGeneralInfo},
		{"неопределенный запрос", CategoryUnclassified},
		{"что-то другое", CategoryUnclassified},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := CategoryFromLabel(tt.label); got != tt.want {
				t.Errorf("CategoryFromLabel(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestCategoryLabels(t *testing.T) {
	labels := CategoryLabels()
	if len(labels) != len(Categories)+1 {
		t.Fatalf("CategoryLabels() returned %d labels, want %d", len(labels), len(Categories)+1)
	}
	if labels[len(labels)-1] != "неопределенный запрос" {
		t.Errorf("last label = %q, want unclassified", labels[len(labels)-1])
	}
}
