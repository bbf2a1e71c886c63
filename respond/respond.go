package respond

import (
	"fmt"
	"sort"
	"strings"

	"github.com/poiesic/collegium/core"
)

// Empty-result messages per record domain. An empty collection is a
// normal outcome, not an error.
const (
	NoEmployees  = "Сотрудники не найдены. Попробуйте уточнить критерии поиска."
	NoEvents     = "Мероприятия не найдены."
	NoTasks      = "Задачи не найдены."
	NoActivities = "Активности не найдены."
)

const dateLayout = "2006-01-02"
const timeLayout = "15:04"

// Employees renders employees grouped by department.
// Groups and records are stably ordered.
func Employees(employees []*core.Employee) string {
	if len(employees) == 0 {
		return NoEmployees
	}

	groups := make(map[string][]*core.Employee)
	for _, e := range employees {
		groups[e.Department] = append(groups[e.Department], e)
	}

	var b strings.Builder
	b.WriteString("Найдены следующие сотрудники:\n\n")
	for _, dept := range sortedKeys(groups) {
		fmt.Fprintf(&b, "📌 %s:\n", dept)
		emps := groups[dept]
		sort.Slice(emps, func(i, j int) bool { return emps[i].Name < emps[j].Name })
		for _, e := range emps {
			fmt.Fprintf(&b, "• %s - %s\n", e.Name, e.Position)
			if e.Skills != "" {
				fmt.Fprintf(&b, "  🛠️ Навыки: %s\n", e.Skills)
			}
			if e.Interests != "" {
				fmt.Fprintf(&b, "  🎯 Интересы: %s\n", e.Interests)
			}
			if e.Bio != "" {
				fmt.Fprintf(&b, "  📝 О себе: %s\n", e.Bio)
			}
			if e.Email != "" {
				fmt.Fprintf(&b, "  📧 Email: %s\n", e.Email)
			}
			if e.Phone != "" {
				fmt.Fprintf(&b, "  📱 Телефон: %s\n", e.Phone)
			}
			if !e.HireDate.IsZero() {
				fmt.Fprintf(&b, "  📅 В компании с: %s\n", e.HireDate.Format(dateLayout))
			}
			if !e.Birthday.IsZero() {
				fmt.Fprintf(&b, "  🎂 День рождения: %s\n", e.Birthday.Format(dateLayout))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Events renders events grouped by date. The names map resolves
// participant IDs; unknown IDs are skipped.
func Events(events []*core.Event, names map[core.ID]string) string {
	if len(events) == 0 {
		return NoEvents
	}

	groups := make(map[string][]*core.Event)
	for _, e := range events {
		groups[e.Date.Format(dateLayout)] = append(groups[e.Date.Format(dateLayout)], e)
	}

	var b strings.Builder
	b.WriteString("Найдены следующие мероприятия:\n\n")
	for _, date := range sortedKeys(groups) {
		fmt.Fprintf(&b, "📅 %s:\n", date)
		evts := groups[date]
		sort.Slice(evts, func(i, j int) bool { return evts[i].Name < evts[j].Name })
		for _, e := range evts {
			fmt.Fprintf(&b, "• %s (%s)\n", e.Name, e.Type.Label())
			if h, m, _ := e.Date.Clock(); h != 0 || m != 0 {
				fmt.Fprintf(&b, "  🕒 %s\n", e.Date.Format(timeLayout))
			}
			if e.Description != "" {
				fmt.Fprintf(&b, "  %s\n", e.Description)
			}
			if e.Location != "" {
				fmt.Fprintf(&b, "  📍 %s\n", e.Location)
			}
			if participants := joinNames(e.ParticipantIds, names); participants != "" {
				fmt.Fprintf(&b, "  👥 Участники: %s\n", participants)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Tasks renders tasks grouped by status. The names map resolves
// assignee IDs.
func Tasks(tasks []*core.Task, names map[core.ID]string) string {
	if len(tasks) == 0 {
		return NoTasks
	}

	groups := make(map[string][]*core.Task)
	for _, t := range tasks {
		groups[t.Status.Label()] = append(groups[t.Status.Label()], t)
	}

	var b strings.Builder
	b.WriteString("Найдены следующие задачи:\n\n")
	for _, status := range sortedKeys(groups) {
		fmt.Fprintf(&b, "📌 %s:\n", status)
		tsks := groups[status]
		sort.Slice(tsks, func(i, j int) bool { return tsks[i].Title < tsks[j].Title })
		for _, t := range tsks {
			fmt.Fprintf(&b, "• %s\n", t.Title)
			if t.Description != "" {
				fmt.Fprintf(&b, "  %s\n", t.Description)
			}
			if !t.Deadline.IsZero() {
				fmt.Fprintf(&b, "  📅 Срок: %s\n", t.Deadline.Format(dateLayout))
			}
			if name, ok := names[t.AssigneeId]; ok {
				fmt.Fprintf(&b, "  👤 Исполнитель: %s\n", name)
			}
			if t.Priority != 0 {
				fmt.Fprintf(&b, "  ⚡ Приоритет: %s\n", t.Priority.Label())
			}
			if t.Tags != "" {
				fmt.Fprintf(&b, "  🏷️ Теги: %s\n", t.Tags)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Activities renders activities grouped by date.
func Activities(activities []*core.Activity, names map[core.ID]string) string {
	if len(activities) == 0 {
		return NoActivities
	}

	groups := make(map[string][]*core.Activity)
	for _, a := range activities {
		groups[a.Date.Format(dateLayout)] = append(groups[a.Date.Format(dateLayout)], a)
	}

	var b strings.Builder
	b.WriteString("Найдены следующие активности:\n\n")
	for _, date := range sortedKeys(groups) {
		fmt.Fprintf(&b, "📅 %s:\n", date)
		acts := groups[date]
		sort.Slice(acts, func(i, j int) bool { return acts[i].Name < acts[j].Name })
		for _, a := range acts {
			fmt.Fprintf(&b, "• %s (%s)\n", a.Name, a.Type.Label())
			if h, m, _ := a.Date.Clock(); h != 0 || m != 0 {
				fmt.Fprintf(&b, "  🕒 %s\n", a.Date.Format(timeLayout))
			}
			if a.Description != "" {
				fmt.Fprintf(&b, "  %s\n", a.Description)
			}
			if a.Location != "" {
				fmt.Fprintf(&b, "  📍 %s\n", a.Location)
			}
			if a.MaxParticipants > 0 {
				fmt.Fprintf(&b, "  👥 Максимум участников: %d\n", a.MaxParticipants)
			}
			if participants := joinNames(a.ParticipantIds, names); participants != "" {
				fmt.Fprintf(&b, "  👥 Участники: %s\n", participants)
			}
			if a.Tags != "" {
				fmt.Fprintf(&b, "  🏷️ Теги: %s\n", a.Tags)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func joinNames(ids []core.ID, names map[core.ID]string) string {
	var resolved []string
	for _, id := range ids {
		if name, ok := names[id]; ok {
			resolved = append(resolved, name)
		}
	}
	return strings.Join(resolved, ", ")
}
