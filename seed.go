package collegium

import (
	"context"
	"time"

	"github.com/poiesic/collegium/core"
)

// SeedRecords is the demo dataset: five employees, three events, three
// tasks and three activities. IDs are derived from record content so
// repeated seeding overwrites instead of duplicating.
type SeedRecords struct {
	Employees  []*core.Employee
	Events     []*core.Event
	Tasks      []*core.Task
	Activities []*core.Activity
}

// NewSeedRecords builds a fresh copy of the demo dataset.
func NewSeedRecords() *SeedRecords {
	ivan := core.IDFromContent("ivan@company.com")
	anna := core.IDFromContent("anna@company.com")
	dmitry := core.IDFromContent("dmitry@company.com")
	maria := core.IDFromContent("maria@company.com")
	alexey := core.IDFromContent("alexey@company.com")

	return &SeedRecords{
		Employees: []*core.Employee{
			{
				Id:         ivan,
				Name:       "Иван Петров",
				Position:   "Senior Developer",
				Department: "IT",
				Email:      "ivan@company.com",
				Phone:      "+7 (999) 123-45-67",
				HireDate:   date(2020, time.January, 15),
				Birthday:   date(1985, time.May, 20),
				Skills:     "Python, Django, PostgreSQL, Docker",
				Interests:  "настольные игры, программирование, путешествия",
				Bio:        "Опытный разработчик с 10-летним стажем",
			},
			{
				Id:         anna,
				Name:       "Анна Сидорова",
				Position:   "HR Manager",
				Department: "HR",
				Email:      "anna@company.com",
				Phone:      "+7 (999) 234-56-78",
				HireDate:   date(2019, time.March, 10),
				Birthday:   date(1990, time.August, 15),
				Skills:     "HR, рекрутинг, обучение персонала",
				Interests:  "йога, танцы, психология",
				Bio:        "HR специалист с опытом в IT компаниях",
			},
			{
				Id:         dmitry,
				Name:       "Дмитрий Козлов",
				Position:   "Developer",
				Department: "IT",
				Email:      "dmitry@company.com",
				Phone:      "+7 (999) 345-67-89",
				HireDate:   date(2021, time.June, 1),
				Birthday:   date(1995, time.March, 25),
				Skills:     "Python, FastAPI, MongoDB, React",
				Interests:  "настольные игры, спорт, музыка",
				Bio:        "Full-stack разработчик",
			},
			{
				Id:         maria,
				Name:       "Мария Иванова",
				Position:   "QA Engineer",
				Department: "IT",
				Email:      "maria@company.com",
				Phone:      "+7 (999) 456-78-90",
				HireDate:   date(2022, time.February, 15),
				Birthday:   date(1992, time.November, 10),
				Skills:     "Python, Selenium, Pytest, Postman",
				Interests:  "тестирование, танцы, йога, путешествия",
				Bio:        "QA инженер с опытом автоматизации тестирования",
			},
			{
				Id:         alexey,
				Name:       "Алексей Смирнов",
				Position:   "Project Manager",
				Department: "IT",
				Email:      "alexey@company.com",
				Phone:      "+7 (999) 567-89-01",
				HireDate:   date(2018, time.September, 1),
				Birthday:   date(1988, time.July, 5),
				Skills:     "Agile, Scrum, Jira, Python",
				Interests:  "настольные игры, теннис, чтение",
				Bio:        "Опытный проект-менеджер в IT",
			},
		},
		Events: []*core.Event{
			{
				Id:             core.IDFromContent("Python Meetup"),
				Name:           "Python Meetup",
				Type:           core.EventConference,
				Date:           datetime(2025, time.May, 20, 15, 0),
				Location:       "Конференц-зал",
				Description:    "Встреча Python-разработчиков компании",
				ParticipantIds: []core.ID{ivan, anna, dmitry},
			},
			{
				Id:             core.IDFromContent("Тренинг по Agile"),
				Name:           "Тренинг по Agile",
				Type:           core.EventTraining,
				Date:           datetime(2025, time.May, 22, 10, 0),
				Location:       "Тренинг-зал",
				Description:    "Обучение методологии Agile",
				ParticipantIds: []core.ID{anna, dmitry, maria, alexey},
			},
			{
				Id:             core.IDFromContent("День рождения Анны"),
				Name:           "День рождения Анны",
				Type:           core.EventBirthday,
				Date:           datetime(2025, time.August, 15, 12, 0),
				Location:       "Офис",
				Description:    "Празднование дня рождения",
				ParticipantIds: []core.ID{ivan, anna, dmitry, maria, alexey},
			},
		},
		Tasks: []*core.Task{
			{
				Id:          core.IDFromContent("Рефакторинг API"),
				Title:       "Рефакторинг API",
				Description: "Оптимизация существующего API",
				Status:      core.TaskInProgress,
				Deadline:    date(2025, time.May, 25),
				AssigneeId:  ivan,
				Tags:        "python, api, optimization",
			},
			{
				Id:          core.IDFromContent("Написание тестов"),
				Title:       "Написание тестов",
				Description: "Автоматизация тестирования",
				Status:      core.TaskTodo,
				Deadline:    date(2025, time.May, 30),
				AssigneeId:  maria,
				Tags:        "testing, automation, python",
			},
			{
				Id:          core.IDFromContent("Исправление бага в авторизации"),
				Title:       "Исправление бага в авторизации",
				Description: "Критический баг в системе авторизации",
				Status:      core.TaskBlocked,
				Deadline:    date(2025, time.May, 18),
				AssigneeId:  dmitry,
				Tags:        "bug, auth, critical",
			},
		},
		Activities: []*core.Activity{
			{
				Id:              core.IDFromContent("Настольные игры"),
				Name:            "Настольные игры",
				Type:            core.ActivityGame,
				Date:            datetime(2025, time.May, 21, 18, 0),
				Location:        "Игровая комната",
				Description:     "Еженедельные настольные игры",
				MaxParticipants: 8,
				IsActive:        true,
				Tags:            "games, team building",
				ParticipantIds:  []core.ID{ivan, anna, dmitry},
			},
			{
				Id:              core.IDFromContent("Йога в офисе"),
				Name:            "Йога в офисе",
				Type:            core.ActivityTraining,
				Date:            datetime(2025, time.May, 23, 9, 0),
				Location:        "Тренинг-зал",
				Description:     "Утренняя йога для сотрудников",
				MaxParticipants: 10,
				IsActive:        true,
				Tags:            "yoga, health, morning",
				ParticipantIds:  []core.ID{anna, maria},
			},
			{
				Id:              core.IDFromContent("Совместный обед"),
				Name:            "Совместный обед",
				Type:            core.ActivityLunch,
				Date:            datetime(2025, time.May, 24, 13, 0),
				Location:        "Столовая",
				Description:     "Еженедельный обед команды",
				MaxParticipants: 6,
				IsActive:        true,
				Tags:            "lunch, team building",
				ParticipantIds:  []core.ID{ivan, anna, dmitry, maria, alexey},
			},
		},
	}
}

// Seed writes the demo dataset into the database.
func (db *Database) Seed(ctx context.Context) error {
	records := NewSeedRecords()

	if _, err := db.employees.AddEmployees(ctx, records.Employees...); err != nil {
		return err
	}
	if _, err := db.events.AddEvents(ctx, records.Events...); err != nil {
		return err
	}
	if _, err := db.tasks.AddTasks(ctx, records.Tasks...); err != nil {
		return err
	}
	if _, err := db.activities.AddActivities(ctx, records.Activities...); err != nil {
		return err
	}
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func datetime(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.Local)
}
