package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/collegium/core"
	"github.com/poiesic/collegium/storage"
)

func TestEmployeeBasics(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	employee := &core.Employee{
		Name:       "Иван Петров",
		Position:   "Разработчик",
		Department: "IT",
		Email:      "ivan.petrov@example.com",
		Skills:     "python, django",
	}

	added, err := repos.Employees.AddEmployees(ctx, employee)
	if err != nil {
		t.Fatalf("Failed to add employee: %v", err)
	}
	if len(added) != 1 {
		t.Fatalf("Expected 1 employee, got %d", len(added))
	}
	if added[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}
	if added[0].InsertedAt.IsZero() {
		t.Fatal("Expected InsertedAt to be set")
	}

	retrieved, err := repos.Employees.GetEmployee(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get employee: %v", err)
	}
	if retrieved.Name != "Иван Петров" {
		t.Fatalf("Expected 'Иван Петров', got '%s'", retrieved.Name)
	}
}

func TestEmployeeContentIDPreserved(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	id := core.IDFromContent("ivan.petrov@example.com")
	employee := &core.Employee{Id: id, Name: "Иван Петров"}

	added, err := repos.Employees.AddEmployees(ctx, employee)
	if err != nil {
		t.Fatalf("Failed to add employee: %v", err)
	}
	if added[0].Id != id {
		t.Fatalf("Expected content ID %d to be preserved, got %d", id, added[0].Id)
	}
}

func TestEmployeeGetNotFound(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	_, err = repos.Employees.GetEmployee(context.Background(), 12345)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestFindEmployees(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	_, err = repos.Employees.AddEmployees(ctx,
		&core.Employee{Name: "Иван Петров", Department: "IT", Skills: "python, docker"},
		&core.Employee{Name: "Мария Сидорова", Department: "HR", Skills: "recruiting"},
		&core.Employee{Name: "Петр Иванов", Department: "IT", Skills: "java"},
	)
	if err != nil {
		t.Fatalf("Failed to add employees: %v", err)
	}

	matches, err := repos.Employees.FindEmployees(ctx, storage.Filter{All: []storage.Condition{
		storage.Equals(storage.FieldDepartment, "it"),
	}})
	if err != nil {
		t.Fatalf("Failed to find employees: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(matches))
	}

	all, err := repos.Employees.FindEmployees(ctx, storage.Filter{})
	if err != nil {
		t.Fatalf("Failed to find employees: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 employees, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Id > all[i].Id {
			t.Fatal("Expected results ordered by ID")
		}
	}
}

func TestFindEmployeeByNameFragment(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	_, err = repos.Employees.AddEmployees(ctx,
		&core.Employee{Name: "Иван Петров"},
		&core.Employee{Name: "Мария Сидорова"},
	)
	if err != nil {
		t.Fatalf("Failed to add employees: %v", err)
	}

	found, err := repos.Employees.FindEmployeeByNameFragment(ctx, "иван")
	if err != nil {
		t.Fatalf("Failed to find by name fragment: %v", err)
	}
	if found.Name != "Иван Петров" {
		t.Fatalf("Expected 'Иван Петров', got '%s'", found.Name)
	}

	_, err = repos.Employees.FindEmployeeByNameFragment(ctx, "ольга")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}
