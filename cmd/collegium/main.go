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

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/collegium"
	"github.com/poiesic/collegium/ai"
	"github.com/poiesic/collegium/ai/openai"
	"github.com/poiesic/collegium/core"
	"github.com/poiesic/collegium/forms"
)

func main() {
	dbFlag := &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"d"},
		Usage:    "Path to BadgerDB database directory",
		Required: true,
	}
	classifierFlags := []cli.Flag{
		dbFlag,
		&cli.StringFlag{
			Name:  "classifier-host",
			Usage: "Zero-shot classifier service host URL (rules only when empty)",
		},
		&cli.StringFlag{
			Name:  "classifier-model",
			Usage: "Zero-shot classifier model name",
		},
		&cli.DurationFlag{
			Name:  "classifier-timeout",
			Usage: "Timeout for a single classifier call",
			Value: 30 * time.Second,
		},
	}

	app := &cli.App{
		Name:  "collegium",
		Usage: "Natural language assistant over organizational records",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ask",
				Usage:     "Answer a single question",
				ArgsUsage: "<вопрос>",
				Action:    askCommand,
				Flags:     classifierFlags,
			},
			{
				Name:   "chat",
				Usage:  "Interactive question loop over stdin",
				Action: chatCommand,
				Flags:  classifierFlags,
			},
			{
				Name:      "batch",
				Usage:     "Answer questions from a file, one per line",
				ArgsUsage: "<файл>",
				Action:    batchCommand,
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Worker pool size",
						Value: 4,
					},
				}, classifierFlags...),
			},
			{
				Name:   "seed",
				Usage:  "Load the demo dataset into the database",
				Action: seedCommand,
				Flags:  []cli.Flag{dbFlag},
			},
			{
				Name:   "create-task",
				Usage:  "Create a task from a 'Ключ: значение' template on stdin",
				Action: createTaskCommand,
				Flags:  []cli.Flag{dbFlag},
			},
			{
				Name:   "create-activity",
				Usage:  "Create an activity from a 'Ключ: значение' template on stdin",
				Action: createActivityCommand,
				Flags:  []cli.Flag{dbFlag},
			},
			{
				Name:      "join-activity",
				Usage:     "Join an employee to an activity",
				ArgsUsage: "<activity-id> <employee-id>",
				Action:    joinActivityCommand,
				Flags:     []cli.Flag{dbFlag},
			},
			{
				Name:      "update-task",
				Usage:     "Change a task status",
				ArgsUsage: "<task-id> <статус>",
				Action:    updateTaskCommand,
				Flags:     []cli.Flag{dbFlag},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openDatabase(c *cli.Context) (*collegium.Database, error) {
	db, err := collegium.NewDatabase(c.String("db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// newAssistant builds the assistant, with the zero-shot fallback only
// when a classifier host is configured.
func newAssistant(c *cli.Context, db *collegium.Database) (*collegium.Assistant, error) {
	var fallback ai.ZeroShotClassifier

	if host := c.String("classifier-host"); host != "" {
		aiConfig := ai.NewConfig(
			ai.WithClassifierHost(host),
			ai.WithClassifierModel(c.String("classifier-model")),
			ai.WithTimeout(c.Duration("classifier-timeout")),
		)
		if err := aiConfig.Validate(); err != nil {
			return nil, fmt.Errorf("invalid classifier configuration: %w", err)
		}

		classifier, err := openai.NewClassifier(aiConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create classifier: %w", err)
		}
		fallback = classifier
	}

	return db.NewAssistant(fallback)
}

func askCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("question is required")
	}
	query := strings.Join(c.Args().Slice(), " ")

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	assistant, err := newAssistant(c, db)
	if err != nil {
		return err
	}

	answer, err := assistant.Answer(context.Background(), query)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "[%s %.2f %s]\n", answer.Category.Label(), answer.Confidence, answer.Source)
	fmt.Println(answer.Text)
	return nil
}

func chatCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	assistant, err := newAssistant(c, db)
	if err != nil {
		return err
	}

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println(collegium.WelcomeMessage)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if query == "выход" || query == "exit" {
			break
		}

		answer, err := assistant.Answer(ctx, query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Println(answer.Text)
		fmt.Println()
	}
	return scanner.Err()
}

func batchCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("queries file is required")
	}

	queries, err := readQueries(c.Args().First())
	if err != nil {
		return err
	}
	if len(queries) == 0 {
		return nil
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	assistant, err := newAssistant(c, db)
	if err != nil {
		return err
	}

	processor, err := collegium.NewBatchProcessor(assistant, collegium.WithPoolSize(c.Int("workers")))
	if err != nil {
		return err
	}
	defer processor.Release()

	results := processor.Process(context.Background(), queries)
	for _, result := range results {
		fmt.Printf("? %s\n", result.Query)
		if result.Err != nil {
			fmt.Printf("! %v\n\n", result.Err)
			continue
		}
		fmt.Printf("%s\n\n", result.Answer.Text)
	}
	return nil
}

func readQueries(path string) ([]string, error) {
	var reader io.Reader
	if path == "-" {
		reader = os.Stdin
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		reader = file
	}

	var queries []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			queries = append(queries, line)
		}
	}
	return queries, scanner.Err()
}

func seedCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Seed(context.Background()); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Fprintln(os.Stderr, "demo dataset loaded")
	return nil
}

func createTaskCommand(c *cli.Context) error {
	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		return err
	}

	form, err := forms.ParseTaskForm(string(text))
	if err != nil {
		return err
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	assignee, err := db.EmployeeRepository().FindEmployeeByNameFragment(ctx, form.Assignee)
	if err != nil {
		return fmt.Errorf("исполнитель не найден: %q", form.Assignee)
	}

	task := &core.Task{
		Title:       form.Title,
		Description: form.Description,
		Status:      core.TaskTodo,
		Priority:    form.Priority,
		Deadline:    form.Deadline,
		Tags:        form.Tags,
		AssigneeId:  assignee.Id,
	}
	added, err := db.TaskRepository().AddTasks(ctx, task)
	if err != nil {
		return err
	}

	created := added[0]
	fmt.Printf("✅ Задача '%s' успешно создана! (id %d)\n\n", created.Title, created.Id)
	fmt.Printf("📝 Описание: %s\n", created.Description)
	fmt.Printf("👤 Исполнитель: %s\n", assignee.Name)
	fmt.Printf("📅 Срок: %s\n", created.Deadline.Format("2006-01-02"))
	if created.Priority != 0 {
		fmt.Printf("⚡ Приоритет: %s\n", created.Priority.Label())
	}
	if created.Tags != "" {
		fmt.Printf("🏷️ Теги: %s\n", created.Tags)
	}
	return nil
}

func createActivityCommand(c *cli.Context) error {
	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		return err
	}

	form, err := forms.ParseActivityForm(string(text))
	if err != nil {
		return err
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	activity := &core.Activity{
		Name:            form.Name,
		Type:            form.Type,
		Date:            form.Date,
		Location:        form.Location,
		Description:     form.Description,
		MaxParticipants: form.MaxParticipants,
		IsActive:        true,
	}
	added, err := db.ActivityRepository().AddActivities(context.Background(), activity)
	if err != nil {
		return err
	}

	created := added[0]
	fmt.Printf("✅ Активность '%s' успешно создана! (id %d)\n\n", created.Name, created.Id)
	fmt.Printf("📅 Дата: %s\n", created.Date.Format("2006-01-02"))
	fmt.Printf("🕒 Время: %s\n", created.Date.Format("15:04"))
	fmt.Printf("📍 Место: %s\n", created.Location)
	fmt.Printf("👥 Макс. участников: %d\n\n", created.MaxParticipants)
	fmt.Println("Присоединяйтесь к активности!")
	return nil
}

func joinActivityCommand(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("activity id and employee id are required")
	}
	activityID, err := parseID(c.Args().Get(0))
	if err != nil {
		return err
	}
	employeeID, err := parseID(c.Args().Get(1))
	if err != nil {
		return err
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	employee, err := db.EmployeeRepository().GetEmployee(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("сотрудник не найден: %d", employeeID)
	}

	activity, err := db.ActivityRepository().GetActivity(ctx, activityID)
	if err != nil || !activity.IsActive {
		return fmt.Errorf("активность не найдена или уже неактивна: %d", activityID)
	}

	if activity.MaxParticipants > 0 && len(activity.ParticipantIds) >= activity.MaxParticipants {
		return fmt.Errorf("к сожалению, все места уже заняты")
	}
	if slices.Contains(activity.ParticipantIds, employee.Id) {
		return fmt.Errorf("вы уже участвуете в этой активности")
	}

	activity.ParticipantIds = append(activity.ParticipantIds, employee.Id)
	if _, err := db.ActivityRepository().UpdateActivities(ctx, activity); err != nil {
		return err
	}

	fmt.Printf("✅ Вы успешно присоединились к активности '%s'!\n\n", activity.Name)
	fmt.Printf("📅 Дата: %s\n", activity.Date.Format("2006-01-02"))
	fmt.Printf("📍 Место: %s\n", activity.Location)
	fmt.Printf("👥 Участников: %d/%d\n", len(activity.ParticipantIds), activity.MaxParticipants)
	return nil
}

func updateTaskCommand(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("task id and status are required")
	}
	taskID, err := parseID(c.Args().Get(0))
	if err != nil {
		return err
	}
	status := core.ParseTaskStatus(strings.Join(c.Args().Slice()[1:], " "))
	if status == 0 {
		return fmt.Errorf("unknown status %q", strings.Join(c.Args().Slice()[1:], " "))
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	task, err := db.TaskRepository().GetTask(ctx, taskID)
	if err != nil {
		return fmt.Errorf("задача не найдена: %d", taskID)
	}

	task.Status = status
	if _, err := db.TaskRepository().UpdateTasks(ctx, task); err != nil {
		return err
	}

	fmt.Printf("✅ Статус задачи '%s' обновлен на %s!\n", task.Title, status.Label())
	return nil
}

func parseID(arg string) (core.ID, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return core.ID(id), nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
