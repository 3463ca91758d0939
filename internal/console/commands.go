// Package console реализует текстовый фронтенд: диспетчер команд и REPL.
// Каждая команда - функция от аргументов и сервиса, возвращающая строку
// с префиксом ✓ (успех), ✗ (ошибка) или ℹ (инфо).
package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"todoapp/internal/model"
	"todoapp/internal/repo"
	"todoapp/internal/service"
)

type Handler func(args []string, svc *service.TaskService) string

var registry = map[string]Handler{
	"add":    cmdAdd,
	"list":   cmdList,
	"show":   cmdShow,
	"update": cmdUpdate,
	"delete": cmdDelete,
	"stats":  cmdStats,
	"help":   cmdHelp,
}

// Dispatch находит обработчик по имени команды и выполняет его
func Dispatch(command string, args []string, svc *service.TaskService) (string, error) {
	name := strings.ToLower(strings.TrimSpace(command))
	h, ok := registry[name]
	if !ok {
		return "", fmt.Errorf("unknown command: %s", command)
	}
	return h(args, svc), nil
}

// add <title> [--description <desc>]
func cmdAdd(args []string, svc *service.TaskService) string {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return "✗ Task title cannot be empty"
	}

	title := args[0]
	description := ""
	if len(args) > 2 && args[1] == "--description" {
		description = args[2]
	}

	task, err := svc.Create(title, description)
	if err != nil {
		return fmt.Sprintf("✗ %v", err)
	}
	return fmt.Sprintf("✓ Task added with ID %d: %s", task.ID, task.Title)
}

// list [--filter all|pending|completed]
func cmdList(args []string, svc *service.TaskService) string {
	filter := model.FilterAll
	if len(args) > 1 && args[0] == "--filter" {
		filter = model.Filter(args[1])
	}

	tasks, err := svc.List(filter)
	if err != nil {
		return fmt.Sprintf("✗ %v", err)
	}
	if len(tasks) == 0 {
		return "ℹ No tasks yet"
	}

	lines := []string{
		"ID | Title                | Status    | Created",
		strings.Repeat("-", 60),
	}
	for _, t := range tasks {
		lines = append(lines, fmt.Sprintf("%-2d | %-20s | %-9s | %s",
			t.ID, t.Title, t.Status(), t.CreatedAt.Format("2006-01-02 15:04:05")))
	}
	return strings.Join(lines, "\n")
}

// show <id>
func cmdShow(args []string, svc *service.TaskService) string {
	id, ok := parseID(args)
	if !ok {
		return "✗ Invalid task ID"
	}

	task, found := svc.Get(id)
	if !found {
		return fmt.Sprintf("✗ Task not found (ID: %d)", id)
	}

	description := task.Description
	if description == "" {
		description = "—"
	}
	completed := "—"
	if task.CompletedAt != nil {
		completed = task.CompletedAt.Format("2006-01-02 15:04:05")
	}

	lines := []string{
		fmt.Sprintf("ID:          %d", task.ID),
		fmt.Sprintf("Title:       %s", task.Title),
		fmt.Sprintf("Description: %s", description),
		fmt.Sprintf("Status:      %s", task.Status()),
		fmt.Sprintf("Created:     %s", task.CreatedAt.Format("2006-01-02 15:04:05")),
		fmt.Sprintf("Completed:   %s", completed),
	}
	return strings.Join(lines, "\n")
}

// update <id> [--title <new>] [--description <new>] [--status pending|completed]
func cmdUpdate(args []string, svc *service.TaskService) string {
	id, ok := parseID(args)
	if !ok {
		return "✗ Invalid task ID"
	}

	var changes model.TaskUpdate
	for i := 1; i < len(args); {
		switch {
		case args[i] == "--title" && i+1 < len(args):
			changes.Title = &args[i+1]
			i += 2
		case args[i] == "--description" && i+1 < len(args):
			changes.Description = &args[i+1]
			i += 2
		case args[i] == "--status" && i+1 < len(args):
			switch args[i+1] {
			case "pending", "completed":
				done := args[i+1] == "completed"
				changes.Completed = &done
			default:
				return "✗ Invalid status. Use 'pending' or 'completed'."
			}
			i += 2
		default:
			i++
		}
	}

	if _, err := svc.Update(id, changes); err != nil {
		if errors.Is(err, repo.ErrorNotFound) {
			return fmt.Sprintf("✗ Task not found (ID: %d)", id)
		}
		return fmt.Sprintf("✗ %v", err)
	}
	return fmt.Sprintf("✓ Task %d updated", id)
}

// delete <id>
func cmdDelete(args []string, svc *service.TaskService) string {
	id, ok := parseID(args)
	if !ok {
		return "✗ Invalid task ID"
	}

	if !svc.Delete(id) {
		return fmt.Sprintf("✗ Task not found (ID: %d)", id)
	}
	return fmt.Sprintf("✓ Task %d deleted", id)
}

// stats
func cmdStats(args []string, svc *service.TaskService) string {
	st := svc.Stats()
	return fmt.Sprintf("ℹ %d tasks total: %d pending, %d completed",
		st.TotalTasks, st.ByStatus["pending"], st.ByStatus["completed"])
}

var helpText = map[string]string{
	"add":    "add <title> [--description <desc>]\n  Create a new task",
	"list":   "list [--filter all|pending|completed]\n  Show all tasks or filtered list",
	"show":   "show <id>\n  Display task details",
	"update": "update <id> [--title <new>] [--description <new>] [--status pending|completed]\n  Update task fields",
	"delete": "delete <id>\n  Remove a task",
	"stats":  "stats\n  Show task counts by status",
	"help":   "help [command]\n  Show this help or help for a command",
	"quit":   "quit (or exit)\n  Exit the application",
}

var helpOrder = []string{"add", "list", "show", "update", "delete", "stats", "help", "quit"}

// help [command]
func cmdHelp(args []string, svc *service.TaskService) string {
	if len(args) > 0 {
		if text, ok := helpText[args[0]]; ok {
			return text
		}
		return fmt.Sprintf("✗ Unknown command: %s", args[0])
	}

	lines := []string{"Available commands:"}
	for _, name := range helpOrder {
		short := strings.TrimSpace(strings.SplitN(helpText[name], "\n", 2)[1])
		lines = append(lines, fmt.Sprintf("  %-10s - %s", name, short))
	}
	return strings.Join(lines, "\n")
}

func parseID(args []string) (int64, bool) {
	if len(args) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
