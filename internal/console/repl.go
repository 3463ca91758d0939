package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"todoapp/internal/service"
)

// Нумерованное меню для тех, кто не хочет печатать команды
var menuCommands = map[string]string{
	"1": "add",
	"2": "list",
	"3": "show",
	"4": "update",
	"5": "delete",
	"6": "help",
	"7": "quit",
}

const menuText = `
┌─────────────────────────────────┐
│     Available Commands:         │
├─────────────────────────────────┤
│ 1. add        - Create a task   │
│ 2. list       - Show all tasks  │
│ 3. show       - Task details    │
│ 4. update     - Modify task     │
│ 5. delete     - Remove task     │
│ 6. help       - Help            │
│ 7. quit       - Exit            │
└─────────────────────────────────┘
`

type REPL struct {
	in  *bufio.Scanner
	out io.Writer
	svc *service.TaskService
}

func NewREPL(in io.Reader, out io.Writer, svc *service.TaskService) *REPL {
	return &REPL{
		in:  bufio.NewScanner(in),
		out: out,
		svc: svc,
	}
}

// Run крутит цикл read-eval-print до quit/exit или EOF
func (r *REPL) Run() {
	fmt.Fprintln(r.out, "Welcome to Todo App!")
	fmt.Fprintln(r.out, "Type 'help' for available commands, or use menu numbers below:")
	fmt.Fprint(r.out, menuText+"\n")

	for {
		line, ok := r.prompt("todo> ")
		if !ok {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var command string
		var args []string
		if name, isMenu := menuCommands[line]; isMenu {
			command = name
			args = r.menuArgs(name)
		} else {
			parts, err := splitArgs(line)
			if err != nil {
				parts = strings.Fields(line) // Незакрытая кавычка - делим по пробелам
			}
			command = strings.ToLower(parts[0])
			args = parts[1:]
		}

		if command == "quit" || command == "exit" {
			fmt.Fprintln(r.out, "Goodbye!")
			return
		}

		result, err := Dispatch(command, args, r.svc)
		if err != nil {
			fmt.Fprintf(r.out, "✗ %v\n", err)
			continue
		}
		fmt.Fprintln(r.out, result)
	}
}

// Дозапрос аргументов при выборе команды из меню
func (r *REPL) menuArgs(command string) []string {
	var args []string
	switch command {
	case "show", "update", "delete":
		id, _ := r.prompt("  Enter task ID: ")
		if id = strings.TrimSpace(id); id != "" {
			args = append(args, id)
		}
		if command == "update" {
			updates, _ := r.prompt("  Enter updates (e.g., --title 'New' --status completed): ")
			if updates = strings.TrimSpace(updates); updates != "" {
				parts, err := splitArgs(updates)
				if err != nil {
					parts = strings.Fields(updates)
				}
				args = append(args, parts...)
			}
		}
	case "add":
		title, _ := r.prompt("  Enter task title: ")
		if title = strings.TrimSpace(title); title != "" {
			args = append(args, title)
			desc, _ := r.prompt("  Enter description (optional): ")
			if desc = strings.TrimSpace(desc); desc != "" {
				args = append(args, "--description", desc)
			}
		}
	case "list":
		f, _ := r.prompt("  Filter (all/pending/completed) [all]: ")
		if f = strings.TrimSpace(f); f != "" && f != "all" {
			args = append(args, "--filter", f)
		}
	}
	return args
}

func (r *REPL) prompt(p string) (string, bool) {
	fmt.Fprint(r.out, p)
	if !r.in.Scan() {
		return "", false
	}
	return r.in.Text(), true
}
