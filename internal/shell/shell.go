// Package shell implements the interactive menu for taskmgr.
//
// The shell is a loop over a small set of screens. Each screen renders,
// reads one answer and returns the next screen, so "going back" is a state
// transition rather than a nested call.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jyang234/taskmgr/internal/tasks"
)

// State is the screen the shell shows next
type State int

const (
	MainMenu State = iota
	AddTask
	ViewTasks
	TaskDetails
	MarkComplete
	Help
	Exit
)

func (s State) String() string {
	switch s {
	case MainMenu:
		return "main-menu"
	case AddTask:
		return "add-task"
	case ViewTasks:
		return "view-tasks"
	case TaskDetails:
		return "task-details"
	case MarkComplete:
		return "mark-complete"
	case Help:
		return "help"
	case Exit:
		return "exit"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// TaskStore is the subset of the task store the shell drives
type TaskStore interface {
	AddTask(description string) (tasks.Task, error)
	ListTasks() (incomplete, complete []tasks.Task)
	FindTask(id int) (tasks.Task, bool)
	CompleteTask(id int) (tasks.Task, error)
}

// Shell runs the interactive menu against a TaskStore
type Shell struct {
	store  TaskStore
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger

	// task shown on the details screen
	selected int
	// screen to return to after help
	afterHelp State
	eof       bool
}

// maxLineSize bounds a single line of input, such as a pasted task description
const maxLineSize = 1 << 20

// New creates a shell reading answers from in and rendering to out
func New(store TaskStore, in io.Reader, out io.Writer) *Shell {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	return &Shell{
		store:     store,
		in:        scanner,
		out:       out,
		logger:    slog.Default(),
		afterHelp: MainMenu,
	}
}

// Run loops until the user exits or input ends
func (s *Shell) Run() error {
	state := MainMenu
	for state != Exit {
		next := s.step(state)
		if s.eof {
			next = Exit
		}
		s.logger.Debug("shell transition", "from", state, "to", next)
		state = next
	}

	s.println("\nThank you for using Task Manager!")
	s.println("Goodbye!")

	return s.in.Err()
}

func (s *Shell) step(state State) State {
	switch state {
	case MainMenu:
		return s.mainMenu()
	case AddTask:
		return s.addTask()
	case ViewTasks:
		return s.viewTasks()
	case TaskDetails:
		return s.taskDetails()
	case MarkComplete:
		return s.markComplete()
	case Help:
		return s.help()
	default:
		return Exit
	}
}

func (s *Shell) mainMenu() State {
	s.println("\n" + strings.Repeat("=", 50))
	s.println("       PERSONAL TASK MANAGER")
	s.println("\nStay organized and track your daily tasks!")
	s.println("\nWhat would you like to do?")
	s.println("\n 1. Add a new task")
	s.println(" 2. View all tasks")
	s.println(" 3. Mark task as complete")
	s.println(" 4. Help & Instructions")
	s.println(" 5. Exit")
	s.println("\nTip: Type 'help' at any time for assistance")
	s.println(strings.Repeat("-", 50))

	choice := s.prompt("\nEnter your choice (1-5): ")
	switch {
	case choice == "1":
		return AddTask
	case choice == "2":
		return ViewTasks
	case choice == "3":
		return MarkComplete
	case choice == "4" || strings.EqualFold(choice, "help"):
		return s.openHelp(MainMenu)
	case choice == "5":
		return Exit
	}

	if !s.eof {
		s.println("\nInvalid choice. Please enter 1-5.")
		s.pause("\nPress Enter to continue...")
	}
	return MainMenu
}

func (s *Shell) addTask() State {
	s.header("ADD NEW TASK")
	s.println("\nEnter your task description below.")
	s.println(strings.Repeat("-", 50))

	description := s.prompt("\nTask description: ")
	switch strings.ToLower(description) {
	case "help":
		return s.openHelp(AddTask)
	case "cancel":
		s.println("\nReturning to menu...")
		return MainMenu
	}
	if s.eof {
		return Exit
	}

	task, err := s.store.AddTask(description)
	switch {
	case errors.Is(err, tasks.ErrEmptyDescription):
		s.println("\n ERROR: Task description cannot be empty!")
		s.println("Please try again.")
		s.pause("\nPress Enter to continue...")
		return AddTask
	case err != nil:
		s.reportError(err)
		if errors.Is(err, tasks.ErrStorageWrite) {
			s.printf("\nTask #%d was added but could not be saved.\n", task.ID)
		}
		s.pause("\nPress Enter to continue...")
		return MainMenu
	}

	s.println("\n TASK ADDED SUCCESSFULLY!")
	s.println("\nWhat would you like to do next?")
	s.println(" 1. Add another task")
	s.println(" 2. View all tasks")
	s.println(" 3. Return to main menu")

	switch s.prompt("\nEnter your choice (1-3): ") {
	case "1":
		return AddTask
	case "2":
		return ViewTasks
	default:
		return MainMenu
	}
}

func (s *Shell) viewTasks() State {
	s.header("YOUR TASK LIST")

	incomplete, complete := s.store.ListTasks()
	total := len(incomplete) + len(complete)

	if total == 0 {
		s.println("\nYou currently have no tasks.")
		s.println("\nGet started by adding a task!")
		s.println("\nWhat would you like to do?")
		s.println(" 1. Add a task")
		s.println(" 2. Return to Main Menu")

		if s.prompt("\nEnter your choice (1-2): ") == "1" {
			return AddTask
		}
		return MainMenu
	}

	s.printf("\nYou have %d tasks (%d completed, %d incomplete)\n", total, len(complete), len(incomplete))
	s.println(strings.Repeat("-", 50))

	if len(incomplete) > 0 {
		s.println("\nINCOMPLETE TASKS:")
		s.list(incomplete, " ")
	}
	if len(complete) > 0 {
		s.println("\nCOMPLETED TASKS:")
		s.list(complete, " ")
	}

	s.println("\n" + strings.Repeat("=", 50))
	s.println("\nOPTIONS:")
	s.println(" - Enter task number for details")
	s.println(" - Type 'menu' to return to Main Menu")

	choice := s.prompt("\nYour choice: ")
	if id, ok := parseID(choice); ok {
		s.selected = id
		return TaskDetails
	}
	return MainMenu
}

func (s *Shell) taskDetails() State {
	task, ok := s.store.FindTask(s.selected)
	if !ok {
		s.println("\nERROR: Invalid task number")
		s.pause("\nPress Enter to continue...")
		return ViewTasks
	}

	s.header("TASK DETAILS")
	s.printf("\nTask #%d\n", task.ID)
	s.printf("\nDescription: %s\n", task.Description)
	s.printf("Status:       %s\n", task.Status())
	s.printf("Date Added:   %s\n", task.DateAdded)
	s.println("\n" + strings.Repeat("=", 50))
	s.println("\nACTIONS:")
	s.println(" 1. Mark as complete")
	s.println(" 2. View all tasks")
	s.println(" 3. Return to Main Menu")

	switch s.prompt("\nEnter your choice (1-3): ") {
	case "1":
		return s.confirmComplete(task.ID)
	case "2":
		return ViewTasks
	default:
		return MainMenu
	}
}

func (s *Shell) markComplete() State {
	s.header("MARK TASK AS COMPLETE")

	incomplete, _ := s.store.ListTasks()
	if len(incomplete) == 0 {
		s.println("\nYou have no incomplete tasks!")
		s.pause("\nPress Enter to return to menu...")
		return MainMenu
	}

	s.println("\nCurrent incomplete tasks:")
	s.list(incomplete, "  ")
	s.println("\n" + strings.Repeat("=", 50))

	choice := s.prompt("\nWhich task did you complete? (or 'cancel'): ")
	switch strings.ToLower(choice) {
	case "help":
		return s.openHelp(MarkComplete)
	case "cancel":
		s.println("\nReturning to menu...")
		return MainMenu
	}
	if s.eof {
		return Exit
	}

	id, ok := parseID(choice)
	if !ok {
		s.println("\nERROR: Please enter a valid task number")
		s.pause("\nPress Enter to try again...")
		return MarkComplete
	}
	return s.confirmComplete(id)
}

// confirmComplete asks before completing a task and returns the next screen
func (s *Shell) confirmComplete(id int) State {
	task, ok := s.store.FindTask(id)
	if !ok {
		s.printf("\nERROR: Invalid task number: %d\n", id)
		s.pause("\nPress Enter to continue...")
		return MainMenu
	}
	if task.Complete {
		s.println("\nThis task is already complete!")
		s.pause("\nPress Enter to continue...")
		return MainMenu
	}

	s.header("CONFIRM ACTION")
	s.println("\nYou selected: ")
	s.printf("  Task #%d: '%s'\n", task.ID, task.Description)
	s.println("\n" + strings.Repeat("-", 50))
	s.println("\nMark this task as complete?")
	s.println("\nNote: Completed tasks will be moved to your")
	s.println("'Completed' list. You can still view them later.")
	s.println(strings.Repeat("-", 50))

	if strings.ToLower(s.prompt("\nAre you sure? (y/n): ")) != "y" {
		if !s.eof {
			s.println("\nAction cancelled.")
			s.pause("\nPress Enter to return to menu...")
		}
		return MainMenu
	}

	task, err := s.store.CompleteTask(id)
	if err != nil {
		s.reportError(err)
		s.pause("\nPress Enter to continue...")
		return MainMenu
	}

	s.header("TASK MARKED AS COMPLETE!")
	s.printf("\n'%s' has been marked as complete.\n", task.Description)
	s.println("\nGreat job! Keep up the good work!")
	s.println("\nWhat would you like to do next?")
	s.println(" 1. Mark another task complete")
	s.println(" 2. View all tasks")
	s.println(" 3. Return to Main Menu")

	switch s.prompt("\nEnter your choice (1-3): ") {
	case "1":
		return MarkComplete
	case "2":
		return ViewTasks
	default:
		return MainMenu
	}
}

func (s *Shell) openHelp(returnTo State) State {
	s.afterHelp = returnTo
	return Help
}

func (s *Shell) help() State {
	s.header("HELP & INSTRUCTIONS")
	s.println("\nHOW TO USE TASK MANAGER:")
	s.println("\nADDING A TASK")
	s.println(" 1. Select 'Add a new task' from the main menu")
	s.println(" 2. Enter your task description")
	s.println(" 3. Press ENTER to save")
	s.println("\nVIEWING YOUR TASKS")
	s.println(" 1. Select 'View all tasks' from the main menu")
	s.println(" 2. Enter a task number to see its details")
	s.println("\nCOMPLETING A TASK")
	s.println(" 1. Select 'Mark task as complete' from the main menu")
	s.println(" 2. Enter the number of the task you finished")
	s.println(" 3. Confirm your selection")
	s.println("\n" + strings.Repeat("-", 50))
	s.println("\nTIPS:")
	s.println(" - Type 'menu' on the task list to return to main menu")
	s.println(" - Type 'cancel' to go back without saving")
	s.println(" - All tasks are saved automatically")

	s.pause("\nPress Enter to return...")

	next := s.afterHelp
	s.afterHelp = MainMenu
	return next
}

// reportError prints a user-facing message for a store error
func (s *Shell) reportError(err error) {
	s.logger.Debug("task operation failed", "error", err)

	switch {
	case errors.Is(err, tasks.ErrEmptyDescription):
		s.println("\n ERROR: Task description cannot be empty!")
	case errors.Is(err, tasks.ErrTaskNotFound):
		s.println("\nERROR: Invalid task number")
	case errors.Is(err, tasks.ErrAlreadyComplete):
		s.println("\nThis task is already complete!")
	case errors.Is(err, tasks.ErrStorageWrite):
		s.printf("\nERROR: Your change could not be saved: %v\n", err)
	default:
		s.printf("\nERROR: %v\n", err)
	}
}

func (s *Shell) header(title string) {
	s.println("\n" + strings.Repeat("=", 50))
	s.println("       " + title)
	s.println(strings.Repeat("=", 50))
}

func (s *Shell) list(list []tasks.Task, indent string) {
	for _, t := range list {
		s.printf("%s%d. %s\n", indent, t.ID, t.Description)
	}
}

// prompt prints msg and returns the trimmed answer. At end of input it
// returns "" and marks the shell for exit.
func (s *Shell) prompt(msg string) string {
	fmt.Fprint(s.out, msg)
	if s.eof || !s.in.Scan() {
		s.eof = true
		fmt.Fprintln(s.out)
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

func (s *Shell) pause(msg string) {
	s.prompt(msg)
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// parseID accepts only plain decimal digits, as typed at the prompt
func parseID(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return id, true
}
