package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskmgr/internal/tasks"
)

func addCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add <description...>",
		Short: "Add a new task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd, opts)
			if err != nil {
				return err
			}

			task, err := store.AddTask(strings.Join(args, " "))
			if err != nil {
				if errors.Is(err, tasks.ErrStorageWrite) {
					return fmt.Errorf("task %d was not saved: %w", task.ID, err)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added task %d: %s\n", task.ID, task.Description)
			return nil
		},
	}
}

func listCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks grouped by status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			store, err := openStore(cmd, opts)
			if err != nil {
				return err
			}

			incomplete, complete := store.ListTasks()
			out := cmd.OutOrStdout()

			if asJSON {
				data, err := json.MarshalIndent(struct {
					Incomplete []tasks.Task `json:"incomplete"`
					Complete   []tasks.Task `json:"complete"`
				}{incomplete, complete}, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal tasks: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			if len(incomplete)+len(complete) == 0 {
				fmt.Fprintln(out, "No tasks yet.")
				return nil
			}

			total := len(incomplete) + len(complete)
			fmt.Fprintf(out, "%d tasks (%d completed, %d incomplete)\n", total, len(complete), len(incomplete))
			if len(incomplete) > 0 {
				fmt.Fprintln(out, "\nIncomplete:")
				for _, t := range incomplete {
					fmt.Fprintf(out, "  %3d. %s\n", t.ID, t.Description)
				}
			}
			if len(complete) > 0 {
				fmt.Fprintln(out, "\nCompleted:")
				for _, t := range complete {
					fmt.Fprintf(out, "  %3d. %s\n", t.ID, t.Description)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolP("json", "j", false, "Output as JSON")

	return cmd
}

func showCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			store, err := openStore(cmd, opts)
			if err != nil {
				return err
			}

			task, ok := store.FindTask(id)
			if !ok {
				return fmt.Errorf("%w: %d", tasks.ErrTaskNotFound, id)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Task #%d\n", task.ID)
			fmt.Fprintf(out, "Description: %s\n", task.Description)
			fmt.Fprintf(out, "Status:      %s\n", task.Status())
			fmt.Fprintf(out, "Date Added:  %s\n", task.DateAdded)
			return nil
		},
	}
}

func doneCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			store, err := openStore(cmd, opts)
			if err != nil {
				return err
			}

			task, err := store.CompleteTask(id)
			if err != nil {
				if errors.Is(err, tasks.ErrAlreadyComplete) {
					return fmt.Errorf("%w: %d", err, id)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Completed task %d: %s\n", task.ID, task.Description)
			return nil
		},
	}
}

// parseTaskID parses a positive task id argument
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q: must be a positive number", arg)
	}
	return id, nil
}
