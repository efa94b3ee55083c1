package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/aide/internal/platform"
	"github.com/aretw0/aide/pkg/tasks"
)

var (
	taskDescription string
	taskPriority    string
	taskDue         string
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Manage tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a pending task",
	Long: fmt.Sprintf(`Add creates a pending task. Priority is one of %s (default %s);
the due date uses DD-MM-YYYY.`, strings.Join(tasks.Priorities, ", "), tasks.PriorityMedium),
	Args: cobra.ExactArgs(1),
	RunE: withWorkspace(func(cmd *cobra.Command, ws *platform.Workspace, args []string) error {
		task, err := ws.Tasks.Add(cmd.Context(), args[0], taskDescription, taskPriority, taskDue)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Task #%d added.\n", task.ID)
		return nil
	}),
}

var taskEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Change fields of a task",
	Long:  `Edit replaces the given fields. An empty --due clears the due date.`,
	Args:  cobra.ExactArgs(1),
	RunE: withWorkspace(func(cmd *cobra.Command, ws *platform.Workspace, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		task, err := ws.Tasks.Update(cmd.Context(), id, tasks.Update{
			Title:       changed(cmd, "title"),
			Description: changed(cmd, "description"),
			Priority:    changed(cmd, "priority"),
			DueDate:     changed(cmd, "due"),
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Task #%d updated.\n", task.ID)
		return nil
	}),
}

var taskDoneCmd = &cobra.Command{
	Use:   "done [id]",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	RunE: withWorkspace(func(cmd *cobra.Command, ws *platform.Workspace, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		task, err := ws.Tasks.MarkDone(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Task #%d done.\n", task.ID)
		return nil
	}),
}

var taskPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List tasks that are not done",
	Args:  cobra.NoArgs,
	RunE: withWorkspace(func(cmd *cobra.Command, ws *platform.Workspace, args []string) error {
		items, err := ws.Tasks.Pending(cmd.Context())
		if err != nil {
			return err
		}
		return printRecords(cmd.OutOrStdout(), items, renderTask)
	}),
}

func renderTask(w io.Writer, t *tasks.Task) {
	mark := pendingColor.Sprint("[ ]")
	if t.Done {
		mark = doneColor.Sprint("[x]")
	}
	fmt.Fprintf(w, "#%d %s %s (%s", t.ID, mark, t.Title, t.Priority)
	if t.DueDate != nil {
		fmt.Fprintf(w, ", due %s", *t.DueDate)
	}
	fmt.Fprintln(w, ")")
	if t.Description != "" {
		fmt.Fprintf(w, "    %s\n", t.Description)
	}
}

func init() {
	rootCmd.AddCommand(tasksCmd)
	tasksCmd.AddCommand(taskAddCmd, taskEditCmd, taskDoneCmd, taskPendingCmd)
	tasksCmd.AddCommand(collectionCommands(func(ws *platform.Workspace) collection[*tasks.Task] {
		return ws.Tasks
	}, renderTask)...)

	taskAddCmd.Flags().StringVarP(&taskDescription, "description", "d", "", "Task description")
	taskAddCmd.Flags().StringVarP(&taskPriority, "priority", "p", "", "Priority")
	taskAddCmd.Flags().StringVar(&taskDue, "due", "", "Due date (DD-MM-YYYY)")

	taskEditCmd.Flags().String("title", "", "New title")
	taskEditCmd.Flags().StringP("description", "d", "", "New description")
	taskEditCmd.Flags().StringP("priority", "p", "", "New priority")
	taskEditCmd.Flags().String("due", "", "New due date (DD-MM-YYYY), empty to clear")
}
