package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/AFTLlimited25/Task-AI/pkg/model"
	"github.com/AFTLlimited25/Task-AI/pkg/store"
	"github.com/AFTLlimited25/Task-AI/pkg/view"
)

var (
	addTitle       string
	addDescription string
	addType        string
	addPriority    string
	addDue         string

	listFilter string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long:  `List tasks, optionally filtered by type.`,
	Run:   listTasks,
}

var showCmd = &cobra.Command{
	Use:   "show <task-id>",
	Short: "Show the task detail panel",
	Args:  cobra.ExactArgs(1),
	Run:   showTask,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new task",
	Run:   addTask,
}

var statusCmd = &cobra.Command{
	Use:   "status <task-id> <status>",
	Short: "Change a task's status",
	Long:  `Change a task's status to one of: pending, in_progress, waiting_response, completed, cancelled.`,
	Args:  cobra.ExactArgs(2),
	Run:   changeStatus,
}

var completeCmd = &cobra.Command{
	Use:   "complete <task-id>",
	Short: "Mark a task completed",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		changeStatus(cmd, []string{args[0], string(model.StatusCompleted)})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	Run:   deleteTask,
}

var runActionCmd = &cobra.Command{
	Use:   "run <task-id> <action-id>",
	Short: "Execute a pending task action",
	Args:  cobra.ExactArgs(2),
	Run:   runAction,
}

func init() {
	listCmd.Flags().StringVarP(&listFilter, "type", "t", "all", "Filter tasks by type")

	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Task title (required)")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Task description")
	addCmd.Flags().StringVar(&addType, "type", string(model.TypeOther), "Task type")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Task priority (low, medium, high)")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD)")
	if err := addCmd.MarkFlagRequired("title"); err != nil {
		panic(fmt.Sprintf("Failed to mark title flag as required: %v", err))
	}
}

func listTasks(cmd *cobra.Command, args []string) {
	app := newApp()
	app.bootstrap(context.Background())

	snap := app.store.Snapshot()
	tasks := view.FilterByType(snap.Tasks, model.TaskType(listFilter))
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}
	for _, t := range tasks {
		view.RenderTaskCard(os.Stdout, t)
	}
}

func showTask(cmd *cobra.Command, args []string) {
	app := newApp()
	app.bootstrap(context.Background())

	task := app.store.Snapshot().Task(args[0])
	if task == nil {
		fatal("Task not found: %s", args[0])
	}
	view.RenderTaskDetail(os.Stdout, *task, time.Now())
}

func addTask(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	app := newApp()
	app.bootstrap(ctx)

	now := time.Now()
	task := model.Task{
		ID:          uuid.New().String(),
		Title:       addTitle,
		Description: addDescription,
		Type:        model.TaskType(addType),
		Status:      model.StatusPending,
		Priority:    model.TaskPriority(addPriority),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if addDue != "" {
		due, err := time.Parse("2006-01-02", addDue)
		if err != nil {
			fatal("Invalid due date %q, expected YYYY-MM-DD", addDue)
		}
		task.DueDate = &due
	}

	app.store.Apply(store.AddTask{Task: task})
	app.pushCreate(ctx, task)

	fmt.Printf("✓ Task created: %s\n", task.ID)
	fmt.Printf("  Title: %s\n", task.Title)
	if task.Description != "" {
		fmt.Printf("  Description: %s\n", task.Description)
	}
}

func changeStatus(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	taskID, status := args[0], model.TaskStatus(args[1])

	valid := false
	for _, s := range model.TaskStatuses {
		if s == status {
			valid = true
			break
		}
	}
	if !valid {
		fatal("Unknown status: %s", status)
	}

	app := newApp()
	app.bootstrap(ctx)

	task := app.store.Snapshot().Task(taskID)
	if task == nil {
		fatal("Task not found: %s", taskID)
	}

	patch := model.TaskPatch{Status: &status}
	if status == model.StatusCompleted {
		completedAt := time.Now()
		patch.CompletedAt = &completedAt
	}
	app.store.Apply(store.UpdateTask{ID: taskID, Patch: patch})
	app.notify(model.NotifySuccess,
		fmt.Sprintf("Task %q marked as %s", task.Title, view.Label(string(status))), taskID)
	app.pushUpdate(ctx, taskID, patch)

	fmt.Printf("✓ Task %s marked as %s\n", taskID, view.Label(string(status)))
}

func deleteTask(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	app := newApp()
	app.bootstrap(ctx)

	app.store.Apply(store.DeleteTask{ID: args[0]})
	app.pushDelete(ctx, args[0])
	fmt.Printf("✓ Task deleted: %s\n", args[0])
}

func runAction(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	taskID, actionID := args[0], args[1]

	app := newApp()
	app.bootstrap(ctx)

	task := app.store.Snapshot().Task(taskID)
	if task == nil {
		fatal("Task not found: %s", taskID)
	}
	if task.Action(actionID) == nil {
		fatal("Action not found: %s", actionID)
	}

	completedAt := time.Now()
	actions := make([]model.TaskAction, len(task.Actions))
	for i, a := range task.Actions {
		if a.ID == actionID {
			a.Status = model.ActionCompleted
			a.CompletedAt = &completedAt
		}
		actions[i] = a
	}

	patch := model.TaskPatch{Actions: actions}
	app.store.Apply(store.UpdateTask{ID: taskID, Patch: patch})
	app.notify(model.NotifySuccess, fmt.Sprintf("Action completed for %q", task.Title), taskID)
	app.pushUpdate(ctx, taskID, patch)

	fmt.Printf("✓ Action %s completed for task %s\n", actionID, taskID)
}
