package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/pkg/client"
	"task-tracker.com/task-tracker/pkg/constants"
	model "task-tracker.com/task-tracker/pkg/models"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage your tasks",
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, optionally filtered by search term and status",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, _, err := requireSession()
		if err != nil {
			return err
		}

		search, _ := cmd.Flags().GetString("search")
		status, _ := cmd.Flags().GetString("status")

		state := client.NewTaskState(apiClient())
		tasks, err := state.Load(cmd.Context(), sess.Token)
		if err != nil {
			return fmt.Errorf("failed to fetch tasks: %w", err)
		}

		filtered := client.Filter(tasks, search, status)
		if len(filtered) == 0 {
			if len(tasks) == 0 {
				fmt.Println("you have no tasks yet")
			} else {
				fmt.Println("no tasks match your filters")
			}
			return nil
		}

		printTasks(filtered)
		return nil
	},
}

var taskAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a task",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, _, err := requireSession()
		if err != nil {
			return err
		}

		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		status, _ := cmd.Flags().GetString("status")

		state := client.NewTaskState(apiClient())
		task, err := state.Create(cmd.Context(), client.TaskDraft{
			Title:       title,
			Description: description,
			Status:      constants.TaskStatus(status),
		}, sess.Token)
		if err != nil {
			return err
		}

		fmt.Printf("created task %s\n", task.ID)
		return nil
	},
}

var taskEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update a task's title, description or status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, _, err := requireSession()
		if err != nil {
			return err
		}

		var patch client.TaskPatch
		if cmd.Flags().Changed("title") {
			title, _ := cmd.Flags().GetString("title")
			patch.Title = &title
		}
		if cmd.Flags().Changed("description") {
			description, _ := cmd.Flags().GetString("description")
			patch.Description = &description
		}
		if cmd.Flags().Changed("status") {
			status, _ := cmd.Flags().GetString("status")
			taskStatus := constants.TaskStatus(status)
			patch.Status = &taskStatus
		}

		state := client.NewTaskState(apiClient())
		task, err := state.Update(cmd.Context(), args[0], patch, sess.Token)
		if err != nil {
			return err
		}

		fmt.Printf("updated task %s\n", task.ID)
		return nil
	},
}

var taskRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, _, err := requireSession()
		if err != nil {
			return err
		}

		state := client.NewTaskState(apiClient())
		if err := state.Delete(cmd.Context(), args[0], sess.Token); err != nil {
			return err
		}

		fmt.Printf("deleted task %s\n", args[0])
		return nil
	},
}

var taskStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task counts per status",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, _, err := requireSession()
		if err != nil {
			return err
		}

		state := client.NewTaskState(apiClient())
		tasks, err := state.Load(cmd.Context(), sess.Token)
		if err != nil {
			return fmt.Errorf("failed to fetch tasks: %w", err)
		}

		stats := client.ComputeStats(tasks)
		fmt.Printf("total: %d\ncompleted: %d\nin progress: %d\npending: %d\n",
			stats.Total, stats.Completed, stats.InProgress, stats.Pending)
		return nil
	},
}

func printTasks(tasks []model.Task) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tTITLE\tDESCRIPTION")
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Status, t.Title, t.Description)
	}
	_ = w.Flush()
}

func init() {
	taskListCmd.Flags().String("search", "", "filter by title or description substring")
	taskListCmd.Flags().String("status", constants.StatusFilterAll, "filter by status (pending, in-progress, completed, all)")

	taskAddCmd.Flags().String("title", "", "task title")
	taskAddCmd.Flags().String("description", "", "task description")
	taskAddCmd.Flags().String("status", "", "task status (defaults to pending)")
	_ = taskAddCmd.MarkFlagRequired("title")

	taskEditCmd.Flags().String("title", "", "new title")
	taskEditCmd.Flags().String("description", "", "new description")
	taskEditCmd.Flags().String("status", "", "new status")

	taskCmd.AddCommand(taskListCmd, taskAddCmd, taskEditCmd, taskRmCmd, taskStatsCmd)
	rootCmd.AddCommand(taskCmd)
}
