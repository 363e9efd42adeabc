package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Move completed tasks to the done file",
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := store.LoadTasks(cfg.TodoFile())
		if err != nil {
			return err
		}
		var archived []string
		for i, t := range tasks {
			if t.IsBlank() || !t.Completed {
				continue
			}
			archived = append(archived, t.Raw)
			tasks.Replace(i, t.Clear())
		}
		if len(archived) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "TODO: No completed tasks to archive.")
			return nil
		}
		if err := store.AppendLines(cfg.DoneFile(), archived); err != nil {
			return err
		}
		if err := writeTasks(tasks); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "TODO: %d tasks archived.\n", len(archived))
		return nil
	},
}

var deduplicateCmd = &cobra.Command{
	Use:     "deduplicate",
	Aliases: []string{"dedup"},
	Short:   "Remove duplicate lines from the todo file",
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := store.LoadTasks(cfg.TodoFile())
		if err != nil {
			return err
		}
		seen := make(map[string]bool, tasks.Len())
		removed := 0
		for i, t := range tasks {
			if t.IsBlank() {
				continue
			}
			if seen[t.Raw] {
				tasks.Replace(i, t.Clear())
				removed++
				continue
			}
			seen[t.Raw] = true
		}
		if removed == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "TODO: No duplicate tasks found.")
			return nil
		}
		if err := writeTasks(tasks); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "TODO: %d duplicate tasks removed.\n", removed)
		return nil
	},
}
