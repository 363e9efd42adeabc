package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MikeBiancalana/todo/internal/task"
)

var appendCmd = &cobra.Command{
	Use:     "append ITEM TEXT...",
	Aliases: []string{"app"},
	Short:   "Append text to the end of a task",
	Args:    cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid line number %q", args[0])
		}
		text := strings.Join(args[1:], " ")

		tasks, err := store.LoadTasks(cfg.TodoFile())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for i, t := range tasks {
			if t.ID != item {
				continue
			}
			appended := task.New(t.ID, t.Raw+" "+text).NormalizeWhitespace()
			fmt.Fprintln(out, appended)
			tasks.Replace(i, appended)
			return writeTasks(tasks)
		}
		fmt.Fprintf(out, "TODO: No task %d.\n", item)
		return nil
	},
}
