package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MikeBiancalana/todo/internal/task"
)

var addCmd = &cobra.Command{
	Use:     "add TASK",
	Aliases: []string{"a"},
	Short:   "Add a line to your todo.txt file",
	Long: `THING I NEED TO DO +project @context

Adds THING I NEED TO DO to your todo.txt file on its own line.
Project and context notation optional. Quotes optional.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return addTasks(cmd, []string{strings.Join(args, " ")})
	},
}

var addmCmd = &cobra.Command{
	Use:   "addm TASKS",
	Short: "Add multiple lines to your todo.txt file",
	Long: `"FIRST THING I NEED TO DO +project1 @context
SECOND THING I NEED TO DO +project2 @context"

Adds FIRST THING I NEED TO DO on its own line and SECOND THING I NEED
TO DO on its own line. Quotes required.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return addTasks(cmd, strings.Split(args[0], "\n"))
	},
}

func addTasks(cmd *cobra.Command, lines []string) error {
	tasks, err := store.LoadTasks(cfg.TodoFile())
	if err != nil {
		return err
	}
	ct := tasks.Len()

	added := make([]string, 0, len(lines))
	for _, line := range lines {
		if dateOnAdd() {
			line = time.Now().Format("2006-01-02") + " " + line
		}
		ct++
		t := task.New(ct, line)
		added = append(added, t.Raw)
		fmt.Fprintln(cmd.OutOrStdout(), t)
		fmt.Fprintf(cmd.OutOrStdout(), "TODO: %d added.\n", t.ID)
	}
	return store.AppendLines(cfg.TodoFile(), added)
}
