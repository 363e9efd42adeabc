package cli

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/MikeBiancalana/todo/internal/logger"
	"github.com/MikeBiancalana/todo/internal/task"
)

var deleteCmd = &cobra.Command{
	Use:     "delete ITEM [TERM]",
	Aliases: []string{"del", "rm"},
	Short:   "Delete the task on line ITEM of todo.txt",
	Long: `Deletes the task on line ITEM of todo.txt.

If TERM is specified, only the TERM is removed from ITEM.
If no TERM is specified, the entire ITEM is deleted.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid line number %q", args[0])
		}
		if len(args) == 2 {
			return deleteTerm(cmd, item, args[1])
		}
		return deleteTask(cmd, item)
	},
}

// deleteTerm removes every match of term from the task's text and
// normalizes the remaining whitespace.
func deleteTerm(cmd *cobra.Command, item int, term string) error {
	re, err := regexp.Compile(term)
	if err != nil {
		return fmt.Errorf("malformed term %q: %w", term, err)
	}
	tasks, err := store.LoadTasks(cfg.TodoFile())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for i, t := range tasks {
		if t.ID != item {
			continue
		}
		fmt.Fprintln(out, t)
		if !re.MatchString(t.Raw) {
			logger.Info("term not found in task", "term", term, "task", t.Raw)
			fmt.Fprintf(out, "TODO: %q not found; no removal done.\n", term)
			return nil
		}
		clean := task.New(t.ID, re.ReplaceAllString(t.Raw, "")).NormalizeWhitespace()
		logger.Info("task after editing", "raw", clean.Raw)
		fmt.Fprintf(out, "TODO: Removed %q from task.\n", term)
		fmt.Fprintln(out, clean)
		tasks.Replace(i, clean)
		return writeTasks(tasks)
	}
	fmt.Fprintf(out, "TODO: No task %d.\n", item)
	return nil
}

// deleteTask blanks the task after an interactive confirmation. The
// blank line keeps later tasks on their line numbers unless blank
// removal is requested.
func deleteTask(cmd *cobra.Command, item int) error {
	tasks, err := store.LoadTasks(cfg.TodoFile())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for i, t := range tasks {
		if t.ID != item {
			continue
		}
		ok, err := confirm(fmt.Sprintf("Delete '%s'?", t.Raw))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "TODO: No tasks were deleted.")
			return nil
		}
		fmt.Fprintln(out, t)
		fmt.Fprintf(out, "TODO: %d deleted.\n", t.ID)
		tasks.Replace(i, t.Clear())
		return writeTasks(tasks)
	}
	fmt.Fprintf(out, "TODO: No task %d.\n", item)
	return nil
}

var depriCmd = &cobra.Command{
	Use:     "depri ITEM...",
	Aliases: []string{"dp"},
	Short:   "Remove the priority from one or more tasks",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := store.LoadTasks(cfg.TodoFile())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		changed := false
		for _, arg := range args {
			item, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid line number %q", arg)
			}
			found := false
			for i, t := range tasks {
				if t.ID != item {
					continue
				}
				found = true
				if t.Priority == 0 {
					fmt.Fprintf(out, "TODO: %d is not prioritized.\n", t.ID)
					break
				}
				depri := t.Depri()
				fmt.Fprintln(out, depri)
				fmt.Fprintf(out, "TODO: %d deprioritized.\n", t.ID)
				tasks.Replace(i, depri)
				changed = true
				break
			}
			if !found {
				fmt.Fprintf(out, "TODO: No task %d.\n", item)
			}
		}
		if !changed {
			return nil
		}
		return writeTasks(tasks)
	},
}

func confirm(title string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	)
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirmation cancelled: %w", err)
	}
	return ok, nil
}

func writeTasks(tasks task.List) error {
	if removeBlanks() {
		tasks.Retain(func(t task.Task) bool { return !t.IsBlank() })
	}
	return store.WriteTasks(cfg.TodoFile(), tasks)
}
