package cli

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MikeBiancalana/todo/internal/logger"
	"github.com/MikeBiancalana/todo/internal/render"
	"github.com/MikeBiancalana/todo/internal/style"
	"github.com/MikeBiancalana/todo/internal/task"
)

var sortFlag string

var listCmd = &cobra.Command{
	Use:     "list [TERMS...]",
	Aliases: []string{"ls"},
	Short:   "List tasks, optionally filtered by terms",
	Long: `List tasks from your todo.txt file.

Each TERM must match (AND). A term containing '|' matches any of its
alternatives (OR). A term starting with '-' excludes matching tasks.
Matching is case-insensitive against the original line text.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, args, false)
	},
}

var listallCmd = &cobra.Command{
	Use:     "listall [TERMS...]",
	Aliases: []string{"lsa"},
	Short:   "List tasks from both the todo and done files",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, args, true)
	},
}

var listpriCmd = &cobra.Command{
	Use:     "listpri [PRIORITIES...]",
	Aliases: []string{"lsp"},
	Short:   "List prioritized tasks, optionally for specific priorities",
	RunE: func(cmd *cobra.Command, args []string) error {
		pris, err := parsePriorities(args)
		if err != nil {
			return err
		}
		spec, err := parseSortSpec(sortFlag)
		if err != nil {
			return err
		}
		tasks, err := store.LoadTasks(cfg.TodoFile())
		if err != nil {
			return err
		}
		return listTasks(cmd.OutOrStdout(), tasks, nil, nil, listOptions{
			priorities: pris,
			sort:       spec,
			render:     renderOptions(),
			styles:     cfg.Styles,
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{listCmd, listallCmd, listpriCmd} {
		c.Flags().StringVarP(&sortFlag, "sort", "s", "",
			"comma-separated sort keys, '-' prefix reverses (e.g. priority,-due,id)")
	}
}

func runList(cmd *cobra.Command, terms []string, all bool) error {
	spec, err := parseSortSpec(sortFlag)
	if err != nil {
		return err
	}
	tasks, err := store.LoadTasks(cfg.TodoFile())
	if err != nil {
		return err
	}
	var done task.List
	if all {
		done, err = store.LoadDone(cfg.DoneFile())
		if err != nil {
			return err
		}
	}
	return listTasks(cmd.OutOrStdout(), tasks, done, terms, listOptions{
		all:    all,
		sort:   spec,
		render: renderOptions(),
		styles: cfg.Styles,
	})
}

type listOptions struct {
	all        bool
	priorities []byte // restrict to these priority letters; nil means no restriction
	sort       []task.SortBy
	render     render.Options
	styles     []style.Override
}

// listTasks runs the filter/sort/render pipeline and writes the result
// in one shot, so colored output never interleaves with partial writes.
func listTasks(w io.Writer, tasks, done task.List, terms []string, opts listOptions) error {
	tasks.Retain(func(t task.Task) bool { return !t.IsBlank() })
	done.Retain(func(t task.Task) bool { return !t.IsBlank() })
	if opts.priorities != nil {
		tasks.Retain(func(t task.Task) bool { return hasPriority(t, opts.priorities) })
	}
	prefilterTaskCt := tasks.Len()
	prefilterDoneCt := done.Len()

	tasks.Sort(opts.sort)
	if opts.all {
		done.Sort(opts.sort)
	}

	if len(terms) > 0 {
		logger.Info("listing with terms", "terms", terms)
		if err := tasks.FilterTerms(terms); err != nil {
			return err
		}
		if err := done.FilterTerms(terms); err != nil {
			return err
		}
	} else {
		logger.Info("listing without filter")
	}

	shownTaskCt := tasks.Len()
	shownDoneCt := done.Len()
	if opts.all {
		tasks.Concat(done)
	}

	var buf bytes.Buffer
	r := render.New(opts.styles, opts.render)
	if err := r.Render(&buf, tasks, prefilterTaskCt); err != nil {
		return err
	}
	fmt.Fprintf(&buf, "--\nTODO: %d of %d tasks shown\n", shownTaskCt, prefilterTaskCt)
	if opts.all {
		fmt.Fprintf(&buf, "DONE: %d of %d tasks shown\n", shownDoneCt, prefilterDoneCt)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// parseSortSpec turns "priority,-due,id" into sort keys. An empty spec
// sorts by line number.
func parseSortSpec(s string) ([]task.SortBy, error) {
	if strings.TrimSpace(s) == "" {
		return []task.SortBy{{Field: task.FieldID}}, nil
	}
	var spec []task.SortBy
	for _, key := range strings.Split(s, ",") {
		key = strings.TrimSpace(key)
		name, reverse := strings.CutPrefix(key, "-")
		field, ok := task.ParseSortField(name)
		if !ok {
			return nil, fmt.Errorf("unknown sort field %q", name)
		}
		spec = append(spec, task.SortBy{Field: field, Reverse: reverse})
	}
	return spec, nil
}

// parsePriorities validates listpri arguments as single letters. No
// arguments means any prioritized task.
func parsePriorities(args []string) ([]byte, error) {
	if len(args) == 0 {
		// Non-nil so listTasks applies the "has any priority" filter.
		return []byte{}, nil
	}
	pris := make([]byte, 0, len(args))
	for _, a := range args {
		u := strings.ToUpper(a)
		if len(u) != 1 || u[0] < 'A' || u[0] > 'Z' {
			return nil, fmt.Errorf("invalid priority %q: want a single letter A-Z", a)
		}
		pris = append(pris, u[0])
	}
	return pris, nil
}

func hasPriority(t task.Task, pris []byte) bool {
	if t.Priority == 0 {
		return false
	}
	if len(pris) == 0 {
		return true
	}
	for _, p := range pris {
		if t.Priority == p {
			return true
		}
	}
	return false
}
