package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/MikeBiancalana/todo/internal/config"
	"github.com/MikeBiancalana/todo/internal/logger"
	"github.com/MikeBiancalana/todo/internal/render"
	"github.com/MikeBiancalana/todo/internal/storage"
)

var (
	cfg   *config.Config
	store *storage.FileStore

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

var (
	cfgFileFlag       string
	plainFlag         bool
	hideContextsFlag  bool
	hideProjectsFlag  bool
	hidePriorityFlag  bool
	removeBlanksFlag  bool
	preserveLinesFlag bool
	dateOnAddFlag     bool
	noDateOnAddFlag   bool
	quietFlag         bool
)

// RootCmd is the root command for the CLI
var RootCmd = &cobra.Command{
	Use:           "todo",
	Short:         "Todo - manage your todo.txt file",
	Long:          `A command-line manager for plain-text task lists in todo.txt format.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if quietFlag {
			logger.Quiet()
		}
		var err error
		cfg, err = config.Load(cfgFileFlag)
		if err != nil {
			return err
		}
		store = storage.NewFileStore()
		logger.Debug("configuration loaded",
			"todo_file", cfg.TodoFile(),
			"done_file", cfg.DoneFile(),
			"styles", len(cfg.Styles))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// No subcommand: run the configured default action.
		switch cfg.General.DefaultAction {
		case "", "ls", "list":
			logger.Info("no command supplied; defaulting to list")
			return runList(cmd, nil, false)
		default:
			return fmt.Errorf("unknown default action %q", cfg.General.DefaultAction)
		}
	},
}

func init() {
	pf := RootCmd.PersistentFlags()
	pf.StringVarP(&cfgFileFlag, "config", "d", "", "location of toml config file (env TODO_CFG_FILE)")
	pf.BoolVarP(&plainFlag, "plain", "p", false, "plain mode turns off colors")
	pf.BoolVar(&hideContextsFlag, "hide-contexts", false, "hide task contexts from output")
	pf.BoolVar(&hideProjectsFlag, "hide-projects", false, "hide task projects from output")
	pf.BoolVarP(&hidePriorityFlag, "hide-priority", "P", false, "hide task priorities from output")
	pf.BoolVarP(&removeBlanksFlag, "remove-blank-lines", "n", false, "don't preserve line (task) numbers")
	pf.BoolVarP(&preserveLinesFlag, "preserve-line-numbers", "N", false, "preserve line (task) numbers")
	pf.BoolVarP(&dateOnAddFlag, "date-on-add", "t", false, "prepend current date to new tasks")
	pf.BoolVarP(&noDateOnAddFlag, "no-date-on-add", "T", false, "don't prepend current date to new tasks")
	pf.BoolVarP(&quietFlag, "quiet", "q", false, "quiet log messages on console")

	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(listallCmd)
	RootCmd.AddCommand(listpriCmd)
	RootCmd.AddCommand(addCmd)
	RootCmd.AddCommand(addmCmd)
	RootCmd.AddCommand(appendCmd)
	RootCmd.AddCommand(deleteCmd)
	RootCmd.AddCommand(depriCmd)
	RootCmd.AddCommand(archiveCmd)
	RootCmd.AddCommand(deduplicateCmd)
	RootCmd.AddCommand(watchCmd)
}

// Execute runs the root command
func Execute() error {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		return err
	}
	return nil
}

func renderOptions() render.Options {
	return render.Options{
		HideProjects: hideProjectsFlag,
		HideContexts: hideContextsFlag,
		HidePriority: hidePriorityFlag,
		Plain:        plainFlag || os.Getenv("TERM") == "dumb",
	}
}

// dateOnAdd resolves the config toggle against the -t/-T flags.
func dateOnAdd() bool {
	if noDateOnAddFlag {
		return false
	}
	if dateOnAddFlag {
		return true
	}
	return cfg.General.DateOnAdd
}

// removeBlanks reports whether blank placeholder lines are dropped on
// write. Preserving line numbers is the default and -N wins over -n.
func removeBlanks() bool {
	return removeBlanksFlag && !preserveLinesFlag
}
