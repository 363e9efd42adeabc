package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/MikeBiancalana/todo/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [TERMS...]",
	Short: "Re-list tasks whenever the todo file changes",
	Long: `Renders the task list and keeps watching the todo file,
re-rendering after every write until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		todoFile := cfg.TodoFile()

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()

		// Watch the directory: editors replace files on save, and the
		// recreated file would drop off a direct watch.
		if err := watcher.Add(filepath.Dir(todoFile)); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := runList(cmd, args, false); err != nil {
			return err
		}
		for {
			select {
			case <-ctx.Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if event.Name != todoFile {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				logger.Debug("todo file changed", "event", event.Op.String())
				if err := runList(cmd, args, false); err != nil {
					return err
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				return err
			}
		}
	},
}
