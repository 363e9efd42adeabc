// Package storage handles file system operations for todo and done
// files.
package storage

import (
	"fmt"
	"os"
	"strings"

	"github.com/MikeBiancalana/todo/internal/task"
)

// FileStore reads and writes newline-delimited task files.
type FileStore struct{}

// NewFileStore creates a new file store.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// LoadTasks reads a todo file into a task list, assigning 1-based ids
// in line order. A missing file loads as an empty list.
func (fs *FileStore) LoadTasks(path string) (task.List, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("read todo file %s: %w", path, err)
	}
	tasks := make(task.List, 0, len(lines))
	for i, line := range lines {
		tasks.Add(task.New(i+1, line))
	}
	return tasks, nil
}

// LoadDone reads a done file into a task list. Done tasks are not
// display-numbered, so every id is 0.
func (fs *FileStore) LoadDone(path string) (task.List, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("read done file %s: %w", path, err)
	}
	tasks := make(task.List, 0, len(lines))
	for _, line := range lines {
		tasks.Add(task.New(0, line))
	}
	return tasks, nil
}

// WriteTasks replaces the file's contents with the list's raw lines.
func (fs *FileStore) WriteTasks(path string, tasks task.List) error {
	if err := os.WriteFile(path, []byte(tasks.String()), 0644); err != nil {
		return fmt.Errorf("write file %s: %w", path, err)
	}
	return nil
}

// AppendLines appends raw lines to the end of the file, creating it if
// needed.
func (fs *FileStore) AppendLines(path string, lines []string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open file %s: %w", path, err)
	}
	defer f.Close()
	for _, line := range lines {
		if _, err := f.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("append to file %s: %w", path, err)
		}
	}
	return nil
}

func readLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(content), "\n")
	// The final newline is a line terminator, not an empty task.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, nil
}
