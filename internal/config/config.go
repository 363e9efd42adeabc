// Package config loads the TOML configuration file: general settings
// plus named style overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/MikeBiancalana/todo/internal/style"
)

const AppName = "todo"

// Settings are the scalar options from the [general] table.
type Settings struct {
	TodoFile      string `toml:"todo_file"`
	DoneFile      string `toml:"done_file"`
	ReportFile    string `toml:"report_file"`
	DateOnAdd     bool   `toml:"date_on_add"`
	DefaultAction string `toml:"default_action"`
}

// Config is the full configuration.
type Config struct {
	General Settings         `toml:"general"`
	Styles  []style.Override `toml:"styles"`
}

// Load reads a config from path. With an empty path the TODO_CFG_FILE
// environment variable is tried, then ~/.todo/config.toml. A missing
// file is not an error; built-in defaults apply.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("TODO_CFG_FILE")
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, "."+AppName, "config.toml")
	}
	path = ExpandPath(path)

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills unset file paths from the environment, then from
// the conventional locations next to the todo file.
func (c *Config) applyDefaults() {
	if c.General.TodoFile == "" {
		c.General.TodoFile = os.Getenv("TODO_FILE")
	}
	if c.General.TodoFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.General.TodoFile = filepath.Join(home, "todo.txt")
		}
	}
	if c.General.DoneFile == "" {
		c.General.DoneFile = os.Getenv("TODO_DONE_FILE")
	}
	if c.General.DoneFile == "" {
		c.General.DoneFile = filepath.Join(filepath.Dir(c.General.TodoFile), "done.txt")
	}
	if c.General.ReportFile == "" {
		c.General.ReportFile = filepath.Join(filepath.Dir(c.General.TodoFile), "report.txt")
	}
}

// TodoFile returns the expanded todo file path.
func (c *Config) TodoFile() string { return ExpandPath(c.General.TodoFile) }

// DoneFile returns the expanded done file path.
func (c *Config) DoneFile() string { return ExpandPath(c.General.DoneFile) }

// ExpandPath expands a leading ~ and any $VAR references in a path.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + path[1:]
		}
	}
	return os.ExpandEnv(path)
}
