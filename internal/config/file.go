package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/codeforgood-org/todo/internal/logging"
)

// fileSettings mirrors the user-editable config file. Pointer fields
// distinguish "not set" from a zero value.
type fileSettings struct {
	TasksFile   *string `toml:"tasks_file"`
	UseColors   *bool   `toml:"use_colors"`
	ShowTaskIDs *bool   `toml:"show_task_ids"`
	DateFormat  *string `toml:"date_format"`
}

// LoadFromFile merges settings from the TOML config file into the
// configuration. A missing file is not an error; an unreadable or malformed
// file falls back to the current values with a debug note, matching the
// fail-soft behavior of the task store.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		logging.Debugf("config: cannot read %s: %v\n", path, err)
		return nil
	}

	var settings fileSettings
	if err := toml.Unmarshal(data, &settings); err != nil {
		logging.Debugf("config: malformed config file %s: %v\n", path, err)
		return nil
	}

	if settings.TasksFile != nil {
		c.Storage.TasksFile = *settings.TasksFile
	}
	if settings.UseColors != nil {
		c.Display.UseColors = *settings.UseColors
	}
	if settings.ShowTaskIDs != nil {
		c.Display.ShowTaskIDs = *settings.ShowTaskIDs
	}
	if settings.DateFormat != nil {
		c.Display.DateFormat = *settings.DateFormat
	}

	return nil
}

// SaveToFile writes the user-editable settings to the TOML config file.
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.FileMode(c.Storage.DirPermissions)); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	settings := fileSettings{
		TasksFile:   &c.Storage.TasksFile,
		UseColors:   &c.Display.UseColors,
		ShowTaskIDs: &c.Display.ShowTaskIDs,
		DateFormat:  &c.Display.DateFormat,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(settings); err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}
	return nil
}
