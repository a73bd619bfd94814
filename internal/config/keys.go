package config

import (
	"fmt"
	"strconv"
)

// The config command exposes a fixed, closed set of keys. Each key maps to
// one field of the user-editable settings; anything else is rejected.
const (
	KeyTasksFile   = "tasks_file"
	KeyUseColors   = "use_colors"
	KeyShowTaskIDs = "show_task_ids"
	KeyDateFormat  = "date_format"
)

// Keys returns the closed key set in display order.
func Keys() []string {
	return []string{KeyTasksFile, KeyUseColors, KeyShowTaskIDs, KeyDateFormat}
}

// IsKnownKey reports whether key belongs to the closed key set.
func IsKnownKey(key string) bool {
	switch key {
	case KeyTasksFile, KeyUseColors, KeyShowTaskIDs, KeyDateFormat:
		return true
	}
	return false
}

// Get returns the rendered value of a configuration key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case KeyTasksFile:
		return c.TasksFilePath(), nil
	case KeyUseColors:
		return strconv.FormatBool(c.Display.UseColors), nil
	case KeyShowTaskIDs:
		return strconv.FormatBool(c.Display.ShowTaskIDs), nil
	case KeyDateFormat:
		return c.Display.DateFormat, nil
	}
	return "", fmt.Errorf("unknown configuration key %q", key)
}

// Set parses and applies a value for a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case KeyTasksFile:
		if value == "" {
			return fmt.Errorf("%s cannot be empty", key)
		}
		c.Storage.TasksFile = value
		return nil
	case KeyUseColors:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false, got %q", key, value)
		}
		c.Display.UseColors = b
		return nil
	case KeyShowTaskIDs:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false, got %q", key, value)
		}
		c.Display.ShowTaskIDs = b
		return nil
	case KeyDateFormat:
		if value == "" {
			return fmt.Errorf("%s cannot be empty", key)
		}
		c.Display.DateFormat = value
		return nil
	}
	return fmt.Errorf("unknown configuration key %q", key)
}
