package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the todo application
type Config struct {
	Storage     StorageConfig
	Display     DisplayConfig
	Validation  ValidationConfig
	Application ApplicationConfig
}

// StorageConfig holds task file configuration
type StorageConfig struct {
	Dir            string `env:"TODO_DIR"`
	Filename       string
	TasksFile      string `env:"TODO_TASKS_FILE"`
	ConfigFile     string `env:"TODO_CONFIG"`
	DirPermissions uint32
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	UseColors   bool   `env:"TODO_USE_COLORS"`
	ShowTaskIDs bool   `env:"TODO_SHOW_TASK_IDS"`
	DateFormat  string `env:"TODO_DATE_FORMAT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	DescriptionMinLength int `env:"TODO_VALIDATION_DESCRIPTION_MIN"`
	DescriptionMaxLength int `env:"TODO_VALIDATION_DESCRIPTION_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TODO_APP_TIMEOUT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".todo")

	return &Config{
		Storage: StorageConfig{
			Dir:            defaultDir,
			Filename:       "tasks.json",
			ConfigFile:     filepath.Join(defaultDir, "config.toml"),
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			UseColors:   true,
			ShowTaskIDs: true,
			DateFormat:  "2006-01-02",
		},
		Validation: ValidationConfig{
			DescriptionMinLength: 1,
			DescriptionMaxLength: 500,
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
		},
	}
}

// TasksFilePath returns the full path to the tasks file. An explicit
// tasks_file setting wins over the storage dir + filename default.
func (c *Config) TasksFilePath() string {
	if c.Storage.TasksFile != "" {
		return c.Storage.TasksFile
	}
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// EnsureStorageDir creates the directory holding the tasks file if needed
func (c *Config) EnsureStorageDir() error {
	dir := filepath.Dir(c.TasksFilePath())
	return os.MkdirAll(dir, os.FileMode(c.Storage.DirPermissions))
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if dir := os.Getenv("TODO_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if path := os.Getenv("TODO_TASKS_FILE"); path != "" {
		c.Storage.TasksFile = path
	}
	if path := os.Getenv("TODO_CONFIG"); path != "" {
		c.Storage.ConfigFile = path
	}

	// Display configuration
	if useColors := os.Getenv("TODO_USE_COLORS"); useColors != "" {
		if b, err := strconv.ParseBool(useColors); err == nil {
			c.Display.UseColors = b
		}
	}
	if showIDs := os.Getenv("TODO_SHOW_TASK_IDS"); showIDs != "" {
		if b, err := strconv.ParseBool(showIDs); err == nil {
			c.Display.ShowTaskIDs = b
		}
	}
	if format := os.Getenv("TODO_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}

	// Validation configuration
	if minLen := os.Getenv("TODO_VALIDATION_DESCRIPTION_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.DescriptionMinLength = n
		}
	}
	if maxLen := os.Getenv("TODO_VALIDATION_DESCRIPTION_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.DescriptionMaxLength = n
		}
	}

	// Application configuration
	if timeout := os.Getenv("TODO_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.Dir == "" && c.Storage.TasksFile == "" {
		return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "tasks filename cannot be empty"}
	}
	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}
	if c.Validation.DescriptionMinLength < 1 {
		return &ConfigError{Field: "validation.description_min_length", Message: "description minimum length must be at least 1"}
	}
	if c.Validation.DescriptionMaxLength < c.Validation.DescriptionMinLength {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length must be greater than minimum length"}
	}
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
