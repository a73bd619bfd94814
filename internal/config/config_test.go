package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "tasks.json", cfg.Storage.Filename)
	assert.True(t, cfg.Display.UseColors)
	assert.True(t, cfg.Display.ShowTaskIDs)
	assert.Equal(t, "2006-01-02", cfg.Display.DateFormat)
	assert.Equal(t, 1, cfg.Validation.DescriptionMinLength)
	assert.Equal(t, 500, cfg.Validation.DescriptionMaxLength)
	assert.Equal(t, 30*time.Second, cfg.Application.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestTasksFilePath(t *testing.T) {
	t.Run("defaults to dir plus filename", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Storage.Dir = "/data/todo"
		assert.Equal(t, filepath.Join("/data/todo", "tasks.json"), cfg.TasksFilePath())
	})

	t.Run("explicit tasks file wins", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Storage.TasksFile = "/elsewhere/my-tasks.json"
		assert.Equal(t, "/elsewhere/my-tasks.json", cfg.TasksFilePath())
	})
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Run("applies overrides", func(t *testing.T) {
		t.Setenv("TODO_TASKS_FILE", "/env/tasks.json")
		t.Setenv("TODO_USE_COLORS", "false")
		t.Setenv("TODO_SHOW_TASK_IDS", "false")
		t.Setenv("TODO_DATE_FORMAT", "02 Jan 2006")
		t.Setenv("TODO_APP_TIMEOUT", "5s")

		cfg := NewConfig()
		require.NoError(t, cfg.LoadFromEnvironment())

		assert.Equal(t, "/env/tasks.json", cfg.Storage.TasksFile)
		assert.False(t, cfg.Display.UseColors)
		assert.False(t, cfg.Display.ShowTaskIDs)
		assert.Equal(t, "02 Jan 2006", cfg.Display.DateFormat)
		assert.Equal(t, 5*time.Second, cfg.Application.Timeout)
	})

	t.Run("ignores unparseable values", func(t *testing.T) {
		t.Setenv("TODO_USE_COLORS", "definitely")
		t.Setenv("TODO_APP_TIMEOUT", "soon")

		cfg := NewConfig()
		require.NoError(t, cfg.LoadFromEnvironment())

		assert.True(t, cfg.Display.UseColors)
		assert.Equal(t, 30*time.Second, cfg.Application.Timeout)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"empty date format", func(c *Config) { c.Display.DateFormat = "" }, "display.date_format"},
		{"zero min length", func(c *Config) { c.Validation.DescriptionMinLength = 0 }, "validation.description_min_length"},
		{"max below min", func(c *Config) { c.Validation.DescriptionMaxLength = 0 }, "validation.description_max_length"},
		{"zero timeout", func(c *Config) { c.Application.Timeout = 0 }, "application.timeout"},
		{"empty filename", func(c *Config) { c.Storage.Filename = "" }, "storage.filename"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := NewConfig()
	cfg.Storage.TasksFile = "/custom/tasks.json"
	cfg.Display.UseColors = false
	cfg.Display.DateFormat = "Jan 2"
	require.NoError(t, cfg.SaveToFile(path))

	loaded := NewConfig()
	require.NoError(t, loaded.LoadFromFile(path))

	assert.Equal(t, "/custom/tasks.json", loaded.Storage.TasksFile)
	assert.False(t, loaded.Display.UseColors)
	assert.True(t, loaded.Display.ShowTaskIDs)
	assert.Equal(t, "Jan 2", loaded.Display.DateFormat)
}

func TestLoadFromFileFailSoft(t *testing.T) {
	t.Run("missing file keeps defaults", func(t *testing.T) {
		cfg := NewConfig()
		require.NoError(t, cfg.LoadFromFile(filepath.Join(t.TempDir(), "nope.toml")))
		assert.True(t, cfg.Display.UseColors)
	})

	t.Run("malformed file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("use_colors = {{{"), 0644))

		cfg := NewConfig()
		require.NoError(t, cfg.LoadFromFile(path))
		assert.True(t, cfg.Display.UseColors)
	})
}

func TestKeys(t *testing.T) {
	t.Run("closed key set", func(t *testing.T) {
		assert.Equal(t, []string{"tasks_file", "use_colors", "show_task_ids", "date_format"}, Keys())
		assert.True(t, IsKnownKey("use_colors"))
		assert.False(t, IsKnownKey("theme"))
	})

	t.Run("get renders values", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Storage.TasksFile = "/x/tasks.json"

		value, err := cfg.Get("tasks_file")
		require.NoError(t, err)
		assert.Equal(t, "/x/tasks.json", value)

		value, err = cfg.Get("use_colors")
		require.NoError(t, err)
		assert.Equal(t, "true", value)

		_, err = cfg.Get("theme")
		assert.Error(t, err)
	})

	t.Run("set parses per key type", func(t *testing.T) {
		cfg := NewConfig()

		require.NoError(t, cfg.Set("use_colors", "false"))
		assert.False(t, cfg.Display.UseColors)

		require.NoError(t, cfg.Set("show_task_ids", "TRUE"))
		assert.True(t, cfg.Display.ShowTaskIDs)

		require.NoError(t, cfg.Set("date_format", "2006/01/02"))
		assert.Equal(t, "2006/01/02", cfg.Display.DateFormat)

		assert.Error(t, cfg.Set("use_colors", "maybe"))
		assert.Error(t, cfg.Set("date_format", ""))
		assert.Error(t, cfg.Set("theme", "dark"))
	})
}
