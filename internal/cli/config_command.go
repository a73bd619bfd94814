package cli

import (
	"context"
	"fmt"

	"github.com/codeforgood-org/todo/internal/config"
	"github.com/codeforgood-org/todo/internal/errors"
	"github.com/codeforgood-org/todo/internal/output"
)

// ConfigCommand handles the config command
type ConfigCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewConfigCommand creates a new config command handler
func NewConfigCommand(app *App) *ConfigCommand {
	return &ConfigCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the config command:
// no arguments shows every setting, one argument shows a single setting,
// two arguments set a value and save the config file.
func (c *ConfigCommand) Execute(ctx context.Context, args []string) error {
	switch len(args) {
	case 0:
		return c.showAll()
	case 1:
		return c.showKey(args[0])
	case 2:
		return c.setKey(args[0], args[1])
	}
	return errors.NewInvalidInputError("command", "config", "usage: todo config [key] [value]")
}

func (c *ConfigCommand) showAll() error {
	palette := c.app.Palette()
	fmt.Fprintf(c.app.out, "\n%s\n\n", palette.Heading("Current Configuration:"))
	for _, key := range config.Keys() {
		value, err := c.app.Config().Get(key)
		if err != nil {
			return c.errorHandler.Handle("show configuration", err)
		}
		output.FormatConfigEntry(c.app.out, palette, key, value)
	}
	fmt.Fprintln(c.app.out)
	return nil
}

func (c *ConfigCommand) showKey(key string) error {
	value, err := c.app.Config().Get(key)
	if err != nil {
		return errors.NewInvalidInputError("key", key, err.Error())
	}
	output.FormatConfigEntry(c.app.out, c.app.Palette(), key, value)
	return nil
}

func (c *ConfigCommand) setKey(key, value string) error {
	cfg := c.app.Config()
	if !config.IsKnownKey(key) {
		return errors.NewInvalidInputError("key", key, fmt.Sprintf("unknown configuration key %q", key))
	}
	if err := cfg.Set(key, value); err != nil {
		return errors.NewInvalidInputError("value", value, err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return errors.NewInvalidInputError("value", value, err.Error())
	}
	if err := cfg.SaveToFile(cfg.Storage.ConfigFile); err != nil {
		return errors.NewStorageError("save configuration", err).WithContext("path", cfg.Storage.ConfigFile)
	}

	rendered, err := cfg.Get(key)
	if err != nil {
		rendered = value
	}
	output.FormatConfigUpdated(c.app.out, c.app.Palette(), key, rendered)
	return nil
}
