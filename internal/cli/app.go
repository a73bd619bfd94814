package cli

import (
	"io"
	"os"

	"github.com/codeforgood-org/todo/internal/api"
	"github.com/codeforgood-org/todo/internal/config"
	"github.com/codeforgood-org/todo/internal/output"
	"github.com/codeforgood-org/todo/internal/repository/jsonfile"
)

// App holds the dependencies shared by all CLI commands.
type App struct {
	config *config.Config
	out    io.Writer
	errOut io.Writer

	// api is built lazily so that flag overrides (like --tasks-file) are
	// applied to the config before the repository is opened.
	api api.API
}

// NewApp creates a new CLI application instance.
func NewApp(cfg *config.Config) *App {
	return &App{
		config: cfg,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

// NewAppWithAPI creates a CLI application with an injected API and writers.
// Used by tests.
func NewAppWithAPI(apiInstance api.API, cfg *config.Config, out, errOut io.Writer) *App {
	return &App{
		config: cfg,
		out:    out,
		errOut: errOut,
		api:    apiInstance,
	}
}

// API returns the task API, opening the repository on first use.
func (a *App) API() (api.API, error) {
	if a.api != nil {
		return a.api, nil
	}

	if err := a.config.EnsureStorageDir(); err != nil {
		return nil, err
	}
	repo, err := jsonfile.New(a.config.TasksFilePath())
	if err != nil {
		return nil, err
	}
	a.api = api.NewWithConfig(repo, a.config)
	return a.api, nil
}

// Config returns the application configuration.
func (a *App) Config() *config.Config {
	return a.config
}

// Palette returns the output palette honoring the color configuration.
func (a *App) Palette() *output.Palette {
	return output.NewPalette(output.ColorsEnabled(a.config))
}
