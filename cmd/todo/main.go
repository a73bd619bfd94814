package main

import (
	"context"
	"fmt"
	"os"

	"github.com/codeforgood-org/todo/internal/cli"
	"github.com/codeforgood-org/todo/internal/config"
	"github.com/codeforgood-org/todo/internal/exitcode"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return exitcode.UserError
	}

	app := cli.NewApp(cfg)
	root := cli.NewRootCommand(app)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Application.Timeout)
	defer cancel()

	if err := root.Execute(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitcode.FromError(err)
	}
	return exitcode.Success
}
