package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/contentsync/internal/app"
	"github.com/vk/contentsync/internal/cli"
	"github.com/vk/contentsync/internal/hcl"
)

// main is the entrypoint for the contentsync application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical wiring errors; recover so the user gets a
	// clean message instead of a stack trace.
	var runErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				runErr = fmt.Errorf("a critical startup error occurred: %v", r)
			}
		}()

		loader := hcl.NewLoader()
		contentApp := app.NewApp(outW, appConfig, loader)
		runErr = contentApp.Run(context.Background())
	}()
	return runErr
}
