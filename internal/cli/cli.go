package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/vk/contentsync/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("contentsync", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
ContentSync - deterministic game content loading and checksum verification.

Usage:
  contentsync [options] [CONTENT_PATH]

Arguments:
  CONTENT_PATH
    Path to a single .hcl definition file or a directory containing them.

Options:
`)
		flagSet.PrintDefaults()
	}

	contentFlag := flagSet.String("content", "", "Path to the content file or directory.")
	cFlag := flagSet.String("c", "", "Path to the content file or directory (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	verifyURLFlag := flagSet.String("verify-url", "", "socket.io endpoint of a peer to verify checksums against.")
	verifyTimeoutFlag := flagSet.Duration("verify-timeout", 10*time.Second, "Timeout for the peer checksum exchange.")
	insecureFlag := flagSet.Bool("insecure-skip-verify", false, "Skip TLS certificate verification for the peer connection.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *contentFlag != "" {
		path = *contentFlag
	} else if *cFlag != "" {
		path = *cFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Content path determined.", "path", path)

	if path == "" {
		slog.Debug("No content path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		ContentPath:        path,
		LogFormat:          logFormat,
		LogLevel:           logLevel,
		VerifyURL:          *verifyURLFlag,
		VerifyTimeout:      *verifyTimeoutFlag,
		InsecureSkipVerify: *insecureFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
