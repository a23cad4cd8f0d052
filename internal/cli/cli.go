package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/specialistvlad/sheetgo/internal/app"
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

// Parse processes command-line arguments on top of the configuration read
// from environ (nil reads the process environment). It returns a populated
// Config, a boolean indicating if the program should exit cleanly, or an
// ExitError.
func Parse(args []string, output io.Writer, environ map[string]string) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	base, err := app.ConfigFromEnv(environ)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	flagSet := pflag.NewFlagSet("sheetgo", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
SheetGo - evaluates character sheets defined in HCL.

Usage:
  sheetgo [options] [SHEET_PATH]

Arguments:
  SHEET_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	sheetFlag := flagSet.StringP("sheet", "s", "", "Path to the sheet file or directory. (env SHEETGO_SHEET)")
	logLevelFlag := flagSet.String("log-level", base.LogLevel, "Logging level: 'debug', 'info', 'warn' or 'error'. (env SHEETGO_LOG_LEVEL)")
	logFormatFlag := flagSet.String("log-format", base.LogFormat, "Log output format: 'text' or 'json'. (env SHEETGO_LOG_FORMAT)")
	outputFlag := flagSet.StringP("output", "o", base.Output, "Sheet output format: 'text' or 'json'. (env SHEETGO_OUTPUT)")
	noColorFlag := flagSet.Bool("no-color", base.NoColor, "Disable colored text output. (env SHEETGO_NO_COLOR)")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := base.SheetPath
	if *sheetFlag != "" {
		path = *sheetFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Sheet path determined.", "path", path)

	if path == "" {
		slog.Debug("No sheet path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	config, err := app.NewConfig(app.Config{
		SheetPath: path,
		LogLevel:  strings.ToLower(*logLevelFlag),
		LogFormat: strings.ToLower(*logFormatFlag),
		Output:    strings.ToLower(*outputFlag),
		NoColor:   *noColorFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
