package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/nbuild/internal/app"
)

// version is stamped at release time.
const version = "0.1.0"

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
	flagSet := flag.NewFlagSet("nbuild", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
nbuild - declarative build runner for the Nuitka compiler.

Usage:
  nbuild [options] [-- COMPILER_ARGS...]

Without a spec file, the platform default configuration is translated.
Remaining arguments are passed to the compiler verbatim instead.

Options:
`)
		flagSet.PrintDefaults()
	}

	specFlag := flagSet.String("spec", "", "Path to a spec file (.hcl, .yaml, .toml) or a directory containing one.")
	sFlag := flagSet.String("s", "", "Path to a spec file (shorthand).")
	dryRunFlag := flagSet.Bool("dry-run", false, "Only print the command that would be run.")
	exportFlag := flagSet.String("export-script", "", "Write the resolved command to a script file (.bat, .sh, or .ps1).")
	compilerFlag := flagSet.String("compiler", "", "Override the compiler invocation (e.g. 'python -m nuitka'). Auto-detected when empty.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	versionFlag := flagSet.Bool("version", false, "Print the version and exit.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if *versionFlag {
		fmt.Fprintf(output, "nbuild %s\n", version)
		return nil, true, nil
	}

	specPath := *specFlag
	if specPath == "" {
		specPath = *sFlag
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

	return &app.Config{
		SpecPath:    specPath,
		DryRun:      *dryRunFlag,
		ExportPath:  *exportFlag,
		Compiler:    *compilerFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		Passthrough: flagSet.Args(),
	}, false, nil
}
