package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/bagwalk/internal/app"
	"github.com/vk/bagwalk/internal/config"
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

// pathList collects a repeatable flag. Each occurrence may also hold a
// comma-separated list.
type pathList []string

func (p *pathList) String() string {
	return strings.Join(*p, ",")
}

func (p *pathList) Set(v string) error {
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			*p = append(*p, s)
		}
	}
	return nil
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("bagwalk", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
bagwalk - Answers containment questions about nested coloured bag rules.

Usage:
  bagwalk [options] [INPUT_PATH]

Arguments:
  INPUT_PATH
    Path to a rules file, one "X bags contain ..." rule per line.

Options:
`)
		flagSet.PrintDefaults()
	}

	var configPaths pathList
	inputFlag := flagSet.String("input", "", "Path to the rules file.")
	iFlag := flagSet.String("i", "", "Path to the rules file (shorthand).")
	flagSet.Var(&configPaths, "config", "HCL or YAML puzzle config file or directory. Repeatable.")
	targetFlag := flagSet.String("target", config.DefaultTarget, "Bag colour both questions are asked about.")
	workersFlag := flagSet.Int("workers", 1, "Number of concurrent workers for the container search.")
	checkCyclesFlag := flagSet.Bool("check-cycles", false, "Reject rules whose containment graph has a cycle.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *inputFlag != "" {
		path = *inputFlag
	} else if *iFlag != "" {
		path = *iFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Input path determined.", "path", path, "configs", len(configPaths))

	if path == "" && len(configPaths) == 0 {
		slog.Debug("No input or config provided, printing usage and exiting.")
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
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		InputPath:   path,
		ConfigPaths: configPaths,
		Target:      strings.TrimSpace(*targetFlag),
		Workers:     *workersFlag,
		CheckCycles: *checkCyclesFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
