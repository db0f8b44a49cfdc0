package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/ava12/choice/internal/app"
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

// Exit codes used by ExitError.
const (
	UsageExitCode  = 2
	PromptExitCode = 3
)

// envConfig holds defaults taken from the environment, flags override them.
type envConfig struct {
	Seed      int64  `env:"CHOICE_SEED" envDefault:"0"`
	Count     int    `env:"CHOICE_COUNT" envDefault:"1"`
	MaxDepth  int    `env:"CHOICE_MAX_DEPTH" envDefault:"0"`
	LogLevel  string `env:"CHOICE_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"CHOICE_LOG_FORMAT" envDefault:"text"`
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var defaults envConfig
	if err := env.Parse(&defaults); err != nil {
		return nil, false, &ExitError{Code: UsageExitCode, Message: fmt.Sprintf("invalid environment: %s", err)}
	}

	flagSet := flag.NewFlagSet("choice", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
choice - expands {alternative|groups} in prompt text using a random seed.

Usage:
  choice [options] [TEXT]

Arguments:
  TEXT
    Prompt text. Standard input is read if TEXT is "-" or missing and no prompt file is given.

Options:
`)
		flagSet.PrintDefaults()
	}

	var seed int64
	var count, maxDepth int
	var promptFile string
	flagSet.Int64Var(&seed, "seed", defaults.Seed, "Random seed, the same seed gives the same result.")
	flagSet.Int64Var(&seed, "s", defaults.Seed, "Random seed (shorthand).")
	flagSet.IntVar(&count, "count", defaults.Count, "Number of variants to generate, seeds are incremented for each one.")
	flagSet.IntVar(&count, "n", defaults.Count, "Number of variants (shorthand).")
	flagSet.StringVar(&promptFile, "file", "", "HCL file containing prompt blocks.")
	flagSet.StringVar(&promptFile, "f", "", "HCL prompt file (shorthand).")
	flagSet.IntVar(&maxDepth, "max-depth", defaults.MaxDepth, "Maximum nesting of choice groups, 0 is unlimited.")
	strictFlag := flagSet.Bool("strict", false, "Fail on malformed prompts instead of writing them unchanged.")
	checkFlag := flagSet.Bool("check", false, "Only validate prompts.")
	stripFlag := flagSet.Bool("strip", false, "Only remove comments, keep choice groups.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: UsageExitCode, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: UsageExitCode, Message: "too many arguments: quote prompt text to pass it as a single argument"}
	}
	text := flagSet.Arg(0)
	if flagSet.NArg() == 0 && promptFile == "" {
		text = app.StdinText
	}

	mode := app.ModeExpand
	if *checkFlag && *stripFlag {
		return nil, false, &ExitError{Code: UsageExitCode, Message: "-check and -strip cannot be used together"}
	} else if *checkFlag {
		mode = app.ModeCheck
	} else if *stripFlag {
		mode = app.ModeStrip
	}

	config, err := app.NewConfig(app.Config{
		Text:       text,
		PromptFile: promptFile,
		Seed:       seed,
		Count:      count,
		MaxDepth:   maxDepth,
		Mode:       mode,
		Strict:     *strictFlag,
		LogFormat:  strings.ToLower(*logFormatFlag),
		LogLevel:   strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: UsageExitCode, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
