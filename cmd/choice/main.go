/*
choice is a console utility expanding choice groups in prompt text.
Usage is

	choice [options] [TEXT]

Every {a|b|c} group of TEXT (or standard input, or every prompt of the -f file)
is replaced with one of its alternatives selected with the -s seed.
Run choice -h for the list of options.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ava12/choice/internal/app"
	"github.com/ava12/choice/internal/cli"
)

func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Stdin, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, inR io.Reader, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	err = app.NewApp(outW, errW, inR, appConfig).Run(context.Background())
	if errors.Is(err, app.ErrInvalidPrompt) || errors.Is(err, app.ErrInput) {
		return &cli.ExitError{Code: cli.PromptExitCode, Message: err.Error()}
	}
	return err
}
