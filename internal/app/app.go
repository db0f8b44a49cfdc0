package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ava12/choice/internal/ctxlog"
	"github.com/ava12/choice/internal/promptfile"
	"github.com/ava12/choice/prompt"
)

var (
	// ErrInvalidPrompt is returned by Run when check or strict mode finds a malformed prompt.
	ErrInvalidPrompt = errors.New("invalid prompt")
	// ErrInput is returned by Run when prompts cannot be read or the prompt file is invalid.
	ErrInput = errors.New("cannot load prompts")
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	inR    io.Reader
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the application. Results go to outW,
// logs go to logW, inR is read when the prompt text comes from standard input.
func NewApp(outW, logW io.Writer, inR io.Reader, config *Config) *App {
	logger := slog.New(config.logHandler(logW))
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		inR:    inR,
		logger: logger,
		config: config,
	}
}

// input is a single prompt to process.
type input struct {
	name     string
	text     string
	seed     int64
	count    int
	fromFile bool
}

func (in input) label() string {
	if in.name == "" {
		return "prompt"
	}
	return in.name
}

// Run processes all prompts according to the configured mode.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "mode", a.config.Mode.String())

	inputs, err := a.loadInputs(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInput, err)
	}
	a.logger.Debug("Prompts loaded.", "count", len(inputs))

	invalid := 0
	for _, in := range inputs {
		x := prompt.Expander{Name: in.name, MaxDepth: a.config.MaxDepth}

		switch a.config.Mode {
		case ModeCheck:
			if err := x.Validate(in.text); err != nil {
				invalid++
				fmt.Fprintf(a.outW, "%s: %s\n", in.label(), err)
			} else {
				fmt.Fprintf(a.outW, "%s: ok\n", in.label())
			}

		case ModeStrip:
			text := x.StripComments(ctx, in.text)
			if in.fromFile {
				fmt.Fprintf(a.outW, "%s\t%s\n", in.name, text)
			} else {
				fmt.Fprintln(a.outW, text)
			}

		default:
			if a.config.Strict {
				if err := x.Validate(in.text); err != nil {
					invalid++
					a.logger.Error("Prompt is malformed.", "prompt", in.label(), "error", err.Error())
					continue
				}
			}

			for i, text := range x.Variants(ctx, in.text, in.seed, in.count) {
				if in.fromFile {
					fmt.Fprintf(a.outW, "%s\t%d\t%s\n", in.name, in.seed+int64(i), text)
				} else {
					fmt.Fprintln(a.outW, text)
				}
			}
		}
	}

	a.logger.Debug("App.Run method finished.", "invalid", invalid)
	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d prompts are malformed", ErrInvalidPrompt, invalid, len(inputs))
	}
	return nil
}

func (a *App) loadInputs(ctx context.Context) ([]input, error) {
	cfg := a.config

	if cfg.PromptFile != "" {
		prompts, err := promptfile.Load(ctx, cfg.PromptFile, cfg.Seed)
		if err != nil {
			return nil, fmt.Errorf("failed to load prompts: %w", err)
		}

		inputs := make([]input, len(prompts))
		for i, p := range prompts {
			inputs[i] = input{name: p.Name, text: p.Text, seed: p.Seed, count: p.Count, fromFile: true}
		}
		return inputs, nil
	}

	if cfg.Text == StdinText {
		content, err := io.ReadAll(a.inR)
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}

		text := strings.TrimSuffix(strings.TrimSuffix(string(content), "\n"), "\r")
		return []input{{name: "stdin", text: text, seed: cfg.Seed, count: cfg.Count}}, nil
	}

	return []input{{text: cfg.Text, seed: cfg.Seed, count: cfg.Count}}, nil
}
