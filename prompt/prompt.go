// Package prompt expands choice groups in prompt text.
//
// Functions of this package never fail: malformed text is logged as a warning
// and returned unchanged. Warnings go to Expander.Logger, or to the slog.Default
// logger if it is nil.
package prompt

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ava12/choice"
	"github.com/ava12/choice/internal/ctxlog"
	"github.com/ava12/choice/parser"
	"github.com/ava12/choice/source"
)

// DefaultSeed is the seed to use when caller has no preference.
const DefaultSeed int64 = 0

// Expander holds parsing settings, zero value is ready to use.
// Expander has no mutable state and is safe for concurrent use.
type Expander struct {
	// Name is used as source name in diagnostics.
	Name string

	// MaxDepth limits nesting of choice groups, 0 means no limit.
	MaxDepth int

	// Logger receives parse warnings, nil means the logger carried by context or slog.Default.
	Logger *slog.Logger
}

// Expand replaces every choice group in text with one of its alternatives selected using seed.
// Returns text unchanged if it cannot be parsed.
func (x Expander) Expand(ctx context.Context, text string, seed int64) string {
	res, e := x.parse(text, parser.NewSelector(seed), false)
	if e != nil {
		x.warn(ctx, e)
		return text
	}

	return res
}

// Variants returns n expansions of text using seeds seed, seed+1, ..., seed+n-1.
// If text cannot be parsed, the warning is logged once and every variant is the original text.
func (x Expander) Variants(ctx context.Context, text string, seed int64, n int) []string {
	if n <= 0 {
		return nil
	}

	res := make([]string, n)
	for i := range res {
		variant, e := x.parse(text, parser.NewSelector(seed+int64(i)), false)
		if e != nil {
			x.warn(ctx, e)
			for j := range res {
				res[j] = text
			}
			break
		}

		res[i] = variant
	}
	return res
}

// Validate returns *choice.Error describing the first syntax error in text or nil.
func (x Expander) Validate(text string) error {
	_, e := x.parse(text, parser.NewSelector(DefaultSeed), false)
	return e
}

// HasChoices reports whether text is valid and contains at least one choice group
// with two or more alternatives, i.e. whether expansion result may depend on seed.
func (x Expander) HasChoices(text string) bool {
	sel := &countingSelector{Selector: parser.NewSelector(DefaultSeed)}
	_, e := x.parse(text, sel, false)
	return e == nil && sel.count > 0
}

// StripComments removes comments from text keeping choice groups and escapes as written.
// Returns text unchanged if it cannot be parsed.
func (x Expander) StripComments(ctx context.Context, text string) string {
	res, e := x.parse(text, nil, true)
	if e != nil {
		x.warn(ctx, e)
		return text
	}

	return res
}

func (x Expander) parse(text string, sel parser.Selector, stripOnly bool) (string, error) {
	p := parser.New(parser.Options{MaxDepth: x.MaxDepth, StripOnly: stripOnly})
	return p.Parse(source.New(x.Name, text), sel)
}

func (x Expander) warn(ctx context.Context, e error) {
	attrs := []any{"error", e.Error()}
	var ce *choice.Error
	if errors.As(e, &ce) {
		attrs = append(attrs, "code", ce.Code, "line", ce.Line, "col", ce.Col)
	}
	if x.Name != "" {
		attrs = append(attrs, "source", x.Name)
	}
	logger := x.Logger
	if logger == nil {
		logger = ctxlog.FromContext(ctx)
	}
	logger.WarnContext(ctx, "Error parsing prompt, using original text.", attrs...)
}

type countingSelector struct {
	parser.Selector
	count int
}

func (s *countingSelector) Select(n int) int {
	if n > 1 {
		s.count++
	}
	return s.Selector.Select(n)
}

// Expand is Expander.Expand with default settings.
func Expand(ctx context.Context, text string, seed int64) string {
	return Expander{}.Expand(ctx, text, seed)
}

// Variants is Expander.Variants with default settings.
func Variants(ctx context.Context, text string, seed int64, n int) []string {
	return Expander{}.Variants(ctx, text, seed, n)
}

// Validate is Expander.Validate with default settings.
func Validate(text string) error {
	return Expander{}.Validate(text)
}

// HasChoices is Expander.HasChoices with default settings.
func HasChoices(text string) bool {
	return Expander{}.HasChoices(text)
}

// StripComments is Expander.StripComments with default settings.
func StripComments(ctx context.Context, text string) string {
	return Expander{}.StripComments(ctx, text)
}
