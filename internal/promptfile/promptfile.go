// Package promptfile loads named prompts from HCL files.
//
// A file may set the base seed and contains any number of prompt blocks:
//
//	seed = 100
//
//	prompt "ball" {
//	  text  = "a {red|blue} ball"
//	  seed  = seed + 1
//	  count = 3
//	}
//
// Expressions may refer to variable seed, it holds the file seed (or the
// caller's seed when the file does not set one).
package promptfile

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/ava12/choice"
	"github.com/ava12/choice/internal/ctxlog"
)

// Error codes used by promptfile:
const (
	DuplicatePromptError = choice.PromptErrors + iota
	InvalidCountError
)

// Prompt is a single prompt block with all expressions evaluated.
type Prompt struct {
	Name  string
	Text  string
	Seed  int64
	Count int
}

// fileRoot is used to decode top-level content of a prompt file.
type fileRoot struct {
	Seed    hcl.Expression `hcl:"seed,optional"`
	Prompts []*promptBlock `hcl:"prompt,block"`
}

type promptBlock struct {
	Name  string         `hcl:"name,label"`
	Text  hcl.Expression `hcl:"text"`
	Seed  hcl.Expression `hcl:"seed,optional"`
	Count hcl.Expression `hcl:"count,optional"`
}

// Load parses prompt file at path. baseSeed is used when the file does not set its own seed.
// Prompts are returned in file order.
func Load(ctx context.Context, path string, baseSeed int64) ([]Prompt, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", path, diags)
	}

	return decode(ctx, path, file.Body, baseSeed)
}

// Parse is like Load but takes file content, name is used in error messages.
func Parse(ctx context.Context, name string, src []byte, baseSeed int64) ([]Prompt, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", name, diags)
	}

	return decode(ctx, name, file.Body, baseSeed)
}

func decode(ctx context.Context, name string, body hcl.Body, baseSeed int64) ([]Prompt, error) {
	logger := ctxlog.FromContext(ctx)

	var root fileRoot
	diags := gohcl.DecodeBody(body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode prompt file %s: %w", name, diags)
	}

	fileSeed, err := evalInt64(root.Seed, seedContext(baseSeed), baseSeed)
	if err != nil {
		return nil, err
	}
	logger.Debug("Prompt file seed evaluated.", "file", name, "seed", fileSeed)

	evalCtx := seedContext(fileSeed)
	prompts := make([]Prompt, 0, len(root.Prompts))
	seen := make(map[string]struct{}, len(root.Prompts))
	for _, block := range root.Prompts {
		if _, dup := seen[block.Name]; dup {
			return nil, rangeError(block.Text.Range(), DuplicatePromptError, "duplicate prompt %q", block.Name)
		}
		seen[block.Name] = struct{}{}

		p := Prompt{Name: block.Name}
		diags = gohcl.DecodeExpression(block.Text, evalCtx, &p.Text)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate text of prompt %q: %w", block.Name, diags)
		}

		if p.Seed, err = evalInt64(block.Seed, evalCtx, fileSeed); err != nil {
			return nil, err
		}

		count, err := evalInt64(block.Count, evalCtx, 1)
		if err != nil {
			return nil, err
		}
		if count < 1 {
			return nil, rangeError(block.Count.Range(), InvalidCountError, "count of prompt %q must be positive, got %d", block.Name, count)
		}
		p.Count = int(count)

		prompts = append(prompts, p)
	}

	logger.Debug("Prompt file loaded.", "file", name, "prompts", len(prompts))
	return prompts, nil
}

func seedContext(seed int64) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"seed": cty.NumberIntVal(seed),
		},
	}
}

// evalInt64 returns def if expr evaluates to null (e.g. optional attribute is missing).
func evalInt64(expr hcl.Expression, evalCtx *hcl.EvalContext, def int64) (int64, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return 0, fmt.Errorf("failed to evaluate expression: %w", diags)
	}
	if val.IsNull() {
		return def, nil
	}

	var res int64
	if err := gocty.FromCtyValue(val, &res); err != nil {
		return 0, fmt.Errorf("%s: invalid integer value: %w", expr.Range(), err)
	}
	return res, nil
}

func rangeError(r hcl.Range, code int, msg string, params ...any) *choice.Error {
	return choice.NewError(code, fmt.Sprintf(msg, params...), r.Filename, r.Start.Line, r.Start.Column)
}
