package prompt_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/ava12/choice/internal/test"
	"github.com/ava12/choice/prompt"
)

func TestExpanderLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	x := prompt.Expander{
		Name:   "greeting",
		Logger: slog.New(slog.NewJSONHandler(buf, nil)),
	}

	test.ExpectString(t, "{hi|hello", x.Expand(context.Background(), "{hi|hello", 1))
	logs := buf.String()
	test.Assert(t, strings.Contains(logs, `"level":"WARN"`), "expecting warning, got %q", logs)
	test.Assert(t, strings.Contains(logs, `"source":"greeting"`), "expecting source name, got %q", logs)
	test.Assert(t, strings.Contains(logs, `"col":10`), "expecting error column, got %q", logs)

	buf.Reset()
	test.ExpectString(t, "hi", x.Expand(context.Background(), "{hi}", 1))
	test.ExpectString(t, "", buf.String())
}

func TestExpanderLoggerVariants(t *testing.T) {
	buf := &bytes.Buffer{}
	x := prompt.Expander{Logger: slog.New(slog.NewTextHandler(buf, nil))}

	res := x.Variants(context.Background(), "a /* b", 0, 3)
	test.ExpectInt(t, 3, len(res))
	for _, r := range res {
		test.ExpectString(t, "a /* b", r)
	}
	test.ExpectInt(t, 1, strings.Count(buf.String(), "level=WARN"))
}
