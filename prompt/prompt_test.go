package prompt

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/ava12/choice/internal/ctxlog"
	"github.com/ava12/choice/internal/test"
	"github.com/ava12/choice/parser"
)

func logContext() (context.Context, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger), buf
}

func TestExpandProperties(t *testing.T) {
	ctx, buf := logContext()
	samples := []struct {
		input    string
		expected []string
	}{
		{"{A|B|C}", []string{"A", "B", "C"}},
		{"{{a|b} {c|d}|e}", []string{"a c", "a d", "b c", "b d", "e"}},
		{`\{literal\}`, []string{"{literal}"}},
		{`\(keep\)`, []string{`\(keep\)`}},
		{"a/*x*/b", []string{"a b"}},
		{"a//x\nb", []string{"a\nb"}},
		{"a/", []string{"a/"}},
		{"no choices here", []string{"no choices here"}},
	}

	for _, s := range samples {
		for seed := int64(0); seed < 20; seed++ {
			res := Expand(ctx, s.input, seed)
			test.ExpectOneOf(t, s.expected, res)
			test.ExpectString(t, res, Expand(ctx, s.input, seed))
		}
	}
	test.ExpectString(t, "", buf.String())
}

func TestExpandFallback(t *testing.T) {
	samples := []string{"{a|b", "a}b", "x|y", `tail\`, "a/*b", "{a/*b}"}
	for _, text := range samples {
		ctx, buf := logContext()
		test.ExpectString(t, text, Expand(ctx, text, 1))
		log := buf.String()
		test.Assert(t, strings.Contains(log, "level=WARN"), "expecting warning for %q, got %q", text, log)
		test.Assert(t, strings.Contains(log, "line=1"), "expecting line number for %q, got %q", text, log)
	}
}

func TestExpanderName(t *testing.T) {
	ctx, buf := logContext()
	x := Expander{Name: "positive"}
	test.ExpectString(t, "{a", x.Expand(ctx, "{a", 0))
	log := buf.String()
	test.Assert(t, strings.Contains(log, "source=positive"), "expecting source name, got %q", log)
	test.Assert(t, strings.Contains(log, "in positive at line 1 col 3"), "expecting position, got %q", log)
}

func TestExpanderMaxDepth(t *testing.T) {
	ctx, buf := logContext()
	x := Expander{MaxDepth: 1}
	test.ExpectString(t, "{{a}}", x.Expand(ctx, "{{a}}", 0))
	test.Assert(t, strings.Contains(buf.String(), "level=WARN"), "expecting warning")
	test.ExpectString(t, "a", Expander{MaxDepth: 2}.Expand(ctx, "{{a}}", 0))
}

func TestExpandWithoutLogger(t *testing.T) {
	test.ExpectString(t, "{a|b", Expand(context.Background(), "{a|b", 0))
}

func TestVariants(t *testing.T) {
	ctx, buf := logContext()
	text := "{a|b|c|d} {e|f|g|h}"
	vs := Variants(ctx, text, 10, 5)
	test.ExpectInt(t, 5, len(vs))
	for i, v := range vs {
		test.ExpectString(t, Expand(ctx, text, 10+int64(i)), v)
	}
	test.Assert(t, Variants(ctx, text, 0, 0) == nil, "expecting nil for zero count")

	vs = Variants(ctx, "{bad", 0, 3)
	test.ExpectInt(t, 3, len(vs))
	for _, v := range vs {
		test.ExpectString(t, "{bad", v)
	}
	test.ExpectInt(t, 1, strings.Count(buf.String(), "level=WARN"))
}

func TestValidate(t *testing.T) {
	test.ExpectNoError(t, Validate("a {b|{c|d}} // comment"))
	test.ExpectErrorCode(t, parser.ExpectedSeparatorError, Validate("{a"))
	test.ExpectErrorCode(t, parser.UnterminatedCommentError, Validate("/*"))
	test.ExpectErrorCode(t, parser.TrailingTextError, Validate("}"))
	test.ExpectErrorCode(t, parser.UnexpectedEoiError, Validate(`\`))
}

func TestHasChoices(t *testing.T) {
	samples := []struct {
		input    string
		expected bool
	}{
		{"plain", false},
		{`\{not a group\}`, false},
		{"/* {a|b} */ text", false},
		{"{a|b}", true},
		{"{a}", false},
		{"{{a}} {b}", false},
		{"{a|}", true},
		{"{{a|b}}", true},
		{"x {a|b", false},
		{"", false},
	}

	for _, s := range samples {
		test.ExpectBool(t, s.expected, HasChoices(s.input))
	}
}

func TestStripComments(t *testing.T) {
	ctx, buf := logContext()
	test.ExpectString(t, "{a|b } \\{x\\} \n", StripComments(ctx, "{a|b/**/} \\{x\\} // tail\n"))
	test.ExpectString(t, "", buf.String())
	test.ExpectString(t, "a /* b", StripComments(ctx, "a /* b"))
	test.Assert(t, strings.Contains(buf.String(), "level=WARN"), "expecting warning")
}

func TestConcurrentExpand(t *testing.T) {
	text := "{a|b|c} {d|e|f} {g|h|i}"
	expected := make([]string, 8)
	for i := range expected {
		expected[i] = Expand(context.Background(), text, int64(i))
	}

	var wg sync.WaitGroup
	results := make([]string, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Expand(context.Background(), text, int64(i%8))
		}(i)
	}
	wg.Wait()

	for i, res := range results {
		test.ExpectString(t, expected[i%8], res)
	}
}
