package promptfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ava12/choice"
)

func TestParse_Basic(t *testing.T) {
	t.Parallel()

	src := `
seed = 100

prompt "ball" {
  text  = "a {red|blue} ball"
  seed  = seed + 1
  count = 3
}

prompt "bench" {
  text = "a {wooden|metal} bench, \\(detailed\\)"
}

prompt "heredoc" {
  text = <<EOT
{a|b} // comment
EOT
  count = 2
}
`
	prompts, err := Parse(context.Background(), "test.hcl", []byte(src), 7)
	require.NoError(t, err)

	want := []Prompt{
		{Name: "ball", Text: "a {red|blue} ball", Seed: 101, Count: 3},
		{Name: "bench", Text: `a {wooden|metal} bench, \(detailed\)`, Seed: 100, Count: 1},
		{Name: "heredoc", Text: "{a|b} // comment\n", Seed: 100, Count: 2},
	}
	if diff := cmp.Diff(want, prompts); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_BaseSeed(t *testing.T) {
	t.Parallel()

	src := `
prompt "a" {
  text = "x"
}

prompt "b" {
  text = "y"
  seed = seed * 2
}
`
	prompts, err := Parse(context.Background(), "test.hcl", []byte(src), 21)
	require.NoError(t, err)
	require.Len(t, prompts, 2)
	require.Equal(t, int64(21), prompts[0].Seed)
	require.Equal(t, int64(42), prompts[1].Seed)
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	prompts, err := Parse(context.Background(), "empty.hcl", []byte(""), 0)
	require.NoError(t, err)
	require.Empty(t, prompts)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		src  string
		code int
		msg  string
	}{
		{
			name: "syntax error",
			src:  `prompt "a" {`,
			msg:  "failed to parse prompt file",
		},
		{
			name: "missing text",
			src:  `prompt "a" {}`,
			msg:  "failed to decode prompt file",
		},
		{
			name: "unknown attribute",
			src:  "prompt \"a\" {\n text = \"x\"\n color = \"red\"\n}\n",
			msg:  "failed to decode prompt file",
		},
		{
			name: "duplicate prompt",
			src:  "prompt \"a\" {\n text = \"x\"\n}\nprompt \"a\" {\n text = \"y\"\n}\n",
			code: DuplicatePromptError,
			msg:  `duplicate prompt "a" in test.hcl at line 5 col 9`,
		},
		{
			name: "zero count",
			src:  "prompt \"a\" {\n text = \"x\"\n count = 0\n}\n",
			code: InvalidCountError,
			msg:  `count of prompt "a" must be positive, got 0`,
		},
		{
			name: "fractional seed",
			src:  "prompt \"a\" {\n text = \"x\"\n seed = 1.5\n}\n",
			msg:  "invalid integer value",
		},
		{
			name: "unknown variable",
			src:  "prompt \"a\" {\n text = \"x\"\n seed = base + 1\n}\n",
			msg:  "failed to evaluate expression",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(context.Background(), "test.hcl", []byte(tc.src), 0)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.msg)
			if tc.code != 0 {
				var ce *choice.Error
				require.ErrorAs(t, err, &ce)
				require.Equal(t, tc.code, ce.Code)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prompts.hcl")
	err := os.WriteFile(path, []byte(`prompt "p" { text = "{a|b}" }`), 0o600)
	require.NoError(t, err)

	prompts, err := Load(context.Background(), path, 5)
	require.NoError(t, err)
	require.Equal(t, []Prompt{{Name: "p", Text: "{a|b}", Seed: 5, Count: 1}}, prompts)

	_, err = Load(context.Background(), filepath.Join(t.TempDir(), "missing.hcl"), 0)
	require.Error(t, err)
}
