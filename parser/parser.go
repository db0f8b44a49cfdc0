// Package parser defines recursive-descent parser expanding choice groups.
//
// Grammar:
//
//	run           = {escape | group | comment | literal-chunk};
//	escape        = "\", any-char;
//	group         = "{", run, {"|", run}, "}";
//	comment       = "//", up-to-newline-or-eoi | "/*", up-to-"*/";
//	literal-chunk = one or more chars except "\", "{", "}", "|", "/";
//
// Escapes \{, \|, \}, and \/ produce the escaped char, all other escapes are kept as is.
// Line comment is replaced with a newline, block comment is replaced with a space.
package parser

import (
	"strings"

	"github.com/ava12/choice/source"
)

var (
	backslashRe    = source.Pattern(`\\`)
	escapedMetaRe  = source.Pattern(`[{|}/]`)
	anyCharRe      = source.Pattern(`(?s:.)`)
	groupOpenRe    = source.Pattern(`\{`)
	separatorRe    = source.Pattern(`\|`)
	groupCloseRe   = source.Pattern(`\}`)
	slashRe        = source.Pattern(`/`)
	starRe         = source.Pattern(`\*`)
	lineCommentRe  = source.Pattern(`[^\n]*(?:\n|$)`)
	blockCommentRe = source.Pattern(`(?s:.*?)\*/`)
	literalRe      = source.Pattern(`[^\\{}|/]+`)
)

// Options control parser behavior, zero value is usable.
type Options struct {
	// MaxDepth limits nesting of choice groups, 0 means no limit.
	MaxDepth int

	// StripOnly makes parser remove comments only.
	// Choice groups and escapes are written back unchanged and no selections are made.
	StripOnly bool
}

// Parser is immutable and safe for concurrent use, each Parse call owns its cursor and selector.
type Parser struct {
	opts Options
}

func New(opts Options) *Parser {
	return &Parser{opts}
}

// Parse expands all choice groups of src using sel and returns resulting text.
// All alternatives of every group are parsed, so sel is called once for every group in src
// regardless of which alternatives get selected.
// Returns *choice.Error if src is malformed, no partial result is returned.
func (p *Parser) Parse(src *source.Source, sel Selector) (result string, e error) {
	pc := &parseContext{
		opts:     p.opts,
		cursor:   source.NewCursor(src),
		selector: sel,
	}

	defer func() {
		if r := recover(); r != nil {
			result = ""
			e = logicError(pc.cursor.SourcePos(), "%v", r)
		}
	}()

	result, e = pc.parseText()
	if e == nil && !pc.cursor.IsEmpty() {
		e = trailingTextError(pc.cursor.SourcePos())
	}
	if e != nil {
		return "", e
	}

	return result, nil
}

// Parse expands text with selector seeded with seed using default options.
func Parse(text string, seed int64) (string, error) {
	return New(Options{}).Parse(source.New("", text), NewSelector(seed))
}

type parseContext struct {
	opts     Options
	cursor   *source.Cursor
	selector Selector
	depth    int
}

// parseText stops at the first char that cannot start a text run: |, }, or end of input.
// This char is not consumed.
func (pc *parseContext) parseText() (string, error) {
	var out strings.Builder
	c := pc.cursor

	for {
		start := c.Pos()

		if _, f := c.TryMatch(backslashRe); f {
			if m, f := c.TryMatch(escapedMetaRe); f {
				if pc.opts.StripOnly {
					out.WriteByte('\\')
				}
				out.WriteString(m)
			} else if m, f := c.TryMatch(anyCharRe); f {
				out.WriteByte('\\')
				out.WriteString(m)
			} else {
				return "", unexpectedEoiError(pc.sourcePos(start))
			}

		} else if _, f := c.TryMatch(groupOpenRe); f {
			chosen, e := pc.parseChoice(start)
			if e != nil {
				return "", e
			}
			out.WriteString(chosen)

		} else if _, f := c.TryMatch(slashRe); f {
			if _, f := c.TryMatch(slashRe); f {
				if _, f := c.TryMatch(lineCommentRe); !f {
					return "", logicError(pc.sourcePos(start), "line comment does not end")
				}
				out.WriteByte('\n')
			} else if _, f := c.TryMatch(starRe); f {
				if _, f := c.TryMatch(blockCommentRe); !f {
					return "", unterminatedCommentError(pc.sourcePos(start))
				}
				out.WriteByte(' ')
			} else {
				out.WriteByte('/')
			}

		} else if m, f := c.TryMatch(literalRe); f {
			out.WriteString(m)

		} else {
			break
		}
	}

	return out.String(), nil
}

// parseChoice is called after opening brace is consumed, start is the offset of that brace.
func (pc *parseContext) parseChoice(start int) (string, error) {
	pc.depth++
	defer func() { pc.depth-- }()
	if pc.opts.MaxDepth > 0 && pc.depth > pc.opts.MaxDepth {
		return "", depthExceededError(pc.sourcePos(start), pc.opts.MaxDepth)
	}

	var options []string
	for {
		text, e := pc.parseText()
		if e != nil {
			return "", e
		}

		options = append(options, text)
		if _, f := pc.cursor.TryMatch(separatorRe); f {
			continue
		}
		if _, f := pc.cursor.TryMatch(groupCloseRe); f {
			break
		}
		return "", expectedSeparatorError(pc.cursor.SourcePos())
	}

	if pc.opts.StripOnly {
		return "{" + strings.Join(options, "|") + "}", nil
	}

	return pc.choose(start, options)
}

func (pc *parseContext) choose(start int, options []string) (string, error) {
	if len(options) == 0 {
		return "", logicError(pc.sourcePos(start), "choice group has no alternatives")
	}

	index := pc.selector.Select(len(options))
	if index < 0 || index >= len(options) {
		return "", logicError(pc.sourcePos(start), "selected alternative %d of %d", index, len(options))
	}

	return options[index], nil
}

func (pc *parseContext) sourcePos(offset int) source.Pos {
	return source.NewPos(pc.cursor.Source(), offset)
}
