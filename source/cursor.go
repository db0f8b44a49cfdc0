package source

import (
	"regexp"
)

// Cursor is a read position in a Source.
// Cursor only moves forward: a successful TryMatch advances it, nothing moves it back.
type Cursor struct {
	source *Source
	pos    int
}

// NewCursor creates cursor positioned at the start of s.
func NewCursor(s *Source) *Cursor {
	return &Cursor{source: s}
}

func (c *Cursor) Source() *Source {
	return c.source
}

// Pos returns current byte offset, 0 <= offset <= source length.
func (c *Cursor) Pos() int {
	return c.pos
}

// SourcePos returns current position with line and column numbers.
func (c *Cursor) SourcePos() Pos {
	return NewPos(c.source, c.pos)
}

// IsEmpty reports whether the whole source has been consumed.
func (c *Cursor) IsEmpty() bool {
	return c.pos >= c.source.Len()
}

// Rest returns unconsumed part of the source.
func (c *Cursor) Rest() string {
	return c.source.Content()[c.pos:]
}

// TryMatch matches re at current position.
// On success returns matched text (possibly empty) and true, and advances position past the match.
// Returns "", false and leaves position unchanged if re does not match exactly at current position.
// re should be anchored (see Pattern), an unanchored expression is searched for in the whole rest of source.
func (c *Cursor) TryMatch(re *regexp.Regexp) (string, bool) {
	rest := c.Rest()
	loc := re.FindStringIndex(rest)
	if loc == nil || loc[0] != 0 {
		return "", false
	}

	c.pos += loc[1]
	return rest[:loc[1]], true
}

// Pattern compiles expr anchored at the start of text, so that TryMatch never scans ahead.
// Panics if expr is not a valid regular expression.
func Pattern(expr string) *regexp.Regexp {
	return regexp.MustCompile(`\A(?:` + expr + `)`)
}
