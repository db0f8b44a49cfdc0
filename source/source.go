// Package source defines source text and the cursor used by the parser.
package source

import (
	"strings"
	"unicode/utf8"
)

// Source is a named immutable text.
// Source caches the last line lookup, so it is not safe for concurrent use.
type Source struct {
	name          string
	content       string
	lineStarts    []int
	prevLineIndex int
}

// New creates new Source. name may be empty, it is used in error messages only.
func New(name, content string) *Source {
	s := &Source{name: name, content: content, prevLineIndex: -1}
	lineCnt := strings.Count(content, "\n") + 1
	s.lineStarts = make([]int, lineCnt)
	j := 1
	for i := 0; i < len(content) && j < lineCnt; i++ {
		if content[i] == '\n' {
			s.lineStarts[j] = i + 1
			j++
		}
	}

	return s
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() string {
	return s.content
}

func (s *Source) Len() int {
	return len(s.content)
}

// LineCol converts byte offset to 1-based line and column numbers, columns are counted in runes.
// Offsets outside of source are clamped.
func (s *Source) LineCol(pos int) (line, col int) {
	var lineIndex int
	if pos < 0 {
		pos = 0
		lineIndex = 0
	} else if pos >= len(s.content) {
		pos = len(s.content)
		lineIndex = len(s.lineStarts) - 1
	} else {
		lineIndex = s.findLineIndex(pos)
	}

	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCountInString(s.content[lineStart:pos]) + 1
}

func (s *Source) findLineIndex(pos int) int {
	if s.prevLineIndex >= 0 && s.lineStarts[s.prevLineIndex] <= pos {
		lineIndex := s.prevLineIndex
		last := len(s.lineStarts) - 1
		for lineIndex <= last && s.lineStarts[lineIndex] <= pos {
			lineIndex++
		}
		lineIndex--
		s.prevLineIndex = lineIndex
		return lineIndex
	}

	leftIndex := 0
	rightIndex := len(s.lineStarts) - 1
	if s.prevLineIndex >= 0 {
		rightIndex = s.prevLineIndex
	}
	for leftIndex < rightIndex {
		index := (leftIndex + rightIndex + 1) >> 1
		if s.lineStarts[index] <= pos {
			leftIndex = index
		} else {
			rightIndex = index - 1
		}
	}
	s.prevLineIndex = leftIndex
	return leftIndex
}

// Pos is a position in source text, it implements choice.SourcePos.
type Pos struct {
	src            *Source
	pos, line, col int
}

// NewPos creates position for byte offset in s.
func NewPos(s *Source, pos int) Pos {
	line, col := s.LineCol(pos)
	return Pos{s, pos, line, col}
}

func (p Pos) Source() *Source {
	return p.src
}

func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.Name()
}

func (p Pos) Pos() int {
	return p.pos
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}
