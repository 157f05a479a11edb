package parser

import (
	"unicode"

	"github.com/sstlang/sst/ast"
)

// state is the scanner over the source runes. It tracks the current line
// and column (in Unicode code points) and the shared filename pointer so
// every Pos it produces shares that pointer rather than copying the
// filename string.
type state struct {
	runes    []rune
	i        int
	line     int
	column   int
	filename *string
}

func newState(filename, src string) *state {
	s := &state{runes: []rune(src)}
	if filename != "" {
		s.filename = &filename
	}

	return s
}

// pos returns the scanner's current position.
func (s *state) pos() ast.Pos {
	return ast.Pos{Filename: s.filename, Line: s.line, Column: s.column}
}

// peek returns the next rune without consuming it, and false at EOF.
func (s *state) peek() (rune, bool) {
	if s.i >= len(s.runes) {
		return 0, false
	}

	return s.runes[s.i], true
}

// next consumes and returns the next rune, advancing line/column.
func (s *state) next() (rune, bool) {
	c, ok := s.peek()
	if !ok {
		return 0, false
	}

	s.i++

	if c == '\n' {
		s.line++
		s.column = 0
	} else {
		s.column++
	}

	return c, true
}

// eat consumes the next rune if f accepts it, otherwise returns a fatal
// *Error (UnexpectedChar or UnexpectedEOF) at the current position.
func (s *state) eat(f func(rune) bool) (rune, error) {
	c, ok := s.peek()
	if !ok {
		return 0, &Error{Kind: UnexpectedEOF, Pos: s.pos()}
	}

	if !f(c) {
		return 0, &Error{Kind: UnexpectedChar, Pos: s.pos(), Char: c}
	}

	s.next()

	return c, nil
}

func (s *state) skipWS() {
	for {
		c, ok := s.peek()
		if !ok || !isWhitespace(c) {
			return
		}

		s.next()
	}
}

func isWhitespace(c rune) bool {
	return unicode.IsSpace(c)
}
