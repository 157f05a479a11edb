package validate

import (
	"unicode"

	"github.com/sstlang/sst/ast"
)

// paraState is the validator's paragraph mode (§4.3), controlling how a
// Text pattern decides where to stop consuming characters.
type paraState int

const (
	paraNo paraState = iota
	paraStart
	paraInside
	paraEnd
)

// cursor is a mutable position over a slice of [ast.Item]s, plus a pending
// rune slice for a partially consumed text item and the current paragraph
// state. It is deliberately small and holds no owning state, so that
// [Choice]'s speculative alternatives can be tried against a plain copy
// (spec.md §9).
type cursor struct {
	items   []ast.Item
	pending []rune
	inPara  paraState
	curPos  ast.Pos
}

func newCursor(items []ast.Item, pos ast.Pos) cursor {
	return cursor{items: items, inPara: paraNo, curPos: pos}
}

// pos returns the cursor's current position.
func (c *cursor) pos() ast.Pos {
	return c.curPos
}

// peekChar returns the next character without consuming it.
func (c *cursor) peekChar() (rune, bool) {
	if c.inPara == paraEnd {
		return 0, false
	}

	if len(c.pending) > 0 {
		return c.pending[0], true
	}

	if len(c.items) > 0 && c.items[0].Kind == ast.Text {
		if r := []rune(c.items[0].Text); len(r) > 0 {
			return r[0], true
		}
	}

	return 0, false
}

// getChar consumes and returns the next character, advancing the current
// position as it goes.
func (c *cursor) getChar() (rune, bool) {
	if c.inPara == paraEnd {
		return 0, false
	}

	if len(c.pending) > 0 {
		ch := c.pending[0]
		c.pending = c.pending[1:]

		if ch == '\n' {
			c.curPos.Line++
			c.curPos.Column = 0
		} else {
			c.curPos.Column++
		}

		return ch, true
	}

	if len(c.items) > 0 && c.items[0].Kind == ast.Text {
		c.curPos = c.items[0].Pos
		r := []rune(c.items[0].Text)
		c.items = c.items[1:]

		if len(r) == 0 {
			return c.getChar()
		}

		c.pending = r[1:]

		return r[0], true
	}

	return 0, false
}

// skipWS consumes characters while they are whitespace.
func (c *cursor) skipWS() {
	for {
		ch, ok := c.peekChar()
		if !ok || !unicode.IsSpace(ch) {
			return
		}

		c.getChar()
	}
}

// getElement consumes and returns the next element whose tag matches,
// skipping whitespace-only items ahead of it. It refuses to skip past
// pending text that has non-whitespace characters still unconsumed.
func (c *cursor) getElement(tag string) (ast.Item, bool) {
	for _, r := range c.pending {
		if !unicode.IsSpace(r) {
			return ast.Item{}, false
		}
	}

	items := c.items
	for len(items) > 0 && items[0].IsWhitespace() {
		items = items[1:]
	}

	if len(items) > 0 && items[0].Kind == ast.ElementItem && items[0].Tag == tag {
		el := items[0]
		c.pending = nil
		c.items = items[1:]
		c.curPos = el.ElementPos

		return el, true
	}

	return ast.Item{}, false
}

// atEnd reports whether the cursor has no more input to offer, without
// skipping whitespace first.
func (c *cursor) atEnd() bool {
	return c.inPara == paraEnd || (len(c.items) == 0 && len(c.pending) == 0)
}

// atEndWS reports whether the cursor is at end of input once trailing
// whitespace is skipped, without mutating c.
func (c *cursor) atEndWS() bool {
	c2 := *c
	c2.skipWS()

	return c2.atEnd()
}
