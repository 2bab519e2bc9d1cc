package parser

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"io"
	"strings"

	"github.com/npillmayer/sexp"
)

// cursor moves over the characters of an input, one at a time, with a
// lookahead of one character. It tracks the position of the next character
// to be consumed.
type cursor struct {
	reader io.RuneReader
	next   rune // lookahead, valid if peeked and not at EOF
	isEOF  bool
	peeked bool
	pos    sexp.Position
}

func newCursor(input string) *cursor {
	return &cursor{
		reader: strings.NewReader(input),
		pos:    sexp.StartPosition(),
	}
}

// peek returns the next character without consuming it.
// At end of input, ok is false.
func (c *cursor) peek() (r rune, ok bool) {
	if !c.peeked {
		c.lookahead()
	}
	return c.next, !c.isEOF
}

func (c *cursor) lookahead() {
	c.peeked = true
	r, _, err := c.reader.ReadRune()
	if err != nil { // strings.Reader reports nothing but io.EOF
		c.isEOF = true
		c.next = 0
		return
	}
	c.next = r
}

// match consumes the next character and advances the position. All reading
// has to go through match, otherwise positions will be off.
// At end of input, nothing changes and ok is false.
func (c *cursor) match() (r rune, ok bool) {
	if r, ok = c.peek(); !ok {
		return 0, false
	}
	c.peeked = false
	c.pos = c.pos.Advance(r)
	return r, true
}

// position returns the position of the next character to be consumed.
func (c *cursor) position() sexp.Position {
	return c.pos
}

// --- Character classes -----------------------------------------------------

// isSpace is true for ASCII whitespace: space, tab, newline, form feed and
// carriage return. Vertical tab is not whitespace.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}
