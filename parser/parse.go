package parser

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/sexp/expr"
)

// DefaultMaxDepth is the default limit for the nesting of lists.
const DefaultMaxDepth = 1000

// Parser is a configured s-expression reader. A Parser holds no state between
// calls to Parse and may be used from multiple goroutines at once.
type Parser struct {
	maxDepth int
}

// Option configures a parser.
type Option func(p *Parser)

// WithMaxDepth limits the nesting of lists to depth levels. Inputs nested
// deeper are rejected with an error. A limit of zero or less switches the
// check off, leaving deep nesting to exhaust the goroutine stack.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// New creates a parser.
func New(opts ...Option) *Parser {
	p := &Parser{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads a single expression from code, using a parser configured with opts.
// It returns either the expression or an error of type *ParseError.
func Parse(code string, opts ...Option) (expr.Expr, error) {
	return New(opts...).Parse(code)
}

// Parse reads a single expression from code. Leading whitespace is skipped;
// any character following the expression is an error. Blank input results in
// expr.Noop.
//
// On failure the returned error is a *ParseError describing the first problem
// found in the input.
func (p *Parser) Parse(code string) (expr.Expr, error) {
	tracer().Debugf("parse %q", code)
	r := &reader{
		cur:      newCursor(code),
		maxDepth: p.maxDepth,
	}
	e, err := r.parseExpr()
	if err != nil {
		tracer().Debugf("parse error: %v", err)
		return nil, err
	}
	if c, ok := r.cur.match(); ok {
		tracer().Debugf("trailing character %q at %s", c, r.cur.position())
		return nil, trailingCharError(c)
	}
	return e, nil
}

// --- Recursive descent -----------------------------------------------------

// reader holds the state of a single parse run.
type reader struct {
	cur      *cursor
	depth    int // current nesting of lists
	maxDepth int
}

func (r *reader) error(reason string) *ParseError {
	return errorAt(r.cur.position(), reason)
}

func (r *reader) skipWhitespace() {
	for {
		c, ok := r.cur.peek()
		if !ok || !isSpace(c) {
			return
		}
		r.cur.match()
	}
}

func (r *reader) parseExpr() (expr.Expr, error) {
	r.skipWhitespace()
	c, ok := r.cur.peek()
	switch {
	case !ok:
		return expr.Noop{}, nil
	case c == '(':
		return r.parseList()
	case c == '"':
		return r.parseStringLiteral()
	case isLetter(c):
		return r.parseIdentifier()
	}
	return nil, r.error(fmt.Sprintf("unexpected char %q in expression", c))
}

func (r *reader) parseIdentifier() (expr.Expr, error) {
	c, ok := r.cur.match()
	if !ok {
		return nil, r.error("no identifier")
	}
	if !isLetter(c) {
		return nil, r.error(fmt.Sprintf("Identifier can't start with %q", c))
	}
	ident := []rune{c}
	for {
		c, ok = r.cur.peek()
		if !ok || !isLetter(c) {
			return expr.Identifier(ident), nil
		}
		r.cur.match()
		ident = append(ident, c)
	}
}

func (r *reader) parseStringLiteral() (expr.Expr, error) {
	if c, _ := r.cur.match(); c != '"' {
		panic("string literal should start with a double quote")
	}
	var s []rune
	for {
		c, ok := r.cur.match()
		if !ok {
			return nil, r.error("Unterminated string literal")
		}
		if c == '"' {
			return expr.StringLiteral(s), nil
		}
		s = append(s, c)
	}
}

func (r *reader) parseList() (expr.Expr, error) {
	if c, ok := r.cur.match(); !ok || c != '(' {
		return nil, r.error("list has to start with '('")
	}
	r.depth++
	defer func() { r.depth-- }()
	if r.maxDepth > 0 && r.depth > r.maxDepth {
		return nil, r.error(fmt.Sprintf("maximum nesting depth %d exceeded", r.maxDepth))
	}
	contents := expr.List{}
	for {
		r.skipWhitespace()
		c, ok := r.cur.peek()
		if !ok {
			return nil, r.error("Unterminated list")
		}
		if c == ')' {
			r.cur.match()
			return contents, nil
		}
		inner, err := r.parseExpr()
		if err != nil {
			return nil, err
		}
		contents = append(contents, inner)
	}
}
