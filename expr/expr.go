package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// Expr is the type of all nodes of an expression tree.
// The set of implementations is closed: Noop, List, Identifier and StringLiteral.
type Expr interface {
	String() string   // surface syntax
	GoString() string // debug notation
	isExpr()
}

// Noop is the empty expression.
type Noop struct{}

// List is a parenthesized sequence of expressions.
type List []Expr

// Identifier is a run of ASCII letters.
type Identifier string

// StringLiteral holds the raw characters between a pair of double quotes.
type StringLiteral string

var _ Expr = Noop{}
var _ Expr = List{}
var _ Expr = Identifier("")
var _ Expr = StringLiteral("")

func (Noop) isExpr()          {}
func (List) isExpr()          {}
func (Identifier) isExpr()    {}
func (StringLiteral) isExpr() {}

// NewList creates a list from a sequence of expressions.
// The result is never nil, even for zero elements.
func NewList(elems ...Expr) List {
	l := make(List, len(elems))
	copy(l, elems)
	return l
}

// Len returns the number of elements of l.
func (l List) Len() int {
	return len(l)
}

// --- Rendering -------------------------------------------------------------

func (Noop) String() string {
	return ""
}

func (l List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, e := range l {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(stringOf(e))
	}
	b.WriteByte(')')
	return b.String()
}

func (id Identifier) String() string {
	return string(id)
}

func (s StringLiteral) String() string {
	return `"` + string(s) + `"`
}

func (Noop) GoString() string {
	return "Noop"
}

func (l List) GoString() string {
	var b strings.Builder
	b.WriteString("List([")
	for i, e := range l {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(goStringOf(e))
	}
	b.WriteString("])")
	return b.String()
}

func (id Identifier) GoString() string {
	return fmt.Sprintf("Identifier(%q)", string(id))
}

func (s StringLiteral) GoString() string {
	return fmt.Sprintf("StringLiteral(%q)", string(s))
}

// a nil element inside a list is rendered like Noop
func stringOf(e Expr) string {
	if e == nil {
		return ""
	}
	return e.String()
}

func goStringOf(e Expr) string {
	if e == nil {
		return "Noop"
	}
	return e.GoString()
}

// --- Comparison ------------------------------------------------------------

// Equal reports whether two expression trees are structurally equal.
// A nil list and an empty list are considered equal, as are a nil Expr and Noop.
func Equal(a, b Expr) bool {
	if a == nil {
		a = Noop{}
	}
	if b == nil {
		b = Noop{}
	}
	switch x := a.(type) {
	case Noop:
		_, ok := b.(Noop)
		return ok
	case List:
		y, ok := b.(List)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Identifier:
		y, ok := b.(Identifier)
		return ok && x == y
	case StringLiteral:
		y, ok := b.(StringLiteral)
		return ok && x == y
	}
	return false
}
