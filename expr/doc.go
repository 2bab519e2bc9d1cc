/*
Package expr implements the expression tree produced by the s-expression reader.

Expressions form a homogenous tree in a Lisp-like fashion, but without CONS
cells: a list simply owns a slice of its elements. There are four kinds of
nodes:

    Noop            the empty expression (input was empty or blank)
    List            ( e1 e2 … )
    Identifier      abc
    StringLiteral   "raw text"

Trees never share nodes and never contain cycles. Every expression renders
back to surface syntax with String(), and to a debugging notation with
GoString(), i.e. when printed with %#v:

    List([Identifier("a"), StringLiteral("b")])

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sexp.expr'.
func tracer() tracing.Trace {
	return tracing.Select("sexp.expr")
}
