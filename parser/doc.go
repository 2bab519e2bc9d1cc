/*
Package parser provides a reader for s-expressions.

The grammar is small enough to do without a separate tokenizer. Scanning and
parsing are fused into a recursive descent, which dispatches on a single
character of lookahead:

    Expr        ::=  ε  |  List  |  String  |  Identifier
    List        ::=  '(' Expr* ')'
    String      ::=  '"' [^"]* '"'
    Identifier  ::=  [a-zA-Z]+

Whitespace (space, tab, newline, form feed, carriage return) separates list
elements and may precede an expression. An input has to consist of exactly one
expression: any character left over after it, including whitespace, is an
error. Input consisting of whitespace only yields expr.Noop.

The reader tracks line and column of every character it consumes, and reports
the position of the first problem it detects. There is no error recovery.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sexp.parser'
func tracer() tracing.Trace {
	return tracing.Select("sexp.parser")
}
