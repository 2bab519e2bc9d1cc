/*
Package sexp is a reader for a minimal Lisp-like notation.

The notation knows three kinds of forms: parenthesized lists, bare identifiers
made of ASCII letters, and double-quoted string literals. Scanning and parsing
are fused into a single recursive descent, driven by one character of
lookahead. Package structure is as follows:

■ expr: Package expr implements the expression tree produced by the reader,
together with rendering and tree walking.

■ parser: Package parser implements the recursive-descent reader, including
position tracking for diagnostics.

■ cmd/srepl: S.REPL is an interactive command line tool which reads lines from
a terminal and prints the resulting trees.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sexp
