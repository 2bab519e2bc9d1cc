/*
Command srepl provides an interactive command line tool (S.REPL) for
s-expressions. Every line entered is read as a single expression, and the
resulting tree is printed to the terminal. Lines which cannot be read are
answered with an error message, and S.REPL will prompt for the next line.

Usage:

    srepl [-trace Debug|Info|Error] [-config file] [-history file]
          [-maxdepth n] [-init file] [expression …]

An expression given on the command line is read before the prompt appears.
An init file is read line by line, every non-blank line holding one
expression. Settings may be kept in a TOML configuration file:

    prompt       = "srepl> "
    history_file = "/home/me/.srepl_history"
    trace_level  = "Info"
    max_depth    = 1000

Flags given on the command line take precedence over the configuration file.
Only lines which have been read successfully are kept in the history.
Quit with <ctrl>D.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sexp.repl'
func tracer() tracing.Trace {
	return tracing.Select("sexp.repl")
}
