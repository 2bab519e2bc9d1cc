package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/sexp/expr"
	"github.com/npillmayer/sexp/parser"
)

// Intp is our interpreter object. It does not evaluate anything, but reads
// and prints.
type Intp struct {
	lastInput string
	lastValue expr.Expr
	parser    *parser.Parser
	repl      *readline.Instance
	out       io.Writer // for session messages
}

// NewIntp creates an interpreter reading with p.
func NewIntp(p *parser.Parser) *Intp {
	if p == nil {
		p = parser.New()
	}
	return &Intp{parser: p, out: os.Stdout}
}

// loadInitFile reads an init file line by line. Every line which is not blank
// has to hold a single expression. Returns the number of lines read
// successfully and the number of lines in error.
func (intp *Intp) loadInitFile(filename string) (ok int, failed int) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if _, err := intp.Read(line); err != nil {
			tracer().Errorf("Error line %d: %s", lineno, err.Error())
			failed++
			continue
		}
		ok++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
	tracer().Infof("Init file %s: %d expressions read, %d in error", filename, ok, failed)
	return
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if _, err = intp.Read(line); err != nil {
			continue
		}
		if err = intp.repl.SaveHistory(line); err != nil {
			tracer().Errorf("Cannot save history: %v", err)
		}
	}
	fmt.Fprintln(intp.out, "Good bye!")
}

// Read reads an s-expression, given on a line by itself, and prints the
// resulting tree. Errors are printed as well, and returned to the caller.
//
func (intp *Intp) Read(line string) (expr.Expr, error) {
	tracer().Debugf("----------------------- Read -------------------------------------")
	e, err := intp.parser.Parse(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return nil, err
	}
	intp.lastInput = line
	intp.lastValue = e
	tracer().Debugf("-------------------------- Output --------------------------------")
	intp.printResult(e)
	return e, nil
}

func (intp *Intp) printResult(e expr.Expr) {
	pterm.Info.Println(e.GoString())
	tracer().Debugf("expression has %d nodes", expr.Count(e))
	if _, ok := e.(expr.List); !ok {
		return // atoms need no tree
	}
	root := pterm.NewTreeFromLeveledList(leveledList(e))
	pterm.DefaultTree.WithRoot(root).Render()
}

// leveledList flattens an expression tree into a leveled list, as needed for
// pterm's tree printer.
func leveledList(e expr.Expr) pterm.LeveledList {
	ll := pterm.LeveledList{}
	expr.Walk(e, func(node expr.Expr, level int) bool {
		ll = append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  nodeLabel(node),
		})
		return true
	})
	tracer().Debugf("|ll| = %d", len(ll))
	return ll
}

func nodeLabel(node expr.Expr) string {
	switch n := node.(type) {
	case expr.List:
		if n.Len() == 0 {
			return "()"
		}
		return fmt.Sprintf("List (%d)", n.Len())
	case nil:
		return "Noop"
	}
	return node.GoString()
}
