package main

import (
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/sexp/parser"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI ("S.REPL"), where users may enter
// s-expressions. S.REPL will read each line and print out the resulting
// expression tree, or the reason why the line could not be read.
//
// Please refer to packages "expr" and "parser".
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.String("history", "", "History file")
	flag.Int("maxdepth", parser.DefaultMaxDepth, "Maximum nesting of lists, 0 for unlimited")
	initf := flag.String("init", "", "Initial load")
	conff := flag.String("config", "", "Configuration file (TOML)")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to S.REPL")    // colored welcome message
	//
	// collect settings: defaults < config file < flags
	conf, err := loadConfig(*conff)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(1)
	}
	if conf, err = overrideFromFlags(conf, flag.CommandLine); err != nil {
		tracer().Errorf("Invalid flag value: %v", err)
		os.Exit(1)
	}
	tracer().Infof("Trace level is %s", conf.TraceLevel)
	tracer().SetTraceLevel(traceLevel(conf.TraceLevel)) // now set the user supplied level
	input := strings.Join(flag.Args(), " ")
	input = strings.TrimSpace(input)
	tracer().Infof("Input argument is \"%s\"", input)
	//
	// set up REPL
	repl, err := readline.NewEx(&readline.Config{
		Prompt:                 conf.Prompt,
		HistoryFile:            conf.HistoryFile,
		DisableAutoSaveHistory: true, // only successfully read lines go to the history
	})
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := NewIntp(parser.New(parser.WithMaxDepth(conf.MaxDepth)))
	intp.repl = repl
	if input != "" {
		if _, err = intp.Read(input); err != nil {
			repl.Close()
			os.Exit(2)
		}
	}
	//
	// load an init file and start receiving s-expressions
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
