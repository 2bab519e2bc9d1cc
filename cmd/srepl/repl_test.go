package main

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sexp/expr"
	"github.com/npillmayer/sexp/parser"
)

func TestLeveledList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sexp.repl")
	defer teardown()
	//
	e := expr.NewList(expr.Identifier("a"), expr.NewList(expr.StringLiteral("b")), expr.NewList())
	ll := leveledList(e)
	expected := []struct {
		level int
		text  string
	}{
		{0, "List (3)"},
		{1, `Identifier("a")`},
		{1, "List (1)"},
		{2, `StringLiteral("b")`},
		{1, "()"},
	}
	if len(ll) != len(expected) {
		t.Fatalf("expected %d items, have %d", len(expected), len(ll))
	}
	for i, item := range ll {
		if item.Level != expected[i].level || item.Text != expected[i].text {
			t.Errorf("item #%d: expected %d/%s, have %d/%s", i,
				expected[i].level, expected[i].text, item.Level, item.Text)
		}
	}
}

func TestRead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sexp.repl")
	defer teardown()
	//
	intp := NewIntp(nil)
	e, err := intp.Read("(a (b c) d)")
	if err != nil {
		t.Fatal(err)
	}
	if !expr.Equal(e, intp.lastValue) || intp.lastInput != "(a (b c) d)" {
		t.Errorf("expected interpreter to remember last input")
	}
	if _, err = intp.Read("(a"); err == nil {
		t.Errorf("expected error for unterminated list")
	}
	if intp.lastInput != "(a (b c) d)" {
		t.Errorf("expected failed read to leave last input untouched")
	}
}

func TestLoadInitFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sexp.repl")
	defer teardown()
	//
	filename := filepath.Join(t.TempDir(), "init.sexp")
	content := "(a b)\n\n   \n\"hello\"\n(unterminated\nabc123\nx\n"
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	intp := NewIntp(parser.New())
	ok, failed := intp.loadInitFile(filename)
	if ok != 3 || failed != 2 {
		t.Errorf("expected 3 lines ok and 2 in error, have %d/%d", ok, failed)
	}
	if ok, failed = intp.loadInitFile(filepath.Join(t.TempDir(), "missing")); ok+failed != 0 {
		t.Errorf("expected missing init file to be skipped")
	}
}

func TestLoadConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sexp.repl")
	defer teardown()
	//
	conf, err := loadConfig("")
	if err != nil || conf != defaultConfig() {
		t.Errorf("expected defaults for empty config path")
	}
	filename := filepath.Join(t.TempDir(), "srepl.toml")
	content := "prompt = \"> \"\nmax_depth = 7\n"
	if err = os.WriteFile(filename, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	conf, err = loadConfig(filename)
	if err != nil {
		t.Fatal(err)
	}
	if conf.Prompt != "> " || conf.MaxDepth != 7 || conf.TraceLevel != "Info" {
		t.Errorf("unexpected configuration %+v", conf)
	}
	if _, err = loadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("expected error for missing configuration file")
	}
}

func TestOverrideFromFlags(t *testing.T) {
	fs := flag.NewFlagSet("srepl", flag.ContinueOnError)
	fs.String("trace", "Info", "")
	fs.String("history", "", "")
	fs.Int("maxdepth", parser.DefaultMaxDepth, "")
	if err := fs.Parse([]string{"-maxdepth", "0", "-trace", "Debug"}); err != nil {
		t.Fatal(err)
	}
	conf := defaultConfig()
	conf.HistoryFile = "from-config"
	conf, err := overrideFromFlags(conf, fs)
	if err != nil {
		t.Fatal(err)
	}
	if conf.MaxDepth != 0 || conf.TraceLevel != "Debug" || conf.HistoryFile != "from-config" {
		t.Errorf("unexpected configuration %+v", conf)
	}
}

func TestREPLHistory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sexp.repl")
	defer teardown()
	//
	histfile := filepath.Join(t.TempDir(), "history")
	session := "(a)\n(b\n\n   \n\"x\"\nabc123\n"
	repl, err := readline.NewEx(&readline.Config{
		Prompt:                 "srepl> ",
		HistoryFile:            histfile,
		DisableAutoSaveHistory: true,
		Stdin:                  io.NopCloser(strings.NewReader(session)),
		Stdout:                 io.Discard,
		Stderr:                 io.Discard,
		FuncIsTerminal:         func() bool { return false },
		FuncMakeRaw:            func() error { return nil },
		FuncExitRaw:            func() error { return nil },
	})
	if err != nil {
		t.Fatal(err)
	}
	defer repl.Close()
	intp := NewIntp(parser.New())
	intp.repl = repl
	var out bytes.Buffer
	intp.out = &out
	intp.REPL()
	if !strings.Contains(out.String(), "Good bye!") {
		t.Errorf("expected farewell at end of session, have %q", out.String())
	}
	content, err := os.ReadFile(histfile)
	if err != nil {
		t.Fatal(err)
	}
	var history []string
	for _, line := range strings.Split(string(content), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			history = append(history, line)
		}
	}
	if len(history) != 2 || history[0] != "(a)" || history[1] != `"x"` {
		t.Errorf("expected history to hold (a) and \"x\", has %q", history)
	}
	if intp.lastInput != `"x"` {
		t.Errorf("expected last input to be \"x\", is %q", intp.lastInput)
	}
}
