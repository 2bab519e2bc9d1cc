package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/sexp/parser"
)

// Config holds the settings of a S.REPL session.
type Config struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
	TraceLevel  string `toml:"trace_level"`
	MaxDepth    int    `toml:"max_depth"`
}

func defaultConfig() Config {
	return Config{
		Prompt:     "srepl> ",
		TraceLevel: "Info",
		MaxDepth:   parser.DefaultMaxDepth,
	}
}

// loadConfig reads a TOML configuration file. Settings missing from the
// file keep their default values. An empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	conf := defaultConfig()
	if path == "" {
		return conf, nil
	}
	md, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return conf, fmt.Errorf("cannot read configuration %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		tracer().Errorf("Unknown configuration key %q in %s", key.String(), path)
	}
	return conf, nil
}

// overrideFromFlags replaces settings with the values of flags which have
// been set explicitly on the command line.
func overrideFromFlags(conf Config, fs *flag.FlagSet) (Config, error) {
	var err error
	fs.Visit(func(f *flag.Flag) {
		value := f.Value.String()
		switch f.Name {
		case "trace":
			conf.TraceLevel = value
		case "history":
			conf.HistoryFile = value
		case "maxdepth":
			var depth int
			if depth, err = strconv.Atoi(value); err == nil {
				conf.MaxDepth = depth
			}
		}
	})
	return conf, err
}
