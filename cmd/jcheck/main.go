// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jcheck reports whether each of a set of files contains a single
// well-formed JSON value.
//
// Usage:
//
//	jcheck [flags] FILE...
//
// For each file, jcheck prints "ok" and a summary of the value, or the
// error that prevented it from being parsed. The exit status is 0 if all the
// files are valid, 1 if any file has a syntax error, 2 if any file could not
// be read, and 3 for a usage or configuration error.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/creachadair/jvalue"
	"github.com/creachadair/jvalue/cursor"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	exitOK     = 0
	exitSyntax = 1
	exitIO     = 2
	exitUsage  = 3
)

// flagValues holds the values of command-line flags.
type flagValues struct {
	config      string
	maxDepth    int
	maxDepthSet bool
	quiet       bool
	quietSet    bool
	logLevel    string
	path        string
	files       []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newApp(f *flagValues, stderr io.Writer) *kingpin.Application {
	app := kingpin.New("jcheck", "Check that files contain well-formed JSON.")
	app.ErrorWriter(stderr).UsageWriter(stderr)

	app.Flag("config", "Read settings from this YAML file.").
		PlaceHolder("FILE").StringVar(&f.config)
	app.Flag("max-depth", "Maximum nesting depth of arrays and objects (0 for the default).").
		Envar("JCHECK_MAX_DEPTH").IsSetByUser(&f.maxDepthSet).IntVar(&f.maxDepth)
	app.Flag("path", "Print the value at this dotted path (e.g., list.0.name) in each file.").
		PlaceHolder("PATH").StringVar(&f.path)
	app.Flag("quiet", "Report only files with errors.").
		Short('q').IsSetByUser(&f.quietSet).BoolVar(&f.quiet)
	app.Flag("log-level", "Log level for diagnostics.").
		EnumVar(&f.logLevel, "debug", "info", "warn", "error")
	app.Arg("file", "The files to check.").Required().StringsVar(&f.files)
	return app
}

func run(args []string, stdout, stderr io.Writer) int {
	var f flagValues
	app := newApp(&f, stderr)
	if _, err := app.Parse(args); err != nil {
		fmt.Fprintf(stderr, "jcheck: %v\n", err)
		return exitUsage
	}

	// A non-empty value from the environment counts as set.
	if os.Getenv("JCHECK_MAX_DEPTH") != "" {
		f.maxDepthSet = true
	}

	var cfg config
	if f.config != "" {
		var err error
		cfg, err = loadConfig(f.config)
		if err != nil {
			fmt.Fprintf(stderr, "jcheck: %v\n", err)
			return exitUsage
		}
	}
	cfg = cfg.override(&f)
	if err := cfg.validate(); err != nil {
		fmt.Fprintf(stderr, "jcheck: %v\n", err)
		return exitUsage
	}

	logger := newLogger(stderr, cfg.LogLevel)
	level.Debug(logger).Log("msg", "starting", "files", len(f.files),
		"max_depth", cfg.MaxDepth, "path", cfg.Path)

	c := &checker{
		opts:   jvalue.Options{MaxDepth: cfg.MaxDepth},
		path:   cursor.ParsePath(cfg.Path),
		quiet:  cfg.Quiet,
		out:    stdout,
		logger: logger,
	}
	status := exitOK
	var failed int
	for _, name := range f.files {
		if code := c.checkFile(name); code != exitOK {
			failed++
			status = max(status, code)
		}
	}
	level.Info(logger).Log("msg", "done", "files", len(f.files), "failed", failed)
	return status
}

// newLogger returns a logfmt logger on w that discards events below the
// named level.
func newLogger(w io.Writer, name string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, level.Allow(level.ParseDefault(name, level.InfoValue())))
	return log.With(logger, "ts", log.DefaultTimestampUTC)
}
