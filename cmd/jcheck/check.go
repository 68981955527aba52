// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/creachadair/jvalue"
	"github.com/creachadair/jvalue/cursor"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var (
	okLabel    = color.New(color.FgGreen, color.Bold).SprintFunc()
	failLabel  = color.New(color.FgRed, color.Bold).SprintFunc()
	errorLabel = color.New(color.FgYellow, color.Bold).SprintFunc()
)

// A checker parses files and reports the results.
type checker struct {
	opts   jvalue.Options
	path   []any // if non-empty, print the value at this path
	quiet  bool
	out    io.Writer
	logger log.Logger
}

// checkFile parses the named file and reports the result, returning the exit
// status for the file.
func (c *checker) checkFile(name string) int {
	level.Debug(c.logger).Log("msg", "checking file", "file", name)
	v, err := c.opts.ParseFile(name)
	if err != nil {
		var ioerr *jvalue.IOError
		if errors.As(err, &ioerr) {
			level.Error(c.logger).Log("msg", "cannot read file", "file", name, "err", ioerr.Err)
			fmt.Fprintf(c.out, "%s %s: %v\n", errorLabel("ERROR"), name, err)
			return exitIO
		}
		level.Debug(c.logger).Log("msg", "invalid JSON", "file", name, "kind", jvalue.KindOf(err))
		fmt.Fprintf(c.out, "%s %s: %v\n", failLabel("FAIL"), name, err)
		return exitSyntax
	}

	if len(c.path) != 0 {
		sel, err := cursor.Path(v, c.path...)
		if err != nil {
			level.Warn(c.logger).Log("msg", "path not found", "file", name, "err", err)
			fmt.Fprintf(c.out, "%s %s: path: %v\n", failLabel("FAIL"), name, err)
			return exitSyntax
		}
		fmt.Fprintf(c.out, "%s: %s\n", name, sel)
	}
	if !c.quiet {
		fmt.Fprintf(c.out, "%s %s (%s; %s)\n", okLabel("ok"), name, fileSize(name), summarize(v))
	}
	return exitOK
}

func fileSize(name string) string {
	fi, err := os.Stat(name)
	if err != nil {
		return "size unknown"
	}
	return humanize.Bytes(uint64(fi.Size()))
}

// countKinds reports the number of values of each kind in v, including v
// itself.
func countKinds(v jvalue.Value) map[jvalue.Kind]int {
	counts := make(map[jvalue.Kind]int)
	var walk func(jvalue.Value)
	walk = func(v jvalue.Value) {
		counts[v.Kind()]++
		switch v.Kind() {
		case jvalue.KindArray:
			for _, elt := range v.Elements() {
				walk(elt)
			}
		case jvalue.KindObject:
			for _, m := range v.Members() {
				walk(m)
			}
		}
	}
	walk(v)
	return counts
}

var allKinds = []jvalue.Kind{
	jvalue.KindObject, jvalue.KindArray, jvalue.KindString,
	jvalue.KindNumber, jvalue.KindBool, jvalue.KindNull,
}

// summarize renders the kind counts of v, e.g., "2 object, 7 number".
func summarize(v jvalue.Value) string {
	counts := countKinds(v)
	var parts []string
	for _, k := range allKinds {
		if n := counts[k]; n > 0 {
			parts = append(parts, humanize.Comma(int64(n))+" "+k.String())
		}
	}
	return strings.Join(parts, ", ")
}
