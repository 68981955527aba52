// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log/level"
	"gopkg.in/yaml.v3"
)

// config holds the settings that may be given in a configuration file.
// Settings given on the command line take precedence.
type config struct {
	MaxDepth int    `yaml:"max_depth"`
	Quiet    bool   `yaml:"quiet"`
	LogLevel string `yaml:"log_level"`
	Path     string `yaml:"path"`
}

// loadConfig reads a YAML configuration from the named file. Unknown keys
// are reported as errors. An empty file yields a zero config.
func loadConfig(path string) (config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, err
	}
	var cfg config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return config{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return config{}, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

func (c config) validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative (got %d)", c.MaxDepth)
	}
	if c.LogLevel != "" {
		if _, err := level.Parse(c.LogLevel); err != nil {
			return fmt.Errorf("log_level %q: %w", c.LogLevel, err)
		}
	}
	return nil
}

// override returns a copy of c with the settings from flags that were set.
func (c config) override(f *flagValues) config {
	if f.maxDepthSet {
		c.MaxDepth = f.maxDepth
	}
	if f.quietSet {
		c.Quiet = f.quiet
	}
	if f.logLevel != "" {
		c.LogLevel = f.logLevel
	}
	if f.path != "" {
		c.Path = f.path
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	return c
}
