/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for tokencss.
package config

import (
	"time"

	"bennypowers.dev/tokencss/convert"
)

const (
	// DefaultInput is the document converted when no input is given.
	DefaultInput = "./export.json"

	// DefaultOutput is the stylesheet written when no output is given.
	DefaultOutput = "./design-tokens.css"

	// DefaultLogLevel is the minimum diagnostic level.
	DefaultLogLevel = "warn"

	// Stdout as an output path writes the stylesheet to standard output.
	Stdout = "-"
)

// Config represents the tokencss configuration.
type Config struct {
	// Input is the token document path, glob, or http(s) URL.
	Input string `yaml:"input" json:"input" mapstructure:"input"`

	// Output is the stylesheet path, or "-" for stdout.
	Output string `yaml:"output" json:"output" mapstructure:"output"`

	// Foundations is the top-level key of the themed foundations section.
	Foundations string `yaml:"foundations" json:"foundations" mapstructure:"foundations"`

	// Typography is the top-level key of the typography section.
	Typography string `yaml:"typography" json:"typography" mapstructure:"typography"`

	// TypographyMode is the typography mode emitted into :root.
	TypographyMode string `yaml:"typographyMode" json:"typographyMode" mapstructure:"typography-mode"`

	// Unit is appended to float values.
	Unit string `yaml:"unit" json:"unit" mapstructure:"unit"`

	// LogLevel is the minimum diagnostic level (debug, info, warn, error).
	LogLevel string `yaml:"logLevel" json:"logLevel" mapstructure:"log-level"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Input:          DefaultInput,
		Output:         DefaultOutput,
		Foundations:    convert.DefaultFoundationsSection,
		Typography:     convert.DefaultTypographySection,
		TypographyMode: convert.DefaultTypographyMode,
		Unit:           convert.DefaultUnit,
		LogLevel:       DefaultLogLevel,
	}
}

// WithDefaults returns a copy of c with every empty field set to its default.
func (c *Config) WithDefaults() *Config {
	d := Default()
	if c == nil {
		return d
	}
	out := *c
	if out.Input == "" {
		out.Input = d.Input
	}
	if out.Output == "" {
		out.Output = d.Output
	}
	if out.Foundations == "" {
		out.Foundations = d.Foundations
	}
	if out.Typography == "" {
		out.Typography = d.Typography
	}
	if out.TypographyMode == "" {
		out.TypographyMode = d.TypographyMode
	}
	if out.Unit == "" {
		out.Unit = d.Unit
	}
	if out.LogLevel == "" {
		out.LogLevel = d.LogLevel
	}
	return &out
}

// ConvertOptions returns convert.Options with configuration applied.
// A nil now uses the wall clock.
func (c *Config) ConvertOptions(now func() time.Time) convert.Options {
	cfg := c.WithDefaults()
	return convert.Options{
		FoundationsSection: cfg.Foundations,
		TypographySection:  cfg.Typography,
		TypographyMode:     cfg.TypographyMode,
		Unit:               cfg.Unit,
		Now:                now,
	}
}

// WritesToStdout reports whether the output path selects standard output.
func (c *Config) WritesToStdout() bool {
	return c != nil && c.Output == Stdout
}
