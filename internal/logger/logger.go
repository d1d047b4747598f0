/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the process-wide diagnostic logger.
// Diagnostics go to stderr so stdout stays free for generated CSS.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var (
	output io.Writer = os.Stderr
	level            = zerolog.WarnLevel
	logger           = newLogger(output, level)
)

func newLogger(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	console := zerolog.NewConsoleWriter()
	console.Out = w
	console.NoColor = true
	console.PartsExclude = []string{zerolog.TimestampFieldName}
	return zerolog.New(console).Level(lvl)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	output = w
	logger = newLogger(output, level)
}

// SetLevel sets the minimum level by name (debug, info, warn, error).
func SetLevel(name string) error {
	parsed, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return err
	}
	level = parsed
	logger = newLogger(output, level)
	return nil
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	logger.Warn().Msgf(format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logger.Info().Msgf(format, args...)
}

// Debug logs a debug message.
func Debug(format string, args ...any) {
	logger.Debug().Msgf(format, args...)
}
