/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package logger

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerRespectsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		require.NoError(t, SetLevel("warn"))
	})

	require.NoError(t, SetLevel("warn"))
	Debug("hidden %d", 1)
	Info("hidden too")
	require.Empty(t, buf.String())

	Warn("duplicate declaration %s", "--spacing-sm")
	require.Contains(t, buf.String(), "WRN")
	require.Contains(t, buf.String(), "duplicate declaration --spacing-sm")
}

func TestLoggerDebugLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		require.NoError(t, SetLevel("warn"))
	})

	require.NoError(t, SetLevel("DEBUG"))
	Debug("entering %s", "root-scope")
	require.Contains(t, buf.String(), "entering root-scope")
}

func TestSetLevelRejectsUnknown(t *testing.T) {
	SetOutput(io.Discard)
	t.Cleanup(func() { SetOutput(os.Stderr) })

	require.Error(t, SetLevel("chatty"))
}
