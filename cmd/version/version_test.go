/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommand(format string) (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.Flags().String("format", format, "")
	cmd.SetOut(&out)
	return cmd, &out
}

func TestRun_Text(t *testing.T) {
	cmd, out := newCommand("text")
	require.NoError(t, run(cmd, nil))
	assert.True(t, strings.HasPrefix(out.String(), "tokencss "), out.String())
}

func TestRun_JSON(t *testing.T) {
	cmd, out := newCommand("json")
	require.NoError(t, run(cmd, nil))

	var info map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	assert.Equal(t, "tokencss", info["name"])
	assert.NotEmpty(t, info["version"])
}
