/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokencss/config"
	"bennypowers.dev/tokencss/internal/mapfs"
	"bennypowers.dev/tokencss/testutil"
)

func fixedClock() time.Time {
	return time.Date(2026, 1, 2, 3, 4, 5, 6_000_000, time.UTC)
}

func testCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(&out)
	return cmd, &out
}

func TestConvertTo_File(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/convert/full", "/")
	cmd, out := testCommand()

	cfg := (&config.Config{Output: "dist/tokens.css"}).WithDefaults()
	require.NoError(t, convertTo(cmd, mfs, cfg, fixedClock))

	got, err := mfs.ReadFile("dist/tokens.css")
	require.NoError(t, err)
	expected := testutil.LoadFixtureFile(t, "fixtures/convert/full/expected.css")
	assert.Equal(t, string(expected), string(got))
	assert.Equal(t, "Design tokens CSS generated successfully in dist/tokens.css\n", out.String())
}

func TestConvertTo_Stdout(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/convert/foundations-only", "/")
	cmd, out := testCommand()

	cfg := (&config.Config{Output: config.Stdout}).WithDefaults()
	require.NoError(t, convertTo(cmd, mfs, cfg, fixedClock))

	expected := testutil.LoadFixtureFile(t, "fixtures/convert/foundations-only/expected.css")
	assert.Equal(t, string(expected), out.String())
	assert.False(t, mfs.Exists(config.Stdout))
}

func TestConvertTo_MissingInputWritesNothing(t *testing.T) {
	mfs := mapfs.New()
	cmd, out := testCommand()

	err := convertTo(cmd, mfs, config.Default(), fixedClock)
	require.Error(t, err)
	assert.False(t, mfs.Exists(config.DefaultOutput))
	assert.Empty(t, out.String())
}

func TestConvertTo_MalformedInputWritesNothing(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("export.json", `[{"DIY Foundations": {`, 0644)
	cmd, out := testCommand()

	err := convertTo(cmd, mfs, config.Default(), fixedClock)
	require.Error(t, err)
	assert.False(t, mfs.Exists(config.DefaultOutput))
	assert.Empty(t, out.String())
}
