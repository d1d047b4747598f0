/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert provides the convert command for tokencss.
package convert

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokencss/config"
	"bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/load"
)

// Cmd is the convert cobra command. The root command runs the same
// conversion when given no subcommand.
var Cmd = &cobra.Command{
	Use:   "convert [input] [output]",
	Short: "Convert a design token export into a CSS stylesheet",
	Long: `Convert a design token export into CSS custom properties.

The input defaults to ./export.json and the output to ./design-tokens.css.
An output of "-" writes the stylesheet to stdout.

Examples:
  # Defaults
  tokencss

  # Explicit paths
  tokencss tokens/export.json dist/tokens.css

  # rem units, to stdout
  tokencss --unit rem export.json -

  # Remote export
  tokencss https://example.com/export.json`,
	Args: cobra.MaximumNArgs(2),
	RunE: Run,
}

// Run converts the configured input and writes the stylesheet.
func Run(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		viper.Set(config.KeyInput, args[0])
	}
	if len(args) > 1 {
		viper.Set(config.KeyOutput, args[1])
	}

	filesystem := fs.NewOSFileSystem()
	cfg, err := config.Resolve(viper.GetViper(), filesystem, ".")
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	return convertTo(cmd, filesystem, cfg, time.Now)
}

func convertTo(cmd *cobra.Command, filesystem fs.FileSystem, cfg *config.Config, now func() time.Time) error {
	sheet, err := load.Stylesheet(cmd.Context(), cfg, ".", load.Options{FS: filesystem, Now: now})
	if err != nil {
		return err
	}

	// Nothing is written until the whole stylesheet is built
	output := []byte(sheet.String() + "\n")

	if cfg.WritesToStdout() {
		_, err := cmd.OutOrStdout().Write(output)
		return err
	}

	if err := write(filesystem, cfg.Output, output); err != nil {
		return err
	}
	confirm(cmd.OutOrStdout(), cfg.Output)
	return nil
}

func write(filesystem fs.FileSystem, path string, data []byte) error {
	if err := filesystem.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing to %s: %w", path, err)
	}
	return nil
}

func confirm(w io.Writer, output string) {
	fmt.Fprintf(w, "Design tokens CSS generated successfully in %s\n", output)
}
