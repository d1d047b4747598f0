/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokencss.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokencss/cmd/check"
	"bennypowers.dev/tokencss/cmd/convert"
	"bennypowers.dev/tokencss/cmd/list"
	"bennypowers.dev/tokencss/cmd/version"
	"bennypowers.dev/tokencss/config"
	"bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tokencss [input] [output]",
	Short: "Convert design token exports into CSS custom properties",
	Long: `tokencss converts a design token export into a stylesheet of CSS custom
properties: primitives on :root, semantic colors under .light-theme and
.dark-theme, and typography styles in the chosen mode.

Settings come from flags, TOKENCSS_* environment variables and
.config/design-tokens.{yaml,yml,json}, in that order.`,
	Args:              cobra.MaximumNArgs(2),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              convert.Run,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(viper.GetViper(), fs.NewOSFileSystem(), ".")
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	return logger.SetLevel(cfg.LogLevel)
}

func init() {
	config.Configure(viper.GetViper())

	flags := rootCmd.PersistentFlags()
	flags.String(config.KeyFoundations, "", "Top-level section holding primitives and color modes")
	flags.String(config.KeyTypography, "", "Top-level section holding typography modes")
	flags.StringP(config.KeyTypographyMode, "m", "", "Typography mode to emit, e.g. Desktop")
	flags.StringP(config.KeyUnit, "u", "", "Unit appended to $type float values: px, rem, em, pt")
	flags.String(config.KeyLogLevel, "", "Log level: debug, info, warn, error")

	for _, key := range []string{
		config.KeyFoundations,
		config.KeyTypography,
		config.KeyTypographyMode,
		config.KeyUnit,
		config.KeyLogLevel,
	} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}

	rootCmd.AddCommand(convert.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(check.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
