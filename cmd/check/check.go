/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package check provides the check command for tokencss.
package check

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokencss/config"
	"bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/load"
	"bennypowers.dev/tokencss/resolver"
)

// ErrFindings is returned in strict mode when errors or warnings were found.
var ErrFindings = errors.New("check failed")

// Cmd is the check cobra command.
var Cmd = &cobra.Command{
	Use:   "check [input]",
	Short: "Report dangling and circular references in the generated CSS",
	Long: `Convert the document in memory and inspect the result.

Reports var() lookups whose target is never declared, circular references,
and color values that do not parse. With --contrast, also reports colors that
resolve to the same value in the light and dark themes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Exit non-zero on errors or warnings")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
	Cmd.Flags().Bool("contrast", false, "Report colors unchanged between light and dark themes")
	Cmd.Flags().Float64("min-distance", resolver.DefaultMinDistance, "CIEDE2000 distance (ΔE00, 0-100) under which two colors count as unchanged")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")
	contrast, _ := cmd.Flags().GetBool("contrast")
	minDistance, _ := cmd.Flags().GetFloat64("min-distance")

	if len(args) == 1 {
		viper.Set(config.KeyInput, args[0])
	}

	filesystem := fs.NewOSFileSystem()
	cfg, err := config.Resolve(viper.GetViper(), filesystem, ".")
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	sheet, err := load.Stylesheet(cmd.Context(), cfg, ".", load.Options{FS: filesystem})
	if err != nil {
		return err
	}

	findings := resolver.Check(sheet, resolver.Options{
		Contrast:    contrast,
		MinDistance: minDistance,
	})

	report(cmd.OutOrStdout(), cfg.Input, findings, quiet)
	return verdict(findings, strict)
}

// report prints findings one per line, followed by a summary unless quiet.
func report(w io.Writer, input string, findings []resolver.Finding, quiet bool) {
	var errs, warnings, infos int
	for _, f := range findings {
		switch f.Severity {
		case resolver.SeverityError:
			errs++
		case resolver.SeverityWarning:
			warnings++
		default:
			infos++
		}
		if quiet && f.Severity != resolver.SeverityError {
			continue
		}
		fmt.Fprintln(w, f)
	}

	if quiet {
		return
	}
	if len(findings) == 0 {
		fmt.Fprintf(w, "%s: no problems found.\n", input)
		return
	}
	fmt.Fprintf(w, "%s: %d error(s), %d warning(s), %d note(s)\n", input, errs, warnings, infos)
}

// verdict fails in strict mode when anything above info level was found.
func verdict(findings []resolver.Finding, strict bool) error {
	if !strict {
		return nil
	}
	for _, f := range findings {
		if f.Severity != resolver.SeverityInfo {
			return ErrFindings
		}
	}
	return nil
}
