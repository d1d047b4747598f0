/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for tokencss.
package list

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"bennypowers.dev/tokencss/cmd/render"
	"bennypowers.dev/tokencss/config"
	"bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/load"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [input]",
	Short: "List the custom properties a document converts to",
	Long: `List every custom property the converter would declare, grouped by scope.

Examples:
  # Table with color swatches
  tokencss list export.json

  # Only dark theme colors
  tokencss list --scope dark --type color

  # Names matching a pattern
  tokencss list --format names --match '^--brand-' --regex`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("format", "table", "Output format: table, json, names, markdown")
	Cmd.Flags().String("scope", "", "Only list one scope: root, light, dark")
	Cmd.Flags().String("type", "", "Filter by token type")
	Cmd.Flags().String("match", "", "Filter by name or value substring")
	Cmd.Flags().Bool("regex", false, "Treat --match as a regular expression")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	scope, _ := cmd.Flags().GetString("scope")
	typeFilter, _ := cmd.Flags().GetString("type")
	query, _ := cmd.Flags().GetString("match")
	useRegex, _ := cmd.Flags().GetBool("regex")

	var pattern *regexp.Regexp
	if useRegex && query != "" {
		var err error
		pattern, err = regexp.Compile(query)
		if err != nil {
			return fmt.Errorf("invalid regex: %w", err)
		}
	}

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

	sections, err := selectScope(render.Sections(sheet), scope)
	if err != nil {
		return err
	}
	sections = filterSections(sections, typeFilter, query, pattern)

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return render.JSON(out, sections)
	case "names":
		return render.Names(out, sections)
	case "markdown", "md":
		return render.Markdown(out, sections)
	case "table":
		return render.Table(out, sections, isTerminal(out))
	default:
		return fmt.Errorf("unknown format %q: expected table, json, names or markdown", format)
	}
}

// selectScope narrows sections to the named scope. An empty name keeps all.
func selectScope(sections []render.Section, name string) ([]render.Section, error) {
	if name == "" {
		return sections, nil
	}
	want := strings.ToLower(name)
	for _, s := range sections {
		title := strings.ToLower(s.Title)
		if title == want || title == want+" theme" {
			return []render.Section{s}, nil
		}
	}
	return nil, fmt.Errorf("scope %q not present in output", name)
}

// filterSections keeps rows matching the type and query filters. Sections
// left empty are dropped.
func filterSections(sections []render.Section, typeFilter, query string, pattern *regexp.Regexp) []render.Section {
	if typeFilter == "" && query == "" {
		return sections
	}
	var out []render.Section
	for _, s := range sections {
		var rows []render.Row
		for _, r := range s.Rows {
			if typeFilter != "" && r.Type != typeFilter {
				continue
			}
			if query != "" && !matchString(r.Name, query, pattern) && !matchString(r.Value, query, pattern) {
				continue
			}
			rows = append(rows, r)
		}
		if len(rows) > 0 {
			s.Rows = rows
			out = append(out, s)
		}
	}
	return out
}

func matchString(s, query string, pattern *regexp.Regexp) bool {
	if pattern != nil {
		return pattern.MatchString(s)
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(query))
}

// isTerminal reports whether w is an interactive terminal, where color
// swatches render.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
