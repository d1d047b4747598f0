/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tokencss/convert"
	"bennypowers.dev/tokencss/token"
)

// Row holds computed display values for a single declaration.
type Row struct {
	Name      string `json:"name"`                // Custom property name, e.g. "--spacing-sm"
	Type      string `json:"type"`                // Token type or "-"
	Value     string `json:"value"`               // Rendered CSS value
	Reference string `json:"reference,omitempty"` // Source reference path, if any
	Source    string `json:"source,omitempty"`    // Dot path of the source token
	IsColor   bool   `json:"-"`                   // Whether Value is a parseable color
}

// Section is one stylesheet scope ready for display.
type Section struct {
	Title    string `json:"title"`
	Selector string `json:"selector"`
	Rows     []Row  `json:"rows"`
}

// ComputeRows transforms a scope's declarations into display rows.
func ComputeRows(sc *convert.Scope) []Row {
	decls := sc.Declarations()
	rows := make([]Row, 0, len(decls))
	for _, d := range decls {
		row := Row{
			Name:   d.Property(),
			Type:   d.Type,
			Value:  d.Value,
			Source: d.Source,
		}
		if d.Reference != "" {
			row.Reference = "{" + d.Reference + "}"
		}
		if row.Type == "" {
			row.Type = "-"
		}

		if d.Type == token.TypeColor && d.Target == "" {
			if _, err := csscolorparser.Parse(d.Value); err == nil {
				row.IsColor = true
			}
		}

		rows = append(rows, row)
	}
	return rows
}

// Sections returns one section per scope of sheet, root first.
func Sections(sheet *convert.Stylesheet) []Section {
	scopes := sheet.Scopes()
	out := make([]Section, 0, len(scopes))
	for _, sc := range scopes {
		out = append(out, Section{
			Title:    ScopeTitle(sc),
			Selector: sc.Selector,
			Rows:     ComputeRows(sc),
		})
	}
	return out
}

// ScopeTitle names a scope for headings, e.g. "Light Theme".
func ScopeTitle(sc *convert.Scope) string {
	if sc.Theme == "" {
		return "Root"
	}
	return toTitleCase(sc.Theme + " theme")
}

// ColumnWidths calculates the max width needed for the name and type
// columns, in runes as fmt pads them.
func ColumnWidths(rows []Row) (name, typ int) {
	name, typ = 4, 4 // minimums for headers
	for _, r := range rows {
		name = max(name, utf8.RuneCountInString(r.Name))
		typ = max(typ, utf8.RuneCountInString(r.Type))
	}
	return
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders sections as aligned tables, one block per scope.
func Table(w io.Writer, sections []Section, swatches bool) error {
	first := true
	for _, s := range sections {
		if len(s.Rows) == 0 {
			continue
		}
		if !first {
			fmt.Fprintln(w)
		}
		first = false

		fmt.Fprintf(w, "%s\n", s.Selector)
		nameW, typeW := ColumnWidths(s.Rows)
		for _, r := range s.Rows {
			swatch := ""
			if swatches && r.IsColor {
				swatch = ColorSwatch(r.Value)
			}
			ref := ""
			if r.Reference != "" {
				ref = " ← " + r.Reference
			}
			fmt.Fprintf(w, "  %-*s  %-*s  %s%s%s\n", nameW, r.Name, typeW, r.Type, swatch, r.Value, ref)
		}
	}
	return nil
}

// Markdown renders sections as markdown, one heading per scope and one
// table per token type within it.
func Markdown(w io.Writer, sections []Section) error {
	first := true
	for _, s := range sections {
		if len(s.Rows) == 0 {
			continue
		}
		if !first {
			fmt.Fprintln(w)
		}
		first = false

		fmt.Fprintf(w, "## %s {#%s}\n\n", s.Title, slugify(s.Title))
		fmt.Fprintf(w, "Selector: `%s`\n", s.Selector)

		// Group rows by type, preserving order of first occurrence
		typeOrder := make([]string, 0)
		byType := make(map[string][]Row)
		for _, r := range s.Rows {
			if _, exists := byType[r.Type]; !exists {
				typeOrder = append(typeOrder, r.Type)
			}
			byType[r.Type] = append(byType[r.Type], r)
		}

		for _, typ := range typeOrder {
			heading := typ
			if heading == "-" {
				heading = "untyped"
			}
			fmt.Fprintf(w, "\n### %s\n\n", toTitleCase(heading))
			renderTable(w, byType[typ])
		}
	}
	return nil
}

func renderTable(w io.Writer, rows []Row) {
	nameW, valW, refW := 4, 5, 9 // minimums for headers
	hasRefs := false
	for _, r := range rows {
		nameW = max(nameW, utf8.RuneCountInString(r.Name))
		valW = max(valW, utf8.RuneCountInString(r.Value))
		if r.Reference != "" {
			hasRefs = true
			refW = max(refW, utf8.RuneCountInString(r.Reference))
		}
	}

	if hasRefs {
		fmt.Fprintf(w, "| %-*s | %-*s | %-*s |\n", nameW, "Name", valW, "Value", refW, "Reference")
		fmt.Fprintf(w, "|-%s-|-%s-|-%s-|\n", strings.Repeat("-", nameW), strings.Repeat("-", valW), strings.Repeat("-", refW))
		for _, r := range rows {
			fmt.Fprintf(w, "| %-*s | %-*s | %-*s |\n", nameW, r.Name, valW, r.Value, refW, r.Reference)
		}
		return
	}

	fmt.Fprintf(w, "| %-*s | %-*s |\n", nameW, "Name", valW, "Value")
	fmt.Fprintf(w, "|-%s-|-%s-|\n", strings.Repeat("-", nameW), strings.Repeat("-", valW))
	for _, r := range rows {
		fmt.Fprintf(w, "| %-*s | %-*s |\n", nameW, r.Name, valW, r.Value)
	}
}

// Names renders just the property names, one per line. A name declared in
// several scopes is printed once.
func Names(w io.Writer, sections []Section) error {
	seen := make(map[string]bool)
	for _, s := range sections {
		for _, r := range s.Rows {
			if seen[r.Name] {
				continue
			}
			seen[r.Name] = true
			fmt.Fprintln(w, r.Name)
		}
	}
	return nil
}

// JSON renders sections as indented JSON.
func JSON(w io.Writer, sections []Section) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sections)
}

// slugify converts a name to a URL-safe anchor ID.
// e.g., "Light Theme" -> "light-theme"
func slugify(name string) string {
	var result strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		} else if r == ' ' || r == '-' || r == '_' || r == '.' {
			result.WriteRune('-')
		}
	}
	// Remove consecutive dashes
	s := result.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// toTitleCase converts a string to Title Case.
func toTitleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(s)
}
