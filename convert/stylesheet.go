/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"strings"
	"time"

	"bennypowers.dev/tokencss/internal/logger"
)

// TimestampLayout formats the generation time in the header comment.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

const indent = "  "

// Declaration is one custom property bound inside a scope.
type Declaration struct {
	// Name is the flat variable name without the leading "--".
	Name string `json:"name"`

	// Value is the rendered CSS value.
	Value string `json:"value"`

	// Type is the source token's $type.
	Type string `json:"type,omitempty"`

	// Reference is the source reference path when Value is a var() lookup.
	Reference string `json:"reference,omitempty"`

	// Target is the variable name Reference resolves to.
	Target string `json:"target,omitempty"`

	// Source is the token's dotted key path within its section,
	// e.g. "modes.Light.global.neutral.50".
	Source string `json:"source,omitempty"`
}

// Property returns the custom property name, e.g. "--spacing-sm".
func (d Declaration) Property() string {
	return "--" + d.Name
}

type lineKind int

const (
	lineBlank lineKind = iota
	lineComment
	lineDeclaration
)

type line struct {
	kind lineKind
	text string
	decl int
}

// Scope is one block of the stylesheet. Within a scope each variable
// name is declared at most once; the first declaration wins.
type Scope struct {
	// Selector is the block selector, ":root" or a theme class.
	Selector string

	// Theme is the theme name, empty for the root scope.
	Theme string

	// Heading is the comment printed above the block, if any.
	Heading string

	lines    []line
	decls    []Declaration
	declared map[string]int
}

func newScope(selector, theme, heading string) *Scope {
	return &Scope{
		Selector: selector,
		Theme:    theme,
		Heading:  heading,
		declared: make(map[string]int),
	}
}

func (s *Scope) blank() {
	s.lines = append(s.lines, line{kind: lineBlank})
}

func (s *Scope) comment(text string) {
	s.lines = append(s.lines, line{kind: lineComment, text: text})
}

// declare appends d unless its name is already declared in this scope.
func (s *Scope) declare(d Declaration) bool {
	if _, dup := s.declared[d.Name]; dup {
		logger.Warn("%s: %s already declared, skipping %s", s.Selector, d.Property(), d.Source)
		return false
	}
	s.declared[d.Name] = len(s.decls)
	s.lines = append(s.lines, line{kind: lineDeclaration, decl: len(s.decls)})
	s.decls = append(s.decls, d)
	return true
}

// Declarations returns the scope's declarations in first-write order.
func (s *Scope) Declarations() []Declaration {
	if s == nil {
		return nil
	}
	return s.decls
}

// Lookup returns the declaration of name in this scope.
func (s *Scope) Lookup(name string) (Declaration, bool) {
	if s == nil {
		return Declaration{}, false
	}
	i, ok := s.declared[name]
	if !ok {
		return Declaration{}, false
	}
	return s.decls[i], true
}

func (s *Scope) render(out []string) []string {
	if s.Heading != "" {
		out = append(out, "", "/* "+s.Heading+" */")
	}
	out = append(out, s.Selector+" {")
	for _, l := range s.lines {
		switch l.kind {
		case lineBlank:
			out = append(out, "")
		case lineComment:
			out = append(out, indent+"/* "+l.text+" */")
		case lineDeclaration:
			d := s.decls[l.decl]
			out = append(out, indent+d.Property()+": "+d.Value+";")
		}
	}
	return append(out, "}")
}

// Stylesheet is the result of one conversion pass.
type Stylesheet struct {
	// Generated is the time written into the header comment.
	Generated time.Time

	// Root holds the theme-agnostic declarations.
	Root *Scope

	// Themes holds one override scope per theme present in the input, in
	// light, dark order.
	Themes []*Scope

	// Rules are the static theme-switching rules that close the sheet.
	Rules []string
}

// Theme returns the scope for the named theme.
func (s *Stylesheet) Theme(name string) (*Scope, bool) {
	for _, sc := range s.Themes {
		if sc.Theme == name {
			return sc, true
		}
	}
	return nil, false
}

// Scopes returns the root scope followed by the theme scopes.
func (s *Stylesheet) Scopes() []*Scope {
	return append([]*Scope{s.Root}, s.Themes...)
}

// Header returns the generated-file comment block.
func (s *Stylesheet) Header() []string {
	return []string{
		"/**",
		" * Design Tokens CSS Variables",
		" * Generated on: " + s.Generated.UTC().Format(TimestampLayout),
		" */",
		"",
	}
}

// Lines returns the stylesheet as output lines, without line terminators.
func (s *Stylesheet) Lines() []string {
	out := s.Header()
	for _, sc := range s.Scopes() {
		out = sc.render(out)
	}
	return append(out, s.Rules...)
}

// String joins the output lines with newlines.
func (s *Stylesheet) String() string {
	return strings.Join(s.Lines(), "\n")
}
