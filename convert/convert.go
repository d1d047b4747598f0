/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert turns a design-token document into a stylesheet of CSS
// custom properties: a theme-agnostic :root block, one override block per
// theme, and fixed theme-switching rules.
package convert

import (
	"time"

	"bennypowers.dev/tokencss/internal/logger"
	"bennypowers.dev/tokencss/token"
)

// Default section keys of an exported document.
const (
	DefaultFoundationsSection = "DIY Foundations"
	DefaultTypographySection  = "Typography"
	DefaultTypographyMode     = "Mode 1"
)

// Options configures a conversion.
type Options struct {
	// FoundationsSection is the key of the section holding modes.Light and modes.Dark.
	FoundationsSection string

	// TypographySection is the key of the section holding typography modes.
	TypographySection string

	// TypographyMode is the typography mode to read.
	TypographyMode string

	// Unit is appended to float tokens.
	Unit string

	// Now supplies the header timestamp. Defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		FoundationsSection: DefaultFoundationsSection,
		TypographySection:  DefaultTypographySection,
		TypographyMode:     DefaultTypographyMode,
		Unit:               DefaultUnit,
		Now:                time.Now,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.FoundationsSection == "" {
		o.FoundationsSection = d.FoundationsSection
	}
	if o.TypographySection == "" {
		o.TypographySection = d.TypographySection
	}
	if o.TypographyMode == "" {
		o.TypographyMode = d.TypographyMode
	}
	if o.Unit == "" {
		o.Unit = d.Unit
	}
	if o.Now == nil {
		o.Now = d.Now
	}
	return o
}

// Theme describes one theme override scope.
type Theme struct {
	// Mode is the key under the foundations' modes.
	Mode string

	// Name identifies the theme.
	Name string

	// Selector is the class selector of the override block.
	Selector string
}

// Themes are the supported themes in output order.
var Themes = []Theme{
	{Mode: "Light", Name: "light", Selector: ".light-theme"},
	{Mode: "Dark", Name: "dark", Selector: ".dark-theme"},
}

// RootSelector is the selector of the theme-agnostic scope.
const RootSelector = ":root"

// state is a phase of a conversion pass. Each is entered once, in order.
type state int

const (
	stateRootScope state = iota
	stateLightScope
	stateDarkScope
	stateStaticRules
	stateDone
)

func (s state) String() string {
	switch s {
	case stateRootScope:
		return "root-scope"
	case stateLightScope:
		return "light-scope"
	case stateDarkScope:
		return "dark-scope"
	case stateStaticRules:
		return "static-rules"
	default:
		return "done"
	}
}

// converter holds the sections of one document during a pass.
type converter struct {
	opts        Options
	foundations *token.Category
	typography  *token.Category
	sheet       *Stylesheet
}

// Convert builds the stylesheet for doc. Missing or malformed optional
// sections are skipped; conversion itself cannot fail.
func Convert(doc *token.Document, opts Options) *Stylesheet {
	opts = opts.withDefaults()
	c := &converter{
		opts: opts,
		sheet: &Stylesheet{
			Generated: opts.Now(),
			Root:      newScope(RootSelector, "", ""),
		},
	}
	c.foundations = section(doc, opts.FoundationsSection)
	c.typography = section(doc, opts.TypographySection)

	for st := stateRootScope; st != stateDone; st++ {
		logger.Debug("entering %s", st)
		switch st {
		case stateRootScope:
			c.rootScope()
		case stateLightScope:
			c.themeScope(Themes[0])
		case stateDarkScope:
			c.themeScope(Themes[1])
		case stateStaticRules:
			c.sheet.Rules = staticRules()
		}
	}

	return c.sheet
}

// section returns the named section, warning when the key exists with a
// shape that is not an object.
func section(doc *token.Document, name string) *token.Category {
	cat, ok := doc.Section(name)
	if !ok {
		if doc.Has(name) {
			logger.Warn("section %q is not an object, skipping", name)
		}
		return nil
	}
	return cat
}

// mode returns modes.<name> of a section.
func mode(sec *token.Category, name string) (*token.Category, bool) {
	return sec.Lookup("modes", name)
}

func (c *converter) rootScope() {
	root := c.sheet.Root
	w := &walker{scope: root, unit: c.opts.Unit}

	root.comment("Base design tokens - shared across all themes")
	root.comment("These foundational values never change between themes")

	if c.typography != nil {
		root.blank()
		root.comment("Typography tokens - theme-agnostic")
		if m, ok := mode(c.typography, c.opts.TypographyMode); ok {
			w.walkTypography(m)
		} else {
			logger.Warn("typography mode %q not found", c.opts.TypographyMode)
		}
	}

	light, ok := mode(c.foundations, Themes[0].Mode)
	if !ok {
		return
	}
	global, ok := light.Category("global")
	if !ok {
		return
	}
	for _, name := range rootScoped {
		root.blank()
		root.comment("Base " + name + " tokens")
		w.walkBase(global, name)
	}
}

func (c *converter) themeScope(theme Theme) {
	m, ok := mode(c.foundations, theme.Mode)
	if !ok {
		logger.Debug("no %s mode, skipping %s", theme.Mode, theme.Selector)
		return
	}

	scope := newScope(theme.Selector, theme.Name, theme.Mode+" theme tokens")
	c.sheet.Themes = append(c.sheet.Themes, scope)
	w := &walker{scope: scope, theme: theme.Name, unit: c.opts.Unit}

	if global, ok := m.Category("global"); ok {
		scope.comment("Color primitives")
		w.walkThemeColors(global)
	}
	if semantic, ok := m.Category("semantic"); ok {
		w.walkSemantic(semantic)
	}
	w.walkOther(m)
}

func staticRules() []string {
	return []string{
		"",
		"/* Apply one of these classes to your html or body element */",
		"html, body {",
		"  /* Default to light theme */",
		"  color-scheme: light;",
		"}",
		"",
		".dark-theme {",
		"  color-scheme: dark;",
		"}",
		"",
		"/* Theme-specific display control */",
		".light-theme .dark-only { display: none !important; }",
		".dark-theme .light-only { display: none !important; }",
		"",
		"/* Media query for system preference - automatically applies theme */",
		"@media (prefers-color-scheme: dark) {",
		"  html:not(.light-theme), body:not(.light-theme) {",
		"    color-scheme: dark;",
		"  }",
		"  ",
		"  html:not(.light-theme), body:not(.light-theme) {",
		"    /* Auto-apply dark theme if no theme class is specified */",
		"    --auto-theme: \"dark\";",
		"  }",
		"}",
	}
}
