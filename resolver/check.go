/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
	"github.com/sahilm/fuzzy"

	"bennypowers.dev/tokencss/convert"
	"bennypowers.dev/tokencss/token"
)

// DefaultMinDistance is the CIEDE2000 distance below which a light and a
// dark color count as the same color. Distances use the usual ΔE00 scale,
// where 1 is about the smallest difference the eye can see and black to
// white is 100.
const DefaultMinDistance = 1.0

// Severity ranks a finding.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

// Finding is one problem found in a generated stylesheet.
type Finding struct {
	Severity Severity

	// Selector is the scope the offending declaration lives in.
	Selector string

	// Name is the declared variable name without the leading "--".
	Name string

	Message string

	// Suggestion is the closest declared name to a missing target, if any.
	Suggestion string
}

func (f Finding) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s --%s: %s", f.Severity, f.Selector, f.Name, f.Message)
	if f.Suggestion != "" {
		fmt.Fprintf(&b, " (did you mean --%s?)", f.Suggestion)
	}
	return b.String()
}

// Options configures Check.
type Options struct {
	// Contrast reports color declarations that resolve to
	// indistinguishable colors in the light and dark themes.
	Contrast bool

	// MinDistance overrides DefaultMinDistance when positive.
	MinDistance float64
}

// Check inspects a converted stylesheet. Conversion never validates
// references, so this is where dangling and circular var() lookups are
// reported.
func Check(sheet *convert.Stylesheet, opts Options) []Finding {
	var findings []Finding
	for _, sc := range sheet.Scopes() {
		graph := BuildDependencyGraph(Visible(sheet.Root, sc))
		findings = append(findings, danglingReferences(sheet, sc, graph)...)
		findings = append(findings, cycles(sheet, sc, graph)...)
		findings = append(findings, invalidColors(sc)...)
	}
	if opts.Contrast {
		findings = append(findings, unchangedColors(sheet, opts)...)
	}
	return findings
}

// HasErrors reports whether any finding is an error.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

func danglingReferences(sheet *convert.Stylesheet, sc *convert.Scope, graph *DependencyGraph) []Finding {
	var findings []Finding
	for _, d := range sc.Declarations() {
		if d.Target == "" || graph.Has(d.Target) {
			continue
		}

		f := Finding{
			Severity:   SeverityError,
			Selector:   sc.Selector,
			Name:       d.Name,
			Message:    fmt.Sprintf("references --%s (from {%s}), which is not declared", d.Target, d.Reference),
			Suggestion: closest(d.Target, graph.Names()),
		}
		if sc == sheet.Root {
			if themes := declaringThemes(sheet, d.Target); len(themes) > 0 {
				f.Severity = SeverityWarning
				f.Message = fmt.Sprintf("references --%s, which is only declared in %s", d.Target, strings.Join(themes, ", "))
				f.Suggestion = ""
			}
		}
		findings = append(findings, f)
	}
	return findings
}

func declaringThemes(sheet *convert.Stylesheet, name string) []string {
	var selectors []string
	for _, th := range sheet.Themes {
		if _, ok := th.Lookup(name); ok {
			selectors = append(selectors, th.Selector)
		}
	}
	return selectors
}

// closest returns the best fuzzy match for target among names.
func closest(target string, names []string) string {
	matches := fuzzy.Find(target, names)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

func cycles(sheet *convert.Stylesheet, sc *convert.Scope, graph *DependencyGraph) []Finding {
	cycle := graph.FindCycle()
	if cycle == nil {
		return nil
	}
	// A cycle made only of root declarations is reported once, on :root.
	if sc != sheet.Root {
		owned := false
		for _, name := range cycle {
			if _, ok := sc.Lookup(name); ok {
				owned = true
				break
			}
		}
		if !owned {
			return nil
		}
	}
	props := make([]string, len(cycle))
	for i, name := range cycle {
		props[i] = "--" + name
	}
	return []Finding{{
		Severity: SeverityError,
		Selector: sc.Selector,
		Name:     cycle[0],
		Message:  fmt.Sprintf("%s: %s", ErrCircularReference, strings.Join(props, " -> ")),
	}}
}

func invalidColors(sc *convert.Scope) []Finding {
	var findings []Finding
	for _, d := range sc.Declarations() {
		if d.Type != token.TypeColor || d.Target != "" || d.Value == convert.Inherit {
			continue
		}
		if _, err := csscolorparser.Parse(d.Value); err != nil {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Selector: sc.Selector,
				Name:     d.Name,
				Message:  fmt.Sprintf("%q is not a recognized color", d.Value),
			})
		}
	}
	return findings
}

func unchangedColors(sheet *convert.Stylesheet, opts Options) []Finding {
	light, ok := sheet.Theme(convert.Themes[0].Name)
	if !ok {
		return nil
	}
	dark, ok := sheet.Theme(convert.Themes[1].Name)
	if !ok {
		return nil
	}

	lightValues, err := ResolveValues(Visible(sheet.Root, light))
	if err != nil {
		return nil
	}
	darkValues, err := ResolveValues(Visible(sheet.Root, dark))
	if err != nil {
		return nil
	}

	minDistance := opts.MinDistance
	if minDistance <= 0 {
		minDistance = DefaultMinDistance
	}

	var findings []Finding
	for _, d := range dark.Declarations() {
		if d.Type != token.TypeColor {
			continue
		}
		if _, ok := light.Lookup(d.Name); !ok {
			continue
		}
		l, lok := parseColor(lightValues[d.Name])
		k, dok := parseColor(darkValues[d.Name])
		if !lok || !dok {
			continue
		}
		if dist := deltaE(l, k); dist < minDistance {
			findings = append(findings, Finding{
				Severity: SeverityInfo,
				Selector: dark.Selector,
				Name:     d.Name,
				Message:  fmt.Sprintf("resolves to the same color as %s (%s, distance %.2f)", light.Selector, lightValues[d.Name], dist),
			})
		}
	}
	return findings
}

// deltaE returns the CIEDE2000 distance between a and b on the ΔE00 scale.
// go-colorful works in Lab with L in [0, 1], a hundredth of that scale.
func deltaE(a, b colorful.Color) float64 {
	return a.DistanceCIEDE2000(b) * 100
}

func parseColor(value string) (colorful.Color, bool) {
	if value == "" {
		return colorful.Color{}, false
	}
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return colorful.Color{}, false
	}
	return colorful.Color{R: c.R, G: c.G, B: c.B}, true
}
