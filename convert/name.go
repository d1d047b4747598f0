/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Separator joins the segments of a flat variable name.
const Separator = "-"

var (
	whitespacePattern = regexp.MustCompile(`[\s\p{Z}\x{FEFF}]+`)
	camelPattern      = regexp.MustCompile(`([a-z])([A-Z])`)
)

// Normalize flattens a path-like string into a kebab-case identifier:
// dots and whitespace runs become separators, a separator is inserted at
// each lower-to-upper case boundary, and the result is lower-cased.
//
//	Normalize("Font Family")   // "font-family"
//	Normalize("a.b.c")         // "a-b-c"
//	Normalize("brandPrimary")  // "brand-primary"
func Normalize(s string) string {
	s = strings.ReplaceAll(s, ".", Separator)
	s = whitespacePattern.ReplaceAllString(s, Separator)
	s = camelPattern.ReplaceAllString(s, "${1}"+Separator+"${2}")
	return cases.Lower(language.Und).String(s)
}

// join normalizes the separator-joined parts.
func join(parts ...string) string {
	return Normalize(strings.Join(parts, Separator))
}
