/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tokencss/token"
)

// ResolveReference rewrites a reference path such as "global.spacing.sm"
// into a variable lookup such as "var(--spacing-sm)".
//
// theme names the scope being written. No rule depends on it yet.
// Targets are never checked for existence and references are never
// expanded, so reference cycles cannot loop here.
func ResolveReference(path, theme string) string {
	return "var(--" + ReferenceName(path, theme) + ")"
}

// ReferenceName returns the variable name a reference path points at,
// dispatching on the first path segment:
//
//	semantic.*                    all segments, case kept
//	global.{spacing,radius,container}.*  segments after "global", lower-cased
//	global.*                      segments after "global", lower-cased
//	color.*                       all segments, case kept
//	anything else                 all segments, lower-cased
func ReferenceName(path, theme string) string {
	parts := token.ReferenceSegments(path)
	lower := cases.Lower(language.Und)

	switch parts[0] {
	case "semantic":
		return strings.Join(parts, Separator)
	case "global":
		if len(parts) > 1 && isRootScoped(parts[1]) {
			// spacing, radius and container live in :root
			return lower.String(strings.Join(parts[1:], Separator))
		}
		// theme-scoped color primitives
		return lower.String(strings.Join(parts[1:], Separator))
	case "color":
		return strings.Join(parts, Separator)
	default:
		return lower.String(strings.Join(parts, Separator))
	}
}
