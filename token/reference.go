/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strings"
)

// referencePattern matches a value that is exactly one {token.path} reference.
var referencePattern = regexp.MustCompile(`^\{([^{}]+)\}$`)

// ParseReference extracts the token path from a reference-shaped value.
// Returns the path and true if valid, empty string and false otherwise.
func ParseReference(value string) (string, bool) {
	matches := referencePattern.FindStringSubmatch(value)
	if len(matches) != 2 {
		return "", false
	}
	return matches[1], true
}

// ReferenceSegments splits a reference path on dots.
func ReferenceSegments(path string) []string {
	return strings.Split(path, ".")
}
