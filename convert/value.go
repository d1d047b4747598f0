/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import "bennypowers.dev/tokencss/token"

// Inherit is rendered for tokens without a value.
const Inherit = "inherit"

// DefaultUnit is the length unit appended to float tokens.
const DefaultUnit = "px"

// RenderValue renders a token's literal value according to its $type.
// It never looks for references; callers route reference-shaped values to
// ResolveReference instead.
func RenderValue(tok *token.Token, unit string) string {
	if !tok.HasValue() {
		return Inherit
	}

	value := tok.Value.String()
	switch tok.Type {
	case token.TypeColor:
		return value
	case token.TypeFloat:
		return value + unit
	case token.TypeString:
		return value
	default:
		return value
	}
}
