/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the ordered design-token document model.
package token

import "strings"

// Type tags recognized by the stylesheet renderer.
// Any other tag is carried through verbatim.
const (
	TypeColor  = "color"
	TypeFloat  = "float"
	TypeString = "string"
)

// Token is a leaf node of the document: any object carrying a $value key.
type Token struct {
	// Key is the token's own key within its parent category.
	Key string `json:"key"`

	// Value is the declared $value.
	Value Value `json:"$value"`

	// Type is the declared $type, empty when absent.
	Type string `json:"$type,omitempty"`

	// Description is the optional $description.
	Description string `json:"$description,omitempty"`

	// Path is the key path from the section root to this token
	// (e.g., ["modes", "Light", "global", "neutral", "50"]).
	Path []string `json:"-"`
}

// HasValue reports whether the token carries a usable $value.
// A nil token or a null $value has none.
func (t *Token) HasValue() bool {
	return t != nil && !t.Value.IsNull()
}

// Reference returns the dotted path of a reference-shaped value,
// e.g. "global.spacing.sm" for "{global.spacing.sm}".
func (t *Token) Reference() (string, bool) {
	if t == nil || t.Value.Kind != KindString {
		return "", false
	}
	return ParseReference(t.Value.Raw)
}

// DotPath returns the dot-separated path to this token.
func (t *Token) DotPath() string {
	return strings.Join(t.Path, ".")
}
