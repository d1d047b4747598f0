/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert_test

import (
	"testing"

	"bennypowers.dev/tokencss/convert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Font Family", "font-family"},
		{"a.b.c", "a-b-c"},
		{"brandPrimary", "brand-primary"},
		{"typography-font size-bodyLarge", "typography-font-size-body-large"},
		{"line   height", "line-height"},
		{"tab\tseparated", "tab-separated"},
		{"neutral-50", "neutral-50"},
		{"UPPER", "upper"},
		{"HTMLColor", "htmlcolor"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := convert.Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"Font Family", "a.b.c", "brandPrimary", "x.Y z", "spacing-sm", "aBcDeF"}
	for _, in := range inputs {
		once := convert.Normalize(in)
		if twice := convert.Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
