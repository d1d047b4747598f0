/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert_test

import (
	"testing"

	"bennypowers.dev/tokencss/convert"
	"bennypowers.dev/tokencss/token"
)

func TestRenderValue(t *testing.T) {
	tests := []struct {
		name     string
		tok      *token.Token
		expected string
	}{
		{"nil token", nil, "inherit"},
		{"null value", &token.Token{Type: token.TypeColor}, "inherit"},
		{"color", &token.Token{Value: token.String("#112233"), Type: token.TypeColor}, "#112233"},
		{"float", &token.Token{Value: token.Number("8"), Type: token.TypeFloat}, "8px"},
		{"float fraction", &token.Token{Value: token.Number("0.50"), Type: token.TypeFloat}, "0.5px"},
		{"float as string", &token.Token{Value: token.String("12"), Type: token.TypeFloat}, "12px"},
		{"string", &token.Token{Value: token.String("Inter"), Type: token.TypeString}, "Inter"},
		{"unknown type", &token.Token{Value: token.Number("1.25"), Type: "lineHeight"}, "1.25"},
		{"no type", &token.Token{Value: token.String("solid")}, "solid"},
		{"bool", &token.Token{Value: token.Bool(false)}, "false"},
		{"reference is not resolved", &token.Token{Value: token.String("{global.spacing.sm}"), Type: token.TypeFloat}, "{global.spacing.sm}px"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := convert.RenderValue(tt.tok, convert.DefaultUnit); got != tt.expected {
				t.Errorf("RenderValue() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRenderValue_ColorIsIdentity(t *testing.T) {
	for _, v := range []string{"#112233", "rgb(1 2 3 / 50%)", "oklch(0.7 0.1 200)", "transparent"} {
		tok := &token.Token{Value: token.String(v), Type: token.TypeColor}
		if got := convert.RenderValue(tok, convert.DefaultUnit); got != v {
			t.Errorf("RenderValue(%q) = %q, want identity", v, got)
		}
	}
}
