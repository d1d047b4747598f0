/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"errors"
	"testing"

	"bennypowers.dev/tokencss/internal/mapfs"
	"bennypowers.dev/tokencss/parser"
	"bennypowers.dev/tokencss/testutil"
	"bennypowers.dev/tokencss/token"
)

func TestJSONParser_ParseFile(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/convert/full", "/test")

	p := parser.NewJSONParser()
	doc, err := p.ParseFile(mfs, "/test/export.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Elements) != 2 {
		t.Fatalf("expected 2 document elements, got %d", len(doc.Elements))
	}

	foundations, ok := doc.Section("DIY Foundations")
	if !ok {
		t.Fatal("expected foundations section")
	}
	global, ok := foundations.Lookup("modes", "Light", "global")
	if !ok {
		t.Fatal("expected modes.Light.global")
	}

	// Document order, not alphabetical
	var keys []string
	for _, e := range global.Entries() {
		keys = append(keys, e.Key)
	}
	expected := []string{"spacing", "radius", "container", "neutral", "brand"}
	if len(keys) != len(expected) {
		t.Fatalf("global keys = %v, want %v", keys, expected)
	}
	for i := range expected {
		if keys[i] != expected[i] {
			t.Errorf("global key %d = %q, want %q", i, keys[i], expected[i])
		}
	}
	if global.Description != "Primitive tokens" {
		t.Errorf("global description = %q", global.Description)
	}

	spacing, _ := global.Category("spacing")
	sm, ok := spacing.Token("sm")
	if !ok {
		t.Fatal("expected spacing.sm token")
	}
	if sm.Value.Kind != token.KindNumber || sm.Value.Raw != "4" || sm.Type != "float" {
		t.Errorf("spacing.sm = %+v", sm)
	}
	if got := sm.DotPath(); got != "modes.Light.global.spacing.sm" {
		t.Errorf("DotPath() = %q", got)
	}
}

func TestJSONParser_Parse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  error
		elements int
	}{
		{name: "array root", input: `[{"a": {}}, {"b": {}}]`, elements: 2},
		{name: "object root", input: `{"a": {}}`, elements: 1},
		{name: "non-object elements keep their index", input: `[1, "two", {"c": {}}]`, elements: 3},
		{name: "json with comments", input: "// header\n[{\"a\": {}, /* trailing */ }]", elements: 1},
		{name: "yaml", input: "- a:\n    b: 1\n", elements: 1},
		{name: "scalar root", input: `"just a string"`, wantErr: parser.ErrUnsupportedRoot},
		{name: "empty input", input: ``, wantErr: parser.ErrInvalidDocument},
		{name: "byte order mark", input: "\xEF\xBB\xBF[{\"a\": {}}]", elements: 1},
		{name: "malformed json", input: `[{"a": }`, wantErr: parser.ErrInvalidDocument},
		{name: "unterminated json", input: `[{"a": {}}`, wantErr: parser.ErrInvalidDocument},
		{name: "trailing data", input: `[{"a": {}}] [1]`, wantErr: parser.ErrInvalidDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := parser.NewJSONParser().Parse([]byte(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(doc.Elements) != tt.elements {
				t.Errorf("got %d elements, want %d", len(doc.Elements), tt.elements)
			}
		})
	}
}

func TestJSONParser_ValueKinds(t *testing.T) {
	input := `{"s": {
		"str":    {"$value": "#fff"},
		"quoted": {"$value": "4"},
		"int":    {"$value": 4},
		"float":  {"$value": 1.50},
		"bool":   {"$value": true},
		"null":   {"$value": null},
		"array":  {"$value": ["Inter", "sans-serif"]},
		"object": {"$value": {"width": 1, "style": "solid"}},
		"group":  {"$type": "color", "inner": {"$value": "#000"}},
		"scalar": 3
	}}`

	doc, err := parser.NewJSONParser().Parse([]byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, ok := doc.Section("s")
	if !ok {
		t.Fatal("expected section s")
	}

	kinds := map[string]token.Kind{
		"str":    token.KindString,
		"quoted": token.KindString,
		"int":    token.KindNumber,
		"float":  token.KindNumber,
		"bool":   token.KindBool,
		"null":   token.KindNull,
		"array":  token.KindComposite,
		"object": token.KindComposite,
	}
	for key, want := range kinds {
		tok, ok := s.Token(key)
		if !ok {
			t.Errorf("%s: expected a token", key)
			continue
		}
		if tok.Value.Kind != want {
			t.Errorf("%s: kind = %v, want %v", key, tok.Value.Kind, want)
		}
	}

	if tok, _ := s.Token("float"); tok.Value.String() != "1.5" {
		t.Errorf("float renders as %q", tok.Value.String())
	}
	if tok, _ := s.Token("array"); tok.Value.String() != `["Inter","sans-serif"]` {
		t.Errorf("array renders as %q", tok.Value.String())
	}

	group, ok := s.Category("group")
	if !ok {
		t.Fatal("expected group to be a category")
	}
	if group.Type != "color" {
		t.Errorf("group $type = %q", group.Type)
	}
	inner, _ := group.Token("inner")
	if inner.Type != "" {
		t.Errorf("tokens must not inherit group $type, got %q", inner.Type)
	}

	e, ok := s.Get("scalar")
	if !ok || e.Scalar == nil || e.Token != nil || e.Category != nil {
		t.Errorf("scalar entry = %+v", e)
	}
}

func TestJSONParser_DuplicateKeysLastWins(t *testing.T) {
	doc, err := parser.NewJSONParser().Parse([]byte(`{"s": {"a": {"$value": 1}, "b": {"$value": 2}, "a": {"$value": 3}}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, _ := doc.Section("s")
	entries := s.Entries()
	if len(entries) != 2 || entries[0].Key != "a" || entries[0].Token.Value.Raw != "3" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestJSONParser_JSONEscapes(t *testing.T) {
	input := `[{"DIY Foundations": {"modes": {"Light": {"global": {
		"logo": {"$value": "url(https:\/\/x.test\/a.svg)"},
		"quote": {"$value": "\"Inter\" \u00e9"}
	}}}}}]`

	doc, err := parser.NewJSONParser().Parse([]byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	foundations, _ := doc.Section("DIY Foundations")
	global, ok := foundations.Lookup("modes", "Light", "global")
	if !ok {
		t.Fatal("expected modes.Light.global")
	}

	logo, _ := global.Token("logo")
	if logo.Value.Raw != "url(https://x.test/a.svg)" {
		t.Errorf("logo = %q", logo.Value.Raw)
	}
	quote, _ := global.Token("quote")
	if quote.Value.Raw != `"Inter" é` {
		t.Errorf("quote = %q", quote.Value.Raw)
	}
}

func TestJSONParser_CompositeAsWritten(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "json keeps key order and markup",
			input: `{"s": {"t": {"$value": {"z": 1.50, "a": "<b> & </b>", "m": [true, null]}}}}`,
			want:  `{"z":1.50,"a":"<b> & </b>","m":[true,null]}`,
		},
		{
			name:  "yaml keeps key order",
			input: "s:\n  t:\n    $value:\n      z: 1\n      a: x\n      10: ten\n",
			want:  `{"z":1,"a":"x","10":"ten"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := parser.NewJSONParser().Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			s, _ := doc.Section("s")
			tok, ok := s.Token("t")
			if !ok {
				t.Fatal("expected token t")
			}
			if tok.Value.Kind != token.KindComposite {
				t.Fatalf("kind = %v", tok.Value.Kind)
			}
			if got := tok.Value.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestJSONParser_PathsStartBelowSection(t *testing.T) {
	for name, input := range map[string]string{
		"json": `[{"Typography": {"Mode 1": {"heading": {"size": {"$value": 32}}}}}]`,
		"yaml": "- Typography:\n    Mode 1:\n      heading:\n        size:\n          $value: 32\n",
	} {
		t.Run(name, func(t *testing.T) {
			doc, err := parser.NewJSONParser().Parse([]byte(input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			typography, _ := doc.Section("Typography")
			heading, ok := typography.Lookup("Mode 1", "heading")
			if !ok {
				t.Fatal("expected Mode 1.heading")
			}
			size, _ := heading.Token("size")
			if got := size.DotPath(); got != "Mode 1.heading.size" {
				t.Errorf("DotPath() = %q", got)
			}
		})
	}
}

func TestJSONParser_ParseFileMissing(t *testing.T) {
	_, err := parser.NewJSONParser().ParseFile(mapfs.New(), "/nope/export.json")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
