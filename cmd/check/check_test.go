/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package check

import (
	"bytes"
	"errors"
	"testing"

	"bennypowers.dev/tokencss/resolver"
)

var sampleFindings = []resolver.Finding{
	{Severity: resolver.SeverityError, Selector: ".light-theme", Name: "color-bg", Message: "references --neutral-5 (from {global.neutral.5}), which is not declared", Suggestion: "neutral-50"},
	{Severity: resolver.SeverityWarning, Selector: ":root", Name: "typography-font-color-body", Message: "references --neutral-50, which is only declared in .light-theme"},
	{Severity: resolver.SeverityInfo, Selector: ".dark-theme", Name: "brand", Message: "resolves to the same color as .light-theme (#0055ff, distance 0.00)"},
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	report(&buf, "export.json", sampleFindings, false)

	expected := "error: .light-theme --color-bg: references --neutral-5 (from {global.neutral.5}), which is not declared (did you mean --neutral-50?)\n" +
		"warning: :root --typography-font-color-body: references --neutral-50, which is only declared in .light-theme\n" +
		"info: .dark-theme --brand: resolves to the same color as .light-theme (#0055ff, distance 0.00)\n" +
		"export.json: 1 error(s), 1 warning(s), 1 note(s)\n"
	if buf.String() != expected {
		t.Errorf("report mismatch.\n\nExpected:\n%s\nActual:\n%s", expected, buf.String())
	}
}

func TestReport_Quiet(t *testing.T) {
	var buf bytes.Buffer
	report(&buf, "export.json", sampleFindings, true)

	expected := "error: .light-theme --color-bg: references --neutral-5 (from {global.neutral.5}), which is not declared (did you mean --neutral-50?)\n"
	if buf.String() != expected {
		t.Errorf("quiet report = %q", buf.String())
	}
}

func TestReport_Clean(t *testing.T) {
	var buf bytes.Buffer
	report(&buf, "export.json", nil, false)
	if buf.String() != "export.json: no problems found.\n" {
		t.Errorf("clean report = %q", buf.String())
	}
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		name     string
		findings []resolver.Finding
		strict   bool
		wantErr  bool
	}{
		{name: "lenient with errors", findings: sampleFindings, strict: false},
		{name: "strict with errors", findings: sampleFindings, strict: true, wantErr: true},
		{name: "strict with warning only", findings: sampleFindings[1:2], strict: true, wantErr: true},
		{name: "strict with info only", findings: sampleFindings[2:], strict: true},
		{name: "strict clean", strict: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := verdict(tt.findings, tt.strict)
			if tt.wantErr != (err != nil) {
				t.Fatalf("verdict() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrFindings) {
				t.Errorf("expected ErrFindings, got %v", err)
			}
		})
	}
}
