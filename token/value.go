/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the JSON shape of a $value.
type Kind int

const (
	// KindNull is an absent or null value.
	KindNull Kind = iota

	// KindString is a JSON string.
	KindString

	// KindNumber is a JSON number. Raw holds its source literal.
	KindNumber

	// KindBool is a JSON boolean.
	KindBool

	// KindComposite is an array or object value.
	KindComposite
)

// Value is a token's $value with its source shape preserved.
type Value struct {
	Kind Kind

	// Raw is the value text: string contents, number literal, "true"/"false",
	// or compact JSON for arrays and objects, keys in document order.
	Raw string
}

// String returns a Value holding s.
func String(s string) Value {
	return Value{Kind: KindString, Raw: s}
}

// Number returns a Value holding the numeric literal lit.
func Number(lit string) Value {
	return Value{Kind: KindNumber, Raw: lit}
}

// Bool returns a Value holding b.
func Bool(b bool) Value {
	return Value{Kind: KindBool, Raw: strconv.FormatBool(b)}
}

// Composite returns a Value holding the compact JSON text of an array or
// object.
func Composite(raw string) Value {
	return Value{Kind: KindComposite, Raw: raw}
}

// IsNull reports whether the value is absent.
func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

// String renders the value as text. Numbers use the shortest decimal
// form that round-trips, so "1.50" becomes "1.5" and "1e3" becomes "1000".
func (v Value) String() string {
	switch v.Kind {
	case KindNull:
		return ""
	case KindNumber:
		return FormatNumber(v.Raw)
	default:
		return v.Raw
	}
}

// MarshalJSON encodes the value back to its JSON form.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNull:
		return []byte("null"), nil
	case KindString:
		return json.Marshal(v.Raw)
	case KindComposite:
		return []byte(v.Raw), nil
	default:
		return []byte(v.String()), nil
	}
}

// FormatNumber formats a numeric literal the way a JSON number prints
// when interpolated into text. Unparseable literals are returned as is.
func FormatNumber(lit string) string {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return lit
	}
	if f == 0 {
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		n, err := strconv.Atoi(exp)
		if err != nil {
			return s
		}
		return mantissa + "e" + signed(n)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func signed(n int) string {
	if n < 0 {
		return strconv.Itoa(n)
	}
	return "+" + strconv.Itoa(n)
}
