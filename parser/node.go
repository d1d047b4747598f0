/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokencss/token"
)

// decodeJSON reads a single JSON value into a yaml.Node tree, so JSON and
// YAML documents share one ordered walk. Numbers keep their literal text.
func decodeJSON(data []byte) (*yaml.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	top, err := readJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			return nil, errors.New("unexpected data after top-level value")
		}
		return nil, err
	}
	return top, nil
}

func readJSONValue(dec *json.Decoder) (*yaml.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key %v is not a string", keyTok)
				}
				value, err := readJSONValue(dec)
				if err != nil {
					return nil, err
				}
				n.Content = append(n.Content, scalarNode("!!str", key), value)
			}
			return n, closeDelim(dec)
		case '[':
			n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for dec.More() {
				value, err := readJSONValue(dec)
				if err != nil {
					return nil, err
				}
				n.Content = append(n.Content, value)
			}
			return n, closeDelim(dec)
		}
		return nil, fmt.Errorf("unexpected %q", rune(v))
	case string:
		return scalarNode("!!str", v), nil
	case json.Number:
		if strings.ContainsAny(string(v), ".eE") {
			return scalarNode("!!float", string(v)), nil
		}
		return scalarNode("!!int", string(v)), nil
	case bool:
		return scalarNode("!!bool", strconv.FormatBool(v)), nil
	case nil:
		return scalarNode("!!null", "null"), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// closeDelim consumes the ']' or '}' ending the current array or object.
func closeDelim(dec *json.Decoder) error {
	_, err := dec.Token()
	return err
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// compactJSON renders an array or object node as compact JSON with keys in
// document order and no HTML escaping. Number literals are kept as written
// when they are valid JSON.
func compactJSON(n *yaml.Node) string {
	var buf bytes.Buffer
	writeJSON(&buf, n)
	return buf.String()
}

func writeJSON(buf *bytes.Buffer, n *yaml.Node) {
	n = resolveAlias(n)
	if n == nil {
		buf.WriteString("null")
		return
	}

	switch n.Kind {
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(buf, n.Content[i].Value)
			buf.WriteByte(':')
			writeJSON(buf, n.Content[i+1])
		}
		buf.WriteByte('}')
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSON(buf, item)
		}
		buf.WriteByte(']')
	case yaml.ScalarNode:
		v := decodeValue(n)
		switch v.Kind {
		case token.KindNull:
			buf.WriteString("null")
		case token.KindNumber:
			if json.Valid([]byte(v.Raw)) {
				buf.WriteString(v.Raw)
			} else {
				writeJSONString(buf, v.Raw)
			}
		case token.KindBool:
			buf.WriteString(v.Raw)
		default:
			writeJSONString(buf, v.Raw)
		}
	default:
		buf.WriteString("null")
	}
}

func writeJSONString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail
	_ = enc.Encode(s)
	// Drop the newline Encode appends
	buf.Truncate(buf.Len() - 1)
}
