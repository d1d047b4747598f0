/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/token"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// JSONParser parses JSON (with comments) and YAML token documents into an
// ordered tree. JSON is read with encoding/json and YAML with yaml.v3; both
// are walked as yaml.v3 nodes, which keep mapping key order.
type JSONParser struct{}

// NewJSONParser creates a new document parser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse parses JSON or YAML document data.
//
// A root array becomes one document element per index. A root object is
// read as a single-element document.
func (p *JSONParser) Parse(data []byte) (*token.Document, error) {
	top, err := decodeRoot(data)
	if err != nil {
		return nil, err
	}

	doc := &token.Document{}
	switch top.Kind {
	case yaml.SequenceNode:
		for _, el := range top.Content {
			el = resolveAlias(el)
			if el.Kind != yaml.MappingNode {
				doc.Elements = append(doc.Elements, nil)
				continue
			}
			doc.Elements = append(doc.Elements, p.buildCategory(el, "", nil, true))
		}
	case yaml.MappingNode:
		doc.Elements = append(doc.Elements, p.buildCategory(top, "", nil, true))
	default:
		return nil, ErrUnsupportedRoot
	}

	return doc, nil
}

// ParseFile reads and parses a document file.
func (p *JSONParser) ParseFile(filesystem fs.FileSystem, path string) (*token.Document, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	doc, err := p.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}

	return doc, nil
}

// decodeRoot returns the top-level node of data. Comments are stripped
// before sniffing so a leading comment still reads as JSON.
func decodeRoot(data []byte) (*yaml.Node, error) {
	if cleaned := jsonc.ToJSON(data); isLikelyJSON(cleaned) {
		top, err := decodeJSON(bytes.TrimPrefix(cleaned, utf8BOM))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
		return top, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidDocument)
	}
	return resolveAlias(root.Content[0]), nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' or '[' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{', '[':
			return true
		default:
			return false
		}
	}
	return false
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// buildCategory converts a mapping node into a category, classifying each
// child as token (object with $value), category (any other object), or
// scalar. For a document element, child categories are sections and paths
// restart below them.
func (p *JSONParser) buildCategory(node *yaml.Node, name string, path []string, element bool) *token.Category {
	c := token.NewCategory(name, path)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value := resolveAlias(node.Content[i+1])

		if token.IsMetadata(key) {
			switch key {
			case "$type":
				c.Type = value.Value
			case "$description":
				c.Description = value.Value
			}
			continue
		}

		// Clip to prevent child appends from sharing the parent's backing array
		childPath := slices.Clip(append(path, key))

		if value.Kind != yaml.MappingNode {
			v := decodeValue(value)
			c.Set(token.Entry{Key: key, Scalar: &v})
			continue
		}

		if valueNode := mappingValue(value, "$value"); valueNode != nil {
			c.Set(token.Entry{Key: key, Token: p.buildToken(key, value, valueNode, childPath)})
			continue
		}

		if element {
			childPath = nil
		}
		c.Set(token.Entry{Key: key, Category: p.buildCategory(value, key, childPath, false)})
	}

	return c
}

func (p *JSONParser) buildToken(key string, node, valueNode *yaml.Node, path []string) *token.Token {
	t := &token.Token{
		Key:   key,
		Value: decodeValue(valueNode),
		Path:  path,
	}
	if typeNode := mappingValue(node, "$type"); typeNode != nil && typeNode.Kind == yaml.ScalarNode {
		t.Type = typeNode.Value
	}
	if descNode := mappingValue(node, "$description"); descNode != nil && descNode.Kind == yaml.ScalarNode {
		t.Description = descNode.Value
	}
	return t
}

// mappingValue returns the value node for key in a mapping node. When a key
// repeats, the last occurrence wins.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	var found *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			found = resolveAlias(node.Content[i+1])
		}
	}
	return found
}

// decodeValue converts a $value node into a token.Value, keeping numeric
// literals as written.
func decodeValue(n *yaml.Node) token.Value {
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return token.Value{}
		case "!!int", "!!float":
			return token.Number(n.Value)
		case "!!bool":
			b, err := strconv.ParseBool(n.Value)
			if err != nil {
				var decoded bool
				if err := n.Decode(&decoded); err != nil {
					return token.String(n.Value)
				}
				b = decoded
			}
			return token.Bool(b)
		default:
			return token.String(n.Value)
		}
	case yaml.MappingNode, yaml.SequenceNode:
		return token.Composite(compactJSON(n))
	default:
		return token.Value{}
	}
}
