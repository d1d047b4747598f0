/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "strings"

// MetadataPrefix marks keys that are never traversed as tokens or categories.
const MetadataPrefix = "$"

// IsMetadata reports whether key is a metadata key such as $type.
func IsMetadata(key string) bool {
	return strings.HasPrefix(key, MetadataPrefix)
}

// Entry is one keyed child of a Category. Exactly one of Token,
// Category or Scalar is set.
type Entry struct {
	Key      string
	Token    *Token
	Category *Category

	// Scalar holds a non-object child, which is neither a token nor a category.
	Scalar *Value
}

// Category is an ordered group of tokens and nested categories.
// Entries keep document key order.
type Category struct {
	// Name is the category's own key, empty for a section root.
	Name string `json:"-"`

	// Description is optional documentation for the category.
	Description string `json:"$description,omitempty"`

	// Type is the category's $type, if any. Tokens do not inherit it.
	Type string `json:"$type,omitempty"`

	// Path is the key path from the section root.
	Path []string `json:"-"`

	entries []Entry
	index   map[string]int
}

// NewCategory creates an empty category.
func NewCategory(name string, path []string) *Category {
	return &Category{
		Name:  name,
		Path:  path,
		index: make(map[string]int),
	}
}

// Set adds or replaces the entry for e.Key. A replaced key keeps its
// original position, matching how a JSON object with duplicate keys reads.
// Metadata keys are ignored.
func (c *Category) Set(e Entry) {
	if IsMetadata(e.Key) {
		return
	}
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[e.Key]; ok {
		c.entries[i] = e
		return
	}
	c.index[e.Key] = len(c.entries)
	c.entries = append(c.entries, e)
}

// Entries returns the non-metadata children in document order.
func (c *Category) Entries() []Entry {
	if c == nil {
		return nil
	}
	return c.entries
}

// Get returns the entry for key.
func (c *Category) Get(key string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	i, ok := c.index[key]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Category returns the nested category at key. It reports false when the
// key is absent or holds a token or scalar.
func (c *Category) Category(key string) (*Category, bool) {
	e, ok := c.Get(key)
	if !ok || e.Category == nil {
		return nil, false
	}
	return e.Category, true
}

// Token returns the token at key.
func (c *Category) Token(key string) (*Token, bool) {
	e, ok := c.Get(key)
	if !ok || e.Token == nil {
		return nil, false
	}
	return e.Token, true
}

// Lookup walks nested categories along path.
func (c *Category) Lookup(path ...string) (*Category, bool) {
	cur := c
	for _, key := range path {
		next, ok := cur.Category(key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, cur != nil
}
