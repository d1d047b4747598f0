/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Document is an ordered sequence of top-level sections. Each element is
// the object found at one index of the exported array; a nil element
// marks an index that did not hold an object.
type Document struct {
	Elements []*Category
}

// Section returns the first category stored under name in any element.
func (d *Document) Section(name string) (*Category, bool) {
	if d == nil {
		return nil, false
	}
	for _, el := range d.Elements {
		if c, ok := el.Category(name); ok {
			return c, true
		}
	}
	return nil, false
}

// Has reports whether any element carries the key name, whatever its shape.
func (d *Document) Has(name string) bool {
	if d == nil {
		return false
	}
	for _, el := range d.Elements {
		if _, ok := el.Get(name); ok {
			return true
		}
	}
	return false
}
