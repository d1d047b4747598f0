/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser provides design-token document parsing.
package parser

import (
	"errors"

	"bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/token"
)

// Sentinel errors for document parsing.
var (
	// ErrInvalidDocument indicates the input could not be parsed at all.
	ErrInvalidDocument = errors.New("invalid token document")

	// ErrUnsupportedRoot indicates the document root is neither an array nor an object.
	ErrUnsupportedRoot = errors.New("document root must be an array or an object")
)

// Parser parses design-token documents.
type Parser interface {
	// Parse parses document data.
	Parse(data []byte) (*token.Document, error)

	// ParseFile reads and parses a document file.
	ParseFile(filesystem fs.FileSystem, path string) (*token.Document, error)
}
