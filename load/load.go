/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load provides a high-level API for loading token documents.
package load

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bennypowers.dev/tokencss/config"
	"bennypowers.dev/tokencss/convert"
	"bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/internal/logger"
	"bennypowers.dev/tokencss/parser"
	"bennypowers.dev/tokencss/token"
)

var (
	// ErrRead indicates that the document could not be read from disk.
	ErrRead = errors.New("read failed")

	// ErrFetch indicates that a remote document could not be fetched.
	ErrFetch = errors.New("fetch failed")
)

// Options configures how a document is loaded.
type Options struct {
	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Fetcher retrieves http(s) sources. Defaults to an HTTPFetcher
	// limited to DefaultMaxSize.
	Fetcher Fetcher

	// FetchTimeout is the maximum time to wait for a network fetch.
	// Defaults to DefaultTimeout when zero.
	FetchTimeout time.Duration

	// Parser builds the document tree. Defaults to the JSON/YAML parser.
	Parser parser.Parser

	// Now supplies the stylesheet timestamp for Stylesheet.
	// Defaults to time.Now.
	Now func() time.Time
}

// Load reads a token document from a file path or http(s) URL and parses it.
//
// Nothing is written; a failure at any step returns a wrapped error and no
// document.
func Load(ctx context.Context, source string, opts Options) (*token.Document, error) {
	content, err := readSource(ctx, source, opts)
	if err != nil {
		return nil, err
	}

	p := opts.Parser
	if p == nil {
		p = parser.NewJSONParser()
	}

	doc, err := p.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", source, err)
	}

	logger.Debug("loaded %s (%d bytes, %d elements)", source, len(content), len(doc.Elements))
	return doc, nil
}

// readSource returns the raw bytes of source.
func readSource(ctx context.Context, source string, opts Options) ([]byte, error) {
	if config.IsURL(source) {
		fetcher := opts.Fetcher
		if fetcher == nil {
			fetcher = NewHTTPFetcher(DefaultMaxSize)
		}
		timeout := opts.FetchTimeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}

		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		content, err := fetcher.Fetch(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFetch, err)
		}
		return content, nil
	}

	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	content, err := filesystem.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, source, err)
	}
	return content, nil
}

// Stylesheet resolves the configured input under rootDir, loads it and
// converts it with the configured section names, mode and unit.
func Stylesheet(ctx context.Context, cfg *config.Config, rootDir string, opts Options) (*convert.Stylesheet, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
		opts.FS = filesystem
	}

	input, err := cfg.ResolveInput(filesystem, rootDir)
	if err != nil {
		return nil, err
	}

	doc, err := Load(ctx, input, opts)
	if err != nil {
		return nil, err
	}

	return convert.Convert(doc, cfg.ConvertOptions(opts.Now)), nil
}
