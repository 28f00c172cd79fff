/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package prefix indexes which style prefixes each glyph key appears under,
// by scanning a directory of icon assets such as Font Awesome's svgs/ tree:
//
//	svgs/
//	  brands/500px.svg
//	  regular/address-book.svg
//	  solid/address-book.svg
//
// Each immediate subdirectory name is a prefix and each icon file's base
// name is a glyph key.
package prefix

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"bennypowers.dev/faenum/fs"
)

// Options configures index building.
type Options struct {
	// Extensions lists recognized icon file extensions, with or without a
	// leading dot. Matching is case-insensitive. Defaults to DefaultExtensions.
	Extensions []string
}

// DefaultExtensions returns the icon extensions recognized by default.
func DefaultExtensions() []string {
	return []string{"svg"}
}

// Index maps glyph keys to the prefixes they appear under.
// An Index is read-only once built.
type Index struct {
	keys     map[string][]string
	prefixes []string
}

// Empty returns an index with no entries.
func Empty() *Index {
	return &Index{keys: map[string][]string{}}
}

// Build scans root and returns the prefix index.
//
// When root does not exist or is not a directory, Build returns an empty
// index together with an error wrapping ErrIndexUnavailable. Callers may
// treat that case as non-fatal and continue with the empty index.
func Build(filesystem fs.FileSystem, root string, opts Options) (*Index, error) {
	patterns, err := extensionPatterns(opts.Extensions)
	if err != nil {
		return nil, err
	}

	if !fs.IsDir(filesystem, root) {
		return Empty(), fmt.Errorf("%w: %s", ErrIndexUnavailable, root)
	}

	entries, err := filesystem.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", root, err)
	}

	idx := Empty()
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		prefixName := entry.Name()
		dir := filepath.Join(root, prefixName)

		files, err := filesystem.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("reading prefix directory %s: %w", dir, err)
		}
		for _, file := range files {
			if file.IsDir() || !matchesAny(patterns, file.Name()) {
				continue
			}
			name := file.Name()
			idx.add(strings.TrimSuffix(name, filepath.Ext(name)), prefixName)
		}
	}
	return idx, nil
}

func (idx *Index) add(key, prefixName string) {
	existing := idx.keys[key]
	if slices.Contains(existing, prefixName) {
		return
	}
	idx.keys[key] = append(existing, prefixName)
	if !slices.Contains(idx.prefixes, prefixName) {
		idx.prefixes = append(idx.prefixes, prefixName)
	}
}

// Lookup returns a copy of the prefixes recorded for key, in the order
// their directories were scanned. It returns nil for unknown keys.
func (idx *Index) Lookup(key string) []string {
	if idx == nil {
		return nil
	}
	return slices.Clone(idx.keys[key])
}

// Has reports whether key was found under prefixName.
func (idx *Index) Has(key, prefixName string) bool {
	if idx == nil {
		return false
	}
	return slices.Contains(idx.keys[key], prefixName)
}

// Len returns the number of indexed keys.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.keys)
}

// Prefixes returns the distinct prefixes that contributed at least one key,
// in scan order.
func (idx *Index) Prefixes() []string {
	if idx == nil {
		return nil
	}
	return slices.Clone(idx.prefixes)
}

func extensionPatterns(extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions()
	}
	patterns := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "" {
			continue
		}
		pattern := "*." + ext
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidExtension, ext)
		}
		patterns = append(patterns, pattern)
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("%w: no extensions given", ErrInvalidExtension)
	}
	return patterns, nil
}

func matchesAny(patterns []string, name string) bool {
	name = strings.ToLower(name)
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
