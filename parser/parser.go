/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser extracts the version and glyph declarations from a
// Font Awesome variables.less file.
//
// Only two line shapes are recognized:
//
//	@fa-version: "4.7.0";
//	@fa-var-arrow-left: "\f060";
//
// Everything else is ignored.
package parser

import (
	"bennypowers.dev/faenum/fs"
	"bennypowers.dev/faenum/glyph"
)

const (
	// VersionMarker starts a version declaration line.
	VersionMarker = "@fa-version:"

	// VarMarker starts a glyph variable declaration line.
	VarMarker = "@fa-var-"
)

// Options configures variables file parsing.
type Options struct {
	// Encoding names the input character encoding (e.g., "utf-8",
	// "windows-1252"). Empty means UTF-8. A byte order mark, when present,
	// overrides this setting.
	Encoding string
}

// SkipReason explains why a variable line was not recorded.
type SkipReason string

const (
	// SkipMissingColon marks a variable line without a ':' after its key.
	SkipMissingColon SkipReason = "missing ':' after variable name"

	// SkipInvalidValue marks a value that is not of the form "\<hex>";
	SkipInvalidValue SkipReason = `value is not of the form "\<hex>";`
)

// Skipped describes a variable line that was not recorded.
type Skipped struct {
	Line   int
	Text   string
	Reason SkipReason
}

// Result is the outcome of scanning a variables file.
type Result struct {
	// Version is the last declared version, unquoted.
	Version string

	// HasVersion reports whether any version line was seen.
	HasVersion bool

	// VersionDeclarations counts version lines. Later lines overwrite
	// earlier ones.
	VersionDeclarations int

	// Sources are the recognized declarations in file order.
	Sources []glyph.Source

	// Skipped lists variable lines that were not recognized.
	Skipped []Skipped
}

// Parser parses variables files.
type Parser interface {
	// Parse parses variables file content.
	Parse(data []byte, opts Options) (*Result, error)

	// ParseFile reads and parses a variables file.
	ParseFile(filesystem fs.FileSystem, path string, opts Options) (*Result, error)
}
