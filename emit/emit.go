/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package emit renders assembled glyph records in a target format.
package emit

import (
	"fmt"
	"strings"

	"bennypowers.dev/faenum/emit/formatter"
	"bennypowers.dev/faenum/emit/formatter/csharp"
	"bennypowers.dev/faenum/emit/formatter/data"
	"bennypowers.dev/faenum/emit/formatter/typescript"
)

// Format represents an output format.
type Format string

const (
	// FormatCSharp outputs a C# enum and character constants (default).
	FormatCSharp Format = "csharp"

	// FormatTypeScript outputs a TypeScript enum and an as-const object.
	FormatTypeScript Format = "typescript"

	// FormatJSON outputs a JSON glyph manifest.
	FormatJSON Format = "json"

	// FormatYAML outputs a YAML glyph manifest.
	FormatYAML Format = "yaml"

	// FormatTOML outputs a TOML glyph manifest.
	FormatTOML Format = "toml"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatCSharp),
		string(FormatTypeScript),
		string(FormatJSON),
		string(FormatYAML),
		string(FormatTOML),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csharp", "cs", "c#", "":
		return FormatCSharp, nil
	case "typescript", "ts":
		return FormatTypeScript, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s (valid: %s)", ErrUnknownFormat, s, strings.Join(ValidFormats(), ", "))
	}
}

// Extension returns the file extension for a format, without the dot.
func Extension(format Format) string {
	switch format {
	case FormatTypeScript:
		return "ts"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "cs"
	}
}

// DefaultOutput returns the output file name used when none is given.
func DefaultOutput(format Format, enumName string) string {
	if enumName == "" {
		enumName = formatter.DefaultOptions().EnumName
	}
	return enumName + "." + Extension(format)
}

// New returns the formatter for a format.
func New(format Format) (formatter.Formatter, error) {
	switch format {
	case FormatCSharp:
		return csharp.New(), nil
	case FormatTypeScript:
		return typescript.New(), nil
	case FormatJSON:
		return data.New(data.EncodingJSON), nil
	case FormatYAML:
		return data.New(data.EncodingYAML), nil
	case FormatTOML:
		return data.New(data.EncodingTOML), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// FormatRecords renders the document in the given format.
func FormatRecords(doc formatter.Document, format Format, opts formatter.Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	f, err := New(format)
	if err != nil {
		return nil, err
	}
	return f.Format(doc, opts)
}
