/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for glyph
// emitters.
package formatter

import (
	"errors"
	"fmt"
	"strings"

	"bennypowers.dev/faenum/glyph"
)

// ErrNothingToEmit indicates both the enumeration and the resource
// constants were disabled.
var ErrNothingToEmit = errors.New("enums and resources are both disabled")

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format renders the document in the target format.
	Format(doc Document, opts Options) ([]byte, error)
}

// Document is the data every formatter renders.
type Document struct {
	// Version is the Font Awesome version, empty if none was declared.
	Version string

	// Records are the assembled glyphs in emission order.
	Records []glyph.Record
}

// Members returns the emitted members in order.
func (d Document) Members() []glyph.Member {
	return glyph.Members(d.Records)
}

// Options configures formatter behavior.
type Options struct {
	// Enums emits the enumeration type.
	Enums bool

	// Resources emits the character constants container.
	Resources bool

	// PrefixAttribute names the annotation applied once per prefix.
	// Empty disables prefix annotations.
	PrefixAttribute string

	// Namespace wraps the generated types, where the target has namespaces.
	Namespace string

	// EnumName names the enumeration type.
	EnumName string

	// ResourceName names the constants container.
	ResourceName string

	// Header is optional text (e.g., a license) placed at the top as a comment.
	Header string

	// Generator identifies the producing tool in generated banners.
	Generator string
}

// DefaultOptions returns options matching the classic FontAwesomeEnum output.
func DefaultOptions() Options {
	return Options{
		Enums:        true,
		Resources:    true,
		Namespace:    "FontAwesome",
		EnumName:     "FontAwesomeEnum",
		ResourceName: "FontAwesomeResource",
	}
}

// Validate reports option combinations no formatter can honor.
func (o Options) Validate() error {
	if !o.Enums && !o.Resources {
		return ErrNothingToEmit
	}
	return nil
}

// Title returns the summary line for the enumeration type.
func Title(version string) string {
	if version == "" {
		return "Font Awesome Resources."
	}
	return "Font Awesome Resources V" + version
}

// Summary returns the documentation line for a member.
func Summary(m glyph.Member) string {
	if m.Secondary {
		return fmt.Sprintf("fa-%s duotone secondary glyph (%s).", m.RawKey, m.HexCode)
	}
	return fmt.Sprintf("fa-%s glyph (%s).", m.RawKey, m.HexCode)
}

// CommentStyle describes how a target language writes comments.
type CommentStyle struct {
	// LinePrefix starts a single-line comment (e.g., "// ").
	LinePrefix string

	// BlockStart, BlockLinePrefix and BlockEnd form a block comment.
	// An empty BlockStart means multi-line headers use LinePrefix.
	BlockStart      string
	BlockLinePrefix string
	BlockEnd        string
}

var (
	// CStyleComments are used by C# and TypeScript.
	CStyleComments = CommentStyle{LinePrefix: "// ", BlockStart: "/*", BlockLinePrefix: " * ", BlockEnd: " */"}

	// HashComments are used by YAML and TOML.
	HashComments = CommentStyle{LinePrefix: "# "}
)

// FormatHeader renders header as a comment followed by a blank line.
// Empty headers render as nothing.
func FormatHeader(header string, style CommentStyle) string {
	header = strings.TrimRight(header, "\r\n")
	if strings.TrimSpace(header) == "" {
		return ""
	}

	lines := strings.Split(strings.ReplaceAll(header, "\r\n", "\n"), "\n")
	var sb strings.Builder
	if len(lines) == 1 || style.BlockStart == "" {
		for _, line := range lines {
			sb.WriteString(strings.TrimRight(style.LinePrefix+line, " "))
			sb.WriteByte('\n')
		}
	} else {
		sb.WriteString(style.BlockStart + "\n")
		for _, line := range lines {
			sb.WriteString(strings.TrimRight(style.BlockLinePrefix+line, " "))
			sb.WriteByte('\n')
		}
		sb.WriteString(style.BlockEnd + "\n")
	}
	sb.WriteByte('\n')
	return sb.String()
}
