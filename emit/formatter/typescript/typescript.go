/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package typescript renders glyphs as a TypeScript enum and an
// `as const` object of glyph strings.
package typescript

import (
	"fmt"
	"strings"

	"bennypowers.dev/faenum/emit/formatter"
	"bennypowers.dev/faenum/glyph"
)

// Formatter outputs a TypeScript ES module.
type Formatter struct{}

// New creates a new TypeScript formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts the document to a TypeScript module.
// Options.Namespace is ignored; the module is the namespace.
func (f *Formatter) Format(doc formatter.Document, opts formatter.Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString("// This file was generated by a tool. Do not edit.\n")
	if opts.Generator != "" {
		sb.WriteString("// Generator: " + opts.Generator + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(formatter.FormatHeader(opts.Header, formatter.CStyleComments))

	members := doc.Members()
	if opts.Enums {
		writeDoc(&sb, "", []string{formatter.Title(doc.Version)})
		fmt.Fprintf(&sb, "export enum %s {\n", opts.EnumName)
		for _, m := range members {
			writeMemberDoc(&sb, m, opts.PrefixAttribute)
			fmt.Fprintf(&sb, "  %s = 0x%s,\n", m.Identifier, m.HexCode)
		}
		sb.WriteString("}\n")
	}
	if opts.Enums && opts.Resources {
		sb.WriteString("\n")
	}
	if opts.Resources {
		writeDoc(&sb, "", []string{formatter.Title("")})
		fmt.Fprintf(&sb, "export const %s = {\n", opts.ResourceName)
		for _, m := range members {
			writeMemberDoc(&sb, m, opts.PrefixAttribute)
			fmt.Fprintf(&sb, "  %s: '\\u{%s}',\n", m.Identifier, m.HexCode)
		}
		sb.WriteString("} as const;\n")
	}
	return []byte(sb.String()), nil
}

func writeMemberDoc(sb *strings.Builder, m glyph.Member, attribute string) {
	lines := []string{formatter.Summary(m)}
	if attribute != "" {
		for _, p := range m.Prefixes {
			lines = append(lines, "@"+attribute+" "+p)
		}
	}
	writeDoc(sb, "  ", lines)
}

func writeDoc(sb *strings.Builder, indent string, lines []string) {
	sb.WriteString(indent + "/**\n")
	for _, line := range lines {
		sb.WriteString(indent + " * " + strings.ReplaceAll(line, "*/", "*\\/") + "\n")
	}
	sb.WriteString(indent + " */\n")
}
