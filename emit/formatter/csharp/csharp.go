/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package csharp renders glyphs as a C# enum and a static class of
// character constants.
package csharp

import (
	"fmt"
	"strings"

	"bennypowers.dev/faenum/emit/formatter"
	"bennypowers.dev/faenum/glyph"
)

const rule = "//------------------------------------------------------------------------------\n"

var (
	xmlEscaper    = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	stringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)
)

// Formatter outputs C# source.
type Formatter struct{}

// New creates a new C# formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts the document to a C# source file.
func (f *Formatter) Format(doc formatter.Document, opts formatter.Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var sb strings.Builder
	writeBanner(&sb, opts.Generator)
	sb.WriteString(formatter.FormatHeader(opts.Header, formatter.CStyleComments))

	indent := ""
	if opts.Namespace != "" {
		fmt.Fprintf(&sb, "namespace %s\n{\n", opts.Namespace)
		indent = "\t"
	}

	members := doc.Members()
	if opts.Enums {
		writeEnum(&sb, indent, doc.Version, members, opts)
	}
	if opts.Enums && opts.Resources {
		sb.WriteString("\n")
	}
	if opts.Resources {
		writeResources(&sb, indent, members, opts)
	}

	if opts.Namespace != "" {
		sb.WriteString("}\n")
	}
	return []byte(sb.String()), nil
}

func writeBanner(sb *strings.Builder, generator string) {
	sb.WriteString(rule)
	sb.WriteString("// <auto-generated>\n")
	sb.WriteString("//     This code was generated by a tool.\n")
	if generator != "" {
		sb.WriteString("//     Generator: " + generator + "\n")
	}
	sb.WriteString("//\n")
	sb.WriteString("//     Changes to this file may cause incorrect behavior and will be lost if\n")
	sb.WriteString("//     the code is regenerated.\n")
	sb.WriteString("// </auto-generated>\n")
	sb.WriteString(rule)
	sb.WriteString("\n")
}

func writeSummary(sb *strings.Builder, indent, text string) {
	sb.WriteString(indent + "/// <summary>\n")
	sb.WriteString(indent + "/// " + xmlEscaper.Replace(text) + "\n")
	sb.WriteString(indent + "/// </summary>\n")
}

func writeAttributes(sb *strings.Builder, indent string, m glyph.Member, attribute string) {
	if attribute == "" {
		return
	}
	for _, p := range m.Prefixes {
		fmt.Fprintf(sb, "%s[%s(\"%s\")]\n", indent, attribute, stringEscaper.Replace(p))
	}
}

func writeEnum(sb *strings.Builder, indent, version string, members []glyph.Member, opts formatter.Options) {
	writeSummary(sb, indent, formatter.Title(version))
	fmt.Fprintf(sb, "%spublic enum %s\n%s{\n", indent, opts.EnumName, indent)

	inner := indent + "\t"
	for i, m := range members {
		writeSummary(sb, inner, formatter.Summary(m))
		writeAttributes(sb, inner, m, opts.PrefixAttribute)
		fmt.Fprintf(sb, "%s%s = 0x%s", inner, m.Identifier, m.HexCode)
		if i < len(members)-1 {
			sb.WriteString(",\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(indent + "}\n")
}

func writeResources(sb *strings.Builder, indent string, members []glyph.Member, opts formatter.Options) {
	writeSummary(sb, indent, formatter.Title(""))
	fmt.Fprintf(sb, "%spublic static partial class %s\n%s{\n", indent, opts.ResourceName, indent)

	inner := indent + "\t"
	for i, m := range members {
		writeSummary(sb, inner, formatter.Summary(m))
		writeAttributes(sb, inner, m, opts.PrefixAttribute)
		sb.WriteString(inner + constant(m) + "\n")
		if i < len(members)-1 {
			sb.WriteString("\n")
		}
	}
	sb.WriteString(indent + "}\n")
}

// constant declares a char for BMP codepoints and a string for
// supplementary ones, which a C# char cannot hold.
func constant(m glyph.Member) string {
	if len(m.HexCode) <= 4 {
		return fmt.Sprintf("public const char %s = '\\u%s';", m.Identifier, padHex(m.HexCode, 4))
	}
	return fmt.Sprintf("public const string %s = \"\\U%s\";", m.Identifier, padHex(m.HexCode, 8))
}

func padHex(hex string, width int) string {
	if len(hex) >= width {
		return hex
	}
	return strings.Repeat("0", width-len(hex)) + hex
}
