/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"bennypowers.dev/faenum/fs"
	"bennypowers.dev/faenum/glyph"
	"bennypowers.dev/faenum/naming"
)

// LessParser scans Font Awesome variables.less files.
type LessParser struct {
	namer *naming.Namer
}

// NewLessParser creates a parser that camelizes keys with the root culture.
func NewLessParser() *LessParser {
	return &LessParser{namer: naming.Default()}
}

// NewLessParserWithNamer creates a parser that camelizes keys with namer.
func NewLessParserWithNamer(namer *naming.Namer) *LessParser {
	if namer == nil {
		namer = naming.Default()
	}
	return &LessParser{namer: namer}
}

// ParseFile reads and parses a variables file.
func (p *LessParser) ParseFile(filesystem fs.FileSystem, path string, opts Options) (*Result, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return p.Parse(data, opts)
}

// Parse decodes data and scans it line by line.
func (p *LessParser) Parse(data []byte, opts Options) (*Result, error) {
	text, err := decode(data, opts.Encoding)
	if err != nil {
		return nil, err
	}

	reader := bufio.NewReader(bytes.NewReader(text))
	res := &Result{}
	lineNo := 0
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			lineNo++
			p.scanLine(res, lineNo, line)
		}
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", lineNo+1, err)
		}
	}
}

// ParseLines scans already-split lines.
func (p *LessParser) ParseLines(lines []string) *Result {
	res := &Result{}
	for i, line := range lines {
		p.scanLine(res, i+1, line)
	}
	return res
}

func (p *LessParser) scanLine(res *Result, lineNo int, line string) {
	line = strings.TrimSpace(line)

	if value, ok := strings.CutPrefix(line, VersionMarker); ok {
		res.Version = unquoteVersion(strings.TrimSpace(value))
		res.HasVersion = true
		res.VersionDeclarations++
		return
	}

	if !strings.HasPrefix(line, VarMarker) {
		return
	}

	colon := strings.IndexByte(line, ':')
	if colon < len(VarMarker) {
		res.Skipped = append(res.Skipped, Skipped{Line: lineNo, Text: line, Reason: SkipMissingColon})
		return
	}

	key := line[len(VarMarker):colon]
	hex, ok := escapedValue(strings.TrimSpace(line[colon+1:]))
	if !ok {
		res.Skipped = append(res.Skipped, Skipped{Line: lineNo, Text: line, Reason: SkipInvalidValue})
		return
	}

	res.Sources = append(res.Sources, glyph.Source{
		RawKey:      key,
		HexCode:     hex,
		DisplayName: p.namer.Camelize(key),
		Line:        lineNo,
	})
}

// escapedValue extracts <hex> from a value of the form "\<hex>";
func escapedValue(value string) (string, bool) {
	const open, closing = `"\`, `";`
	if len(value) < len(open)+len(closing) ||
		!strings.HasPrefix(value, open) ||
		!strings.HasSuffix(value, closing) {
		return "", false
	}
	return value[len(open) : len(value)-len(closing)], true
}

// unquoteVersion strips a trailing ';' and a surrounding pair of double quotes.
func unquoteVersion(v string) string {
	v = strings.TrimSpace(strings.TrimSuffix(v, ";"))
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		return v[1 : len(v)-1]
	}
	return v
}
