/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package list

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/faenum/glyph"
)

var records = []glyph.Record{
	{Identifier: "ArrowLeft", HexCode: "f060", RawKey: "arrow-left", Prefixes: []string{"solid"}},
	{Identifier: "ArrowRight", HexCode: "f061", RawKey: "arrow-right", Prefixes: []string{"solid"}, HasSecondary: true},
	{Identifier: "Bath", HexCode: "f2cd", RawKey: "bath"},
	{Identifier: "Github", HexCode: "f09b", RawKey: "github", Prefixes: []string{"brands"}},
}

func TestFilterRecords(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		expected int
	}{
		{"no filter", "", 4},
		{"prefix glob", "arrow-*", 2},
		{"exact", "bath", 1},
		{"character class", "[bg]*", 2},
		{"no match", "zzz*", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterRecords(records, tt.pattern)
			if len(got) != tt.expected {
				t.Errorf("filterRecords(%q) returned %d records, expected %d", tt.pattern, len(got), tt.expected)
			}
		})
	}
}

func TestOutputTable(t *testing.T) {
	var buf bytes.Buffer
	if err := outputTable(&buf, records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines (one per member), got %d:\n%s", len(lines), buf.String())
	}
	if fields := strings.Fields(lines[2]); len(fields) != 4 || fields[0] != "ArrowRightSecondary" || fields[1] != "10f061" {
		t.Errorf("unexpected secondary row: %q", lines[2])
	}
	if fields := strings.Fields(lines[3]); fields[3] != "-" {
		t.Errorf("expected '-' for no prefixes, got %q", lines[3])
	}
}

func TestOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := outputJSON(&buf, records[:1]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != 1 || got[0]["name"] != "ArrowLeft" || got[0]["key"] != "arrow-left" || got[0]["code"] != "f060" {
		t.Errorf("unexpected JSON: %s", buf.String())
	}

	buf.Reset()
	if err := outputJSON(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("expected empty array, got %q", buf.String())
	}
}

func TestOutputYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := outputYAML(&buf, records[1:2]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []glyph.Record
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if len(got) != 1 || got[0].Identifier != "ArrowRight" || !got[0].HasSecondary {
		t.Errorf("unexpected YAML:\n%s", buf.String())
	}
}
