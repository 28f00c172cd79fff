/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package glyph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSecondaryHex(t *testing.T) {
	tests := []struct {
		hex      string
		expected string
	}{
		{"f042", "10f042"},
		{"e000", "10e000"},
		{"f2b9", "10f2b9"},
		{"", "10"},
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			if got := SecondaryHex(tt.hex); got != tt.expected {
				t.Errorf("SecondaryHex(%q) = %q, expected %q", tt.hex, got, tt.expected)
			}
		})
	}
}

func TestRecord_Members(t *testing.T) {
	t.Run("primary only", func(t *testing.T) {
		r := Record{Identifier: "Adjust", HexCode: "f042", RawKey: "adjust"}
		want := []Member{{Identifier: "Adjust", HexCode: "f042", RawKey: "adjust"}}
		if diff := cmp.Diff(want, r.Members()); diff != "" {
			t.Errorf("Members() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("with secondary", func(t *testing.T) {
		r := Record{
			Identifier:   "Adjust",
			HexCode:      "f042",
			RawKey:       "adjust",
			Prefixes:     []string{"duotone", "solid"},
			HasSecondary: true,
		}
		want := []Member{
			{Identifier: "Adjust", HexCode: "f042", RawKey: "adjust", Prefixes: []string{"duotone", "solid"}},
			{Identifier: "AdjustSecondary", HexCode: "10f042", RawKey: "adjust", Prefixes: []string{"duotone", "solid"}, Secondary: true},
		}
		if diff := cmp.Diff(want, r.Members()); diff != "" {
			t.Errorf("Members() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestMembers_Order(t *testing.T) {
	records := []Record{
		{Identifier: "B", HexCode: "f002", RawKey: "b", HasSecondary: true},
		{Identifier: "A", HexCode: "f001", RawKey: "a"},
	}
	var got []string
	for _, m := range Members(records) {
		got = append(got, m.Identifier)
	}
	want := []string{"B", "BSecondary", "A"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("member order mismatch (-want +got):\n%s", diff)
	}
}
