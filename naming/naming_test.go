/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package naming_test

import (
	"errors"
	"testing"

	"golang.org/x/text/language"

	"bennypowers.dev/faenum/naming"
)

func TestCamelize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"arrow-left", "ArrowLeft"},
		{"a", "A"},
		{"a--b", "AB"},
		{"", ""},
		{"500px", "500px"},
		{"arrow-alt-circle-down", "ArrowAltCircleDown"},
		{"trailing-", "Trailing"},
		{"keepCase-x", "KeepCaseX"},
		{"-lead", "-lead"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := naming.Camelize(tt.input)
			if result != tt.expected {
				t.Errorf("Camelize(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"500px", "_500px"},
		// Normalize keeps the first letter's case; "FontAwesome" comes from
		// camelizing first, see TestNormalize_CamelizedDisplayName.
		{"font awesome", "fontAwesome"},
		{"FontAwesome", "FontAwesome"},
		{"_private", "_private"},
		{"a-b", "a_b"},
		{"-x", "__x"},
		{"x y z", "xYZ"},
		{"a  b", "aB"},
		{"a -b", "a_B"},
		{"Ⅻ", "Ⅻ"},
		{"été", "été"},
		{"日本", "日本"},
		{"a.b", "a_b"},
		{" a", "_A"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := naming.Normalize(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("Normalize(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalize_Blank(t *testing.T) {
	for _, input := range []string{"", " ", "\t\n"} {
		_, err := naming.Normalize(input)
		if !errors.Is(err, naming.ErrBlankIdentifier) {
			t.Errorf("Normalize(%q) error = %v, expected ErrBlankIdentifier", input, err)
		}
	}
}

func TestNormalize_CamelizedDisplayName(t *testing.T) {
	result, err := naming.Normalize(naming.Camelize("font awesome"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "FontAwesome" {
		t.Errorf("expected FontAwesome, got %q", result)
	}
}

func TestNamer_Culture(t *testing.T) {
	turkish := naming.New(language.Turkish)

	if got := turkish.Camelize("i-i"); got != "İİ" {
		t.Errorf("Camelize with tr = %q, expected %q", got, "İİ")
	}

	got, err := turkish.Normalize("a i")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "aİ" {
		t.Errorf("Normalize with tr = %q, expected %q", got, "aİ")
	}

	if got := naming.Camelize("i-i"); got != "II" {
		t.Errorf("Camelize with root culture = %q, expected %q", got, "II")
	}
}

func TestParse(t *testing.T) {
	n, err := naming.Parse("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != naming.Default() {
		t.Error("expected empty culture to select the default namer")
	}

	n, err = naming.Parse("tr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Tag().String() != "tr" {
		t.Errorf("expected tag tr, got %v", n.Tag())
	}

	if _, err := naming.Parse("not a tag!"); err == nil {
		t.Error("expected error for malformed culture")
	}
}

func TestIdentifierClasses(t *testing.T) {
	tests := []struct {
		r     rune
		start bool
		part  bool
	}{
		{'a', true, true},
		{'Z', true, true},
		{'_', true, true},
		{'5', false, true},
		{'-', false, false},
		{' ', false, false},
		{'\u0301', false, true},
		{'\u200d', false, true},
		{'Ⅻ', true, true},
	}

	for _, tt := range tests {
		if got := naming.IsIdentifierStart(tt.r); got != tt.start {
			t.Errorf("IsIdentifierStart(%q) = %v, expected %v", tt.r, got, tt.start)
		}
		if got := naming.IsIdentifierPart(tt.r); got != tt.part {
			t.Errorf("IsIdentifierPart(%q) = %v, expected %v", tt.r, got, tt.part)
		}
	}
}
