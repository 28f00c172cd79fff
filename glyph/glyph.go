/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package glyph provides the glyph records that flow from the variables
// parser through the assembler to the emitters.
package glyph

// SolidPrefix is the style prefix that qualifies a glyph for a duotone
// secondary member.
const SolidPrefix = "solid"

// SecondarySuffix is appended to a glyph identifier to name its duotone
// secondary member.
const SecondarySuffix = "Secondary"

// secondaryCodePrefix is prepended, as text, to a primary hex code.
const secondaryCodePrefix = "10"

// Source is one variable declaration recognized in a variables file.
type Source struct {
	// RawKey is the dash-separated name after the variable marker
	// (e.g., "arrow-left").
	RawKey string `json:"key"`

	// HexCode is the codepoint as lowercase hex digits without a prefix.
	HexCode string `json:"code"`

	// DisplayName is the camel-cased RawKey (e.g., "ArrowLeft").
	DisplayName string `json:"displayName"`

	// Line is the 1-based line number of the declaration.
	Line int `json:"-"`
}

// Record is a Source ready for emission.
type Record struct {
	// Identifier is the normalized, language-safe member name.
	Identifier string `json:"name" yaml:"name"`

	// HexCode is the primary codepoint in hex.
	HexCode string `json:"code" yaml:"code"`

	// RawKey is the original variable key.
	RawKey string `json:"key" yaml:"key"`

	// Prefixes are the style prefixes to annotate, in first-seen order.
	Prefixes []string `json:"prefixes,omitempty" yaml:"prefixes,omitempty"`

	// HasSecondary reports whether a duotone secondary member is emitted.
	HasSecondary bool `json:"secondary,omitempty" yaml:"secondary,omitempty"`
}

// Member is a single emitted enum member or constant.
type Member struct {
	Identifier string
	HexCode    string
	RawKey     string
	Prefixes   []string
	Secondary  bool
}

// SecondaryHex derives the duotone secondary codepoint from a primary one.
// The derivation is textual: "f042" becomes "10f042".
func SecondaryHex(hex string) string {
	return secondaryCodePrefix + hex
}

// SecondaryIdentifier returns the identifier of the record's secondary member.
func (r Record) SecondaryIdentifier() string {
	return r.Identifier + SecondarySuffix
}

// Members expands the record into its primary member followed, when
// HasSecondary is set, by its secondary member.
func (r Record) Members() []Member {
	primary := Member{
		Identifier: r.Identifier,
		HexCode:    r.HexCode,
		RawKey:     r.RawKey,
		Prefixes:   r.Prefixes,
	}
	if !r.HasSecondary {
		return []Member{primary}
	}
	return []Member{primary, {
		Identifier: r.SecondaryIdentifier(),
		HexCode:    SecondaryHex(r.HexCode),
		RawKey:     r.RawKey,
		Prefixes:   r.Prefixes,
		Secondary:  true,
	}}
}

// Members flattens records into emission order.
func Members(records []Record) []Member {
	members := make([]Member, 0, len(records))
	for _, r := range records {
		members = append(members, r.Members()...)
	}
	return members
}
