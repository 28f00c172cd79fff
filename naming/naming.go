/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package naming turns Font Awesome variable keys into display names and
// valid, readable identifiers.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Namer camelizes and normalizes names using the casing rules of a culture.
// A Namer is immutable and safe for concurrent use.
type Namer struct {
	tag language.Tag
}

var root = New(language.Und)

// New returns a Namer that uppercases according to tag.
func New(tag language.Tag) *Namer {
	return &Namer{tag: tag}
}

// Parse returns a Namer for a BCP 47 culture name such as "en" or "tr".
// An empty name selects the root culture.
func Parse(culture string) (*Namer, error) {
	if culture == "" {
		return root, nil
	}
	tag, err := language.Parse(culture)
	if err != nil {
		return nil, err
	}
	return New(tag), nil
}

// Default returns the root-culture Namer used by the package-level functions.
func Default() *Namer {
	return root
}

// Tag returns the culture used for uppercasing.
func (n *Namer) Tag() language.Tag {
	return n.tag
}

// Camelize converts a hyphen-separated key to a camel-cased display name
// using the root culture.
func Camelize(s string) string {
	return root.Camelize(s)
}

// Normalize converts text to a valid identifier using the root culture.
func Normalize(text string) (string, error) {
	return root.Normalize(text)
}

// Camelize uppercases the first character, drops every hyphen, and
// uppercases the first character following a run of hyphens. All other
// characters are copied verbatim.
func (n *Namer) Camelize(s string) string {
	if s == "" {
		return s
	}

	caser := n.caser()
	var sb strings.Builder
	sb.Grow(len(s))

	next := false
	for i, r := range s {
		if i == 0 {
			sb.WriteRune(upper(caser, r))
			continue
		}
		if r == '-' {
			next = true
			continue
		}
		if next {
			sb.WriteRune(upper(caser, r))
			next = false
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Normalize converts text to an identifier made only of identifier
// characters and underscores.
//
// A first character that cannot start an identifier is replaced by '_' and
// then examined again as an ordinary character. Spaces are dropped and
// capitalize the next identifier character. Any other invalid character
// becomes '_'. Blank input returns ErrBlankIdentifier.
func (n *Namer) Normalize(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrBlankIdentifier
	}

	caser := n.caser()
	var sb strings.Builder
	sb.Grow(len(text) + 1)

	rest := text
	first, size := utf8.DecodeRuneInString(text)
	if IsIdentifierStart(first) {
		sb.WriteRune(first)
		rest = text[size:]
	} else {
		sb.WriteByte('_')
	}

	nextUpper := false
	for _, r := range rest {
		switch {
		case IsIdentifierPart(r):
			if nextUpper {
				sb.WriteRune(upper(caser, r))
				nextUpper = false
			} else {
				sb.WriteRune(r)
			}
		case r == ' ':
			nextUpper = true
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String(), nil
}

func (n *Namer) caser() cases.Caser {
	return cases.Upper(n.tag)
}

// upper maps one rune to one rune. Culture mappings that expand a
// character (ß -> SS) fall back to the simple Unicode mapping.
func upper(caser cases.Caser, r rune) rune {
	s := caser.String(string(r))
	u, size := utf8.DecodeRuneInString(s)
	if size == len(s) && u != utf8.RuneError {
		return u
	}
	return unicode.ToUpper(r)
}
