/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package naming

import "unicode"

var startTables = []*unicode.RangeTable{
	unicode.Lu,
	unicode.Ll,
	unicode.Lt,
	unicode.Lm,
	unicode.Lo,
	unicode.Nl,
}

var partTables = []*unicode.RangeTable{
	unicode.Lu,
	unicode.Ll,
	unicode.Lt,
	unicode.Lm,
	unicode.Lo,
	unicode.Nl,
	unicode.Mn,
	unicode.Mc,
	unicode.Nd,
	unicode.Pc,
	unicode.Cf,
}

// IsIdentifierStart reports whether r may begin an identifier: a letter,
// a letter number, or an underscore.
func IsIdentifierStart(r rune) bool {
	return r == '_' || unicode.In(r, startTables...)
}

// IsIdentifierPart reports whether r may appear after the first character
// of an identifier.
func IsIdentifierPart(r rune) bool {
	return unicode.In(r, partTables...)
}
