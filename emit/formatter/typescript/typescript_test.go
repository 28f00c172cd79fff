/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package typescript_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/faenum/emit/formatter"
	"bennypowers.dev/faenum/emit/formatter/typescript"
	"bennypowers.dev/faenum/glyph"
)

func document() formatter.Document {
	return formatter.Document{
		Version: "5.15.4",
		Records: []glyph.Record{
			{Identifier: "_500px", HexCode: "f26e", RawKey: "500px", Prefixes: []string{"brands"}},
			{Identifier: "Adjust", HexCode: "f042", RawKey: "adjust", Prefixes: []string{"duotone", "solid"}, HasSecondary: true},
		},
	}
}

func TestFormat(t *testing.T) {
	opts := formatter.DefaultOptions()
	opts.PrefixAttribute = "prefix"

	out, err := typescript.New().Format(document(), opts)
	require.NoError(t, err)

	expected := `// This file was generated by a tool. Do not edit.

/**
 * Font Awesome Resources V5.15.4
 */
export enum FontAwesomeEnum {
  /**
   * fa-500px glyph (f26e).
   * @prefix brands
   */
  _500px = 0xf26e,
  /**
   * fa-adjust glyph (f042).
   * @prefix duotone
   * @prefix solid
   */
  Adjust = 0xf042,
  /**
   * fa-adjust duotone secondary glyph (10f042).
   * @prefix duotone
   * @prefix solid
   */
  AdjustSecondary = 0x10f042,
}

/**
 * Font Awesome Resources.
 */
export const FontAwesomeResource = {
  /**
   * fa-500px glyph (f26e).
   * @prefix brands
   */
  _500px: '\u{f26e}',
  /**
   * fa-adjust glyph (f042).
   * @prefix duotone
   * @prefix solid
   */
  Adjust: '\u{f042}',
  /**
   * fa-adjust duotone secondary glyph (10f042).
   * @prefix duotone
   * @prefix solid
   */
  AdjustSecondary: '\u{10f042}',
} as const;
`
	assert.Equal(t, expected, string(out))
}

func TestFormat_EnumsOnly(t *testing.T) {
	opts := formatter.DefaultOptions()
	opts.Resources = false
	opts.EnumName = "Glyph"

	out, err := typescript.New().Format(document(), opts)
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "export enum Glyph {\n")
	assert.NotContains(t, s, "as const")
	assert.NotContains(t, s, "@prefix")
	assert.True(t, strings.HasSuffix(s, "  AdjustSecondary = 0x10f042,\n}\n"))
}

func TestFormat_NothingToEmit(t *testing.T) {
	opts := formatter.DefaultOptions()
	opts.Enums = false
	opts.Resources = false

	_, err := typescript.New().Format(document(), opts)
	assert.ErrorIs(t, err, formatter.ErrNothingToEmit)
}
