/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validate

import (
	"bytes"
	"strings"
	"testing"

	"bennypowers.dev/faenum/assemble"
	"bennypowers.dev/faenum/generate"
	"bennypowers.dev/faenum/glyph"
	"bennypowers.dev/faenum/parser"
)

func TestReport(t *testing.T) {
	result := &generate.Result{
		Version:    "4.7.0",
		HasVersion: true,
		Records:    []glyph.Record{{Identifier: "Adjust"}, {Identifier: "Adjust"}},
		Skipped: []parser.Skipped{
			{Line: 19, Text: `@fa-var-broken "\f000";`, Reason: parser.SkipMissingColon},
		},
		Collisions: []assemble.Collision{
			{Identifier: "Adjust", RawKeys: []string{"adjust", "Adjust"}},
		},
	}

	t.Run("verbose", func(t *testing.T) {
		var buf bytes.Buffer
		problems := report(&buf, "variables.less", result, false)
		if problems != 2 {
			t.Errorf("report() = %d, expected 2", problems)
		}

		out := buf.String()
		for _, want := range []string{
			"variables.less:19: missing ':' after variable name",
			"identifier Adjust is produced by adjust, Adjust",
			"2 glyphs, version 4.7.0, 2 problem(s)",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, out)
			}
		}
	})

	t.Run("quiet omits summary", func(t *testing.T) {
		var buf bytes.Buffer
		report(&buf, "variables.less", result, true)
		if strings.Contains(buf.String(), "glyphs, version") {
			t.Errorf("expected no summary, got:\n%s", buf.String())
		}
	})

	t.Run("clean file without version", func(t *testing.T) {
		var buf bytes.Buffer
		problems := report(&buf, "v.less", &generate.Result{Records: []glyph.Record{{Identifier: "A"}}}, false)
		if problems != 0 {
			t.Errorf("report() = %d, expected 0", problems)
		}
		if buf.String() != "v.less: 1 glyphs, version none, 0 problem(s)\n" {
			t.Errorf("unexpected output %q", buf.String())
		}
	})
}
