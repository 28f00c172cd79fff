/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generate

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bennypowers.dev/faenum/internal/logger"
	"bennypowers.dev/faenum/testutil"
)

func TestRun_Stdout(t *testing.T) {
	logger.SetOutput(io.Discard)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	dir := t.TempDir()
	input := filepath.Join(dir, "less", "variables.less")
	if err := os.MkdirAll(filepath.Dir(input), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(input, testutil.LoadFixtureFile(t, "fixtures/fa4/less/variables.less"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	Cmd.SetOut(&out)
	Cmd.SetArgs([]string{input, "-", "Prefix"})
	t.Cleanup(func() {
		Cmd.SetOut(nil)
		Cmd.SetArgs(nil)
	})

	if err := Cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := out.String()
	for _, want := range []string{
		"//     Generator: faenum ",
		"public enum FontAwesomeEnum",
		"_500px = 0xf26e",
		"public const char FontAwesome = '\\uf2b4';",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, s)
		}
	}
	if strings.Contains(s, "[Prefix(") {
		t.Error("expected no prefix annotations without a prefix directory")
	}
	if _, err := os.Stat(filepath.Join(dir, "FontAwesomeEnum.cs")); err == nil {
		t.Error("expected nothing written to disk")
	}
}

func TestRun_Help(t *testing.T) {
	logger.SetOutput(io.Discard)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	tests := []struct {
		name string
		env  string
		args []string
	}{
		{"no input", "", []string{}},
		{"help from environment", "true", []string{filepath.Join(t.TempDir(), "missing.less")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv("FAENUM_HELP", tt.env)
			}

			var out bytes.Buffer
			Cmd.SetOut(&out)
			Cmd.SetArgs(tt.args)
			t.Cleanup(func() {
				Cmd.SetOut(nil)
				Cmd.SetArgs(nil)
			})

			if err := Cmd.Execute(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(out.String(), "Usage:") {
				t.Errorf("expected usage, got:\n%s", out.String())
			}
		})
	}
}
