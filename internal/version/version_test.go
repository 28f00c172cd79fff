/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"strings"
	"testing"
)

func TestFromTag(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		commit   string
		dirty    bool
		expected string
	}{
		{"tag and commit", "v1.2.0", "0123456789abcdef", false, "v1.2.0-0123456"},
		{"tag already carries commit", "v1.2.0-0123456", "0123456789abcdef", false, "v1.2.0-0123456"},
		{"short commit", "v1.2.0", "abc", false, "v1.2.0-abc"},
		{"dirty", "v1.2.0", "0123456789abcdef", true, "v1.2.0-0123456-dirty"},
		{"no commit", "v1.2.0", "", false, "v1.2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fromTag(tt.tag, tt.commit, tt.dirty); got != tt.expected {
				t.Errorf("fromTag(%q, %q, %v) = %q, expected %q", tt.tag, tt.commit, tt.dirty, got, tt.expected)
			}
		})
	}
}

func TestGenerator(t *testing.T) {
	got := Generator()
	if !strings.HasPrefix(got, "faenum ") {
		t.Errorf("Generator() = %q, expected faenum prefix", got)
	}
	if Info().Version != strings.TrimPrefix(got, "faenum ") {
		t.Errorf("Info().Version = %q does not match Generator() %q", Info().Version, got)
	}
}
