/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"errors"
	"testing"

	"bennypowers.dev/faenum/internal/mapfs"
)

const faVariables = "npm:@fortawesome/fontawesome-free/less/_variables.less"

func TestLocalResolver_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		root     string
		spec     string
		expected string
	}{
		{"no root keeps relative", "", "./less/variables.less", "./less/variables.less"},
		{"no root keeps absolute", "", "/fa/less/_variables.less", "/fa/less/_variables.less"},
		{"relative joins root", "/project", "less/variables.less", "/project/less/variables.less"},
		{"dot segments cleaned", "/project", "./fa/../less/variables.less", "/project/less/variables.less"},
		{"absolute ignores root", "/project", "/fa/less/_variables.less", "/fa/less/_variables.less"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rf, err := NewLocalResolver(tt.root).Resolve(tt.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rf.Specifier != tt.spec || rf.Path != tt.expected || rf.Kind != KindLocal {
				t.Errorf("Resolve(%q) = %+v, expected path %q", tt.spec, rf, tt.expected)
			}
		})
	}
}

func TestLocalResolver_CanResolve(t *testing.T) {
	resolver := NewLocalResolver("")

	if !resolver.CanResolve("./variables.less") {
		t.Error("expected CanResolve to return true for local path")
	}
	if resolver.CanResolve(faVariables) {
		t.Error("expected CanResolve to return false for npm specifier")
	}
	if resolver.CanResolve("https://example.com/variables.less") {
		t.Error("expected CanResolve to return false for URL")
	}
}

func TestNPMResolver(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/node_modules/@fortawesome/fontawesome-free/less/_variables.less", "@fa-version: \"5.15.4\";", 0644)
	mfs.AddFile("/project/node_modules/font-awesome/less/variables.less", "@fa-version: \"4.7.0\";", 0644)
	mfs.AddDir("/project/src/app", 0755)

	tests := []struct {
		name     string
		root     string
		spec     string
		expected string
	}{
		{"scoped", "/project", faVariables, "/project/node_modules/@fortawesome/fontawesome-free/less/_variables.less"},
		{"unscoped", "/project", "npm:font-awesome/less/variables.less", "/project/node_modules/font-awesome/less/variables.less"},
		{"versioned", "/project", "npm:font-awesome@4.7.0/less/variables.less", "/project/node_modules/font-awesome/less/variables.less"},
		{"walks up", "/project/src/app", faVariables, "/project/node_modules/@fortawesome/fontawesome-free/less/_variables.less"},
		{"package directory", "/project", "npm:@fortawesome/fontawesome-free/less", "/project/node_modules/@fortawesome/fontawesome-free/less"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver, err := NewNPMResolver(mfs, tt.root)
			if err != nil {
				t.Fatalf("failed to create resolver: %v", err)
			}
			rf, err := resolver.Resolve(tt.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rf.Path != tt.expected {
				t.Errorf("Path = %q, want %q", rf.Path, tt.expected)
			}
			if rf.Kind != KindNPM {
				t.Errorf("Kind = %v, want KindNPM", rf.Kind)
			}
		})
	}
}

func TestNPMResolver_Errors(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddDir("/project", 0755)

	if _, err := NewNPMResolver(mfs, "relative"); err == nil {
		t.Error("expected error for relative rootDir")
	}

	resolver, err := NewNPMResolver(mfs, "/project")
	if err != nil {
		t.Fatalf("failed to create resolver: %v", err)
	}

	if _, err := resolver.Resolve(faVariables); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := resolver.Resolve("npm:pkg/../../../etc/passwd"); err == nil {
		t.Error("expected path traversal error")
	}
	if _, err := resolver.Resolve("variables.less"); err == nil {
		t.Error("expected error for non-npm specifier")
	}
	if !resolver.CanResolve(faVariables) || resolver.CanResolve("variables.less") {
		t.Error("unexpected CanResolve result")
	}
}

func TestDefaultResolver(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/node_modules/@fortawesome/fontawesome-free/less/_variables.less", "", 0644)

	resolver, err := NewDefaultResolver(mfs, "/project")
	if err != nil {
		t.Fatalf("failed to create resolver: %v", err)
	}

	npm, err := resolver.Resolve(faVariables)
	if err != nil || npm.Kind != KindNPM {
		t.Errorf("Resolve(npm) = %+v, %v", npm, err)
	}

	local, err := resolver.Resolve("less/variables.less")
	if err != nil || local.Kind != KindLocal || local.Path != "/project/less/variables.less" {
		t.Errorf("Resolve(local) = %+v, %v", local, err)
	}

	if _, err := resolver.Resolve("https://example.com/variables.less"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for URL, got %v", err)
	}
	if _, err := NewDefaultResolver(mfs, "relative"); err == nil {
		t.Error("expected error for relative rootDir")
	}
}
