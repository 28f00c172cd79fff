/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"fmt"
	"path/filepath"
	"strings"

	"bennypowers.dev/faenum/fs"
)

// NPMResolver resolves npm: specifiers to node_modules paths.
type NPMResolver struct {
	fs      fs.FileSystem
	rootDir string
}

// NewNPMResolver creates a resolver for npm: package specifiers.
// The rootDir is the starting directory for node_modules lookup and must be
// absolute, since in-memory filesystems have no working directory.
func NewNPMResolver(filesystem fs.FileSystem, rootDir string) (*NPMResolver, error) {
	if !filepath.IsAbs(rootDir) {
		return nil, fmt.Errorf("rootDir must be an absolute path, got: %s", rootDir)
	}
	return &NPMResolver{
		fs:      filesystem,
		rootDir: rootDir,
	}, nil
}

// Resolve walks up from rootDir looking for the package in node_modules.
// A version suffix on the package name is ignored locally.
func (r *NPMResolver) Resolve(spec string) (*ResolvedFile, error) {
	parsed := Parse(spec)
	if parsed.Kind != KindNPM {
		return nil, fmt.Errorf("not an npm specifier: %s", spec)
	}
	pkg := stripVersion(parsed.Package)

	dir := r.rootDir
	for {
		base := filepath.Join(dir, "node_modules")
		candidate := filepath.Clean(filepath.Join(base, pkg, parsed.File))
		if !isInsideDir(candidate, base) {
			return nil, fmt.Errorf("path traversal detected in specifier: %s", spec)
		}
		if r.fs.Exists(candidate) {
			return &ResolvedFile{
				Specifier: spec,
				Path:      candidate,
				Kind:      KindNPM,
			}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, fmt.Errorf("%w: package %s (looked in node_modules starting from %s)", ErrNotFound, pkg, r.rootDir)
}

// CanResolve returns true for npm: specifiers.
func (r *NPMResolver) CanResolve(spec string) bool {
	return strings.HasPrefix(spec, "npm:")
}

// stripVersion removes an @version suffix: "@scope/pkg@1.2.3" -> "@scope/pkg".
func stripVersion(pkg string) string {
	start := 0
	if strings.HasPrefix(pkg, "@") {
		start = 1
	}
	if i := strings.Index(pkg[start:], "@"); i >= 0 {
		return pkg[:start+i]
	}
	return pkg
}

// isInsideDir reports whether path is dir or below it.
func isInsideDir(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
