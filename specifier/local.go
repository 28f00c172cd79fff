/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import "path/filepath"

// LocalResolver resolves filesystem paths, anchoring relative ones at a
// root directory.
type LocalResolver struct {
	root string
}

// NewLocalResolver creates a resolver for filesystem paths. An empty root
// leaves paths as given.
func NewLocalResolver(root string) *LocalResolver {
	return &LocalResolver{root: root}
}

// Resolve joins a relative path to the root. Absolute paths, and every path
// when there is no root, pass through unchanged. The file need not exist.
func (r *LocalResolver) Resolve(spec string) (*ResolvedFile, error) {
	path := spec
	if r.root != "" && !filepath.IsAbs(spec) {
		path = filepath.Join(r.root, spec)
	}
	return &ResolvedFile{Specifier: spec, Path: path, Kind: KindLocal}, nil
}

// CanResolve reports whether spec is neither an npm: specifier nor a URL.
func (r *LocalResolver) CanResolve(spec string) bool {
	return Parse(spec).Kind == KindLocal
}
