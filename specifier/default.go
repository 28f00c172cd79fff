/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import "bennypowers.dev/faenum/fs"

// NewDefaultResolver creates a resolver chain that handles npm: and local
// paths. URLs are not resolvable to local paths.
// The rootDir is the starting directory for node_modules lookup and the
// anchor for relative local paths.
func NewDefaultResolver(filesystem fs.FileSystem, rootDir string) (Resolver, error) {
	npm, err := NewNPMResolver(filesystem, rootDir)
	if err != nil {
		return nil, err
	}
	return NewChainResolver(npm, NewLocalResolver(rootDir)), nil
}
