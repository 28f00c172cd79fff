/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package prefix

import "errors"

var (
	// ErrIndexUnavailable indicates the icon directory does not exist.
	// The accompanying index is empty and usable.
	ErrIndexUnavailable = errors.New("prefix directory not found")

	// ErrInvalidExtension indicates an unusable icon extension.
	ErrInvalidExtension = errors.New("invalid icon extension")
)
