/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import "errors"

// ErrUnknownEncoding indicates an unsupported input encoding name.
var ErrUnknownEncoding = errors.New("unknown encoding")
