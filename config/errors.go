/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import "errors"

// ErrMissingInput indicates no input file was given by any source.
var ErrMissingInput = errors.New("no input file given")
