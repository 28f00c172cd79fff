/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package emit

import "errors"

// ErrUnknownFormat indicates an output format name was not recognized.
var ErrUnknownFormat = errors.New("unknown format")
