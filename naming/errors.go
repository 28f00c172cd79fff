/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package naming

import "errors"

// ErrBlankIdentifier indicates an empty or whitespace-only identifier source.
var ErrBlankIdentifier = errors.New("identifier source is empty or blank")
