/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"fmt"
	"strings"
)

// CDN names a package CDN used to fetch npm files over the network.
type CDN string

const (
	// CDNUnpkg serves files from unpkg.com (default).
	CDNUnpkg CDN = "unpkg"
	// CDNJsdelivr serves files from cdn.jsdelivr.net.
	CDNJsdelivr CDN = "jsdelivr"
)

// ValidCDNs returns all valid CDN names.
func ValidCDNs() []string {
	return []string{string(CDNUnpkg), string(CDNJsdelivr)}
}

// ParseCDN converts a string to a CDN.
func ParseCDN(s string) (CDN, error) {
	switch strings.ToLower(s) {
	case "unpkg":
		return CDNUnpkg, nil
	case "jsdelivr":
		return CDNJsdelivr, nil
	default:
		return "", fmt.Errorf("unknown cdn: %q (valid: %s)", s, strings.Join(ValidCDNs(), ", "))
	}
}

// CDNURL returns the CDN URL for an npm: specifier. The zero CDN means unpkg.
// Returns ("", false) for other specifiers or specifiers without a file component.
func CDNURL(spec string, cdn CDN) (string, bool) {
	parsed := Parse(spec)
	if parsed.Kind != KindNPM || parsed.Package == "" || parsed.File == "" {
		return "", false
	}
	switch cdn {
	case CDNJsdelivr:
		return "https://cdn.jsdelivr.net/npm/" + parsed.Package + "/" + parsed.File, true
	case CDNUnpkg, "":
		return "https://unpkg.com/" + parsed.Package + "/" + parsed.File, true
	default:
		return "", false
	}
}
