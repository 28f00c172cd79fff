/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier parses input locations: local paths, npm package
// specifiers such as npm:@fortawesome/fontawesome-free/less/_variables.less,
// and http(s) URLs.
package specifier

import (
	"regexp"
	"strings"
)

// Kind indicates the type of specifier.
type Kind int

const (
	// KindLocal is a local file path.
	KindLocal Kind = iota
	// KindNPM is an npm package specifier.
	KindNPM
	// KindURL is an http or https URL.
	KindURL
)

func (k Kind) String() string {
	switch k {
	case KindNPM:
		return "npm"
	case KindURL:
		return "url"
	default:
		return "local"
	}
}

// Specifier represents a parsed input location.
type Specifier struct {
	// Kind is the type of specifier.
	Kind Kind

	// Package is the npm package name, with an optional version
	// (e.g., "@fortawesome/fontawesome-free@5.15.4").
	Package string

	// File is the file path within the package, or the local path.
	File string

	// Raw is the original specifier string.
	Raw string
}

// npmPattern matches npm:@scope/pkg/path, npm:pkg/path, or bare npm:pkg
var npmPattern = regexp.MustCompile(`^npm:(@[^/]+/[^/]+|[^/]+)(/.*)?$`)

// Parse parses a specifier string into a Specifier struct.
func Parse(spec string) *Specifier {
	if strings.HasPrefix(spec, "npm:") {
		matches := npmPattern.FindStringSubmatch(spec)
		if len(matches) == 3 {
			return &Specifier{
				Kind:    KindNPM,
				Package: matches[1],
				File:    strings.TrimPrefix(matches[2], "/"),
				Raw:     spec,
			}
		}
	}

	if IsURL(spec) {
		return &Specifier{Kind: KindURL, File: spec, Raw: spec}
	}

	return &Specifier{
		Kind: KindLocal,
		File: spec,
		Raw:  spec,
	}
}

// IsURL reports whether spec is an http or https URL.
func IsURL(spec string) bool {
	lower := strings.ToLower(spec)
	return strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "http://")
}

// IsPackageSpecifier returns true if the string is a valid npm specifier.
func IsPackageSpecifier(spec string) bool {
	return Parse(spec).Kind == KindNPM
}

// IsNPM returns true if this is an npm specifier.
func (s *Specifier) IsNPM() bool {
	return s.Kind == KindNPM
}

// IsURL returns true if this is a URL.
func (s *Specifier) IsURL() bool {
	return s.Kind == KindURL
}

// IsLocal returns true if this is a local file path.
func (s *Specifier) IsLocal() bool {
	return s.Kind == KindLocal
}
