/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package assemble joins parsed glyph declarations with the prefix index to
// produce the records handed to emitters.
package assemble

import (
	"fmt"

	"bennypowers.dev/faenum/glyph"
	"bennypowers.dev/faenum/naming"
	"bennypowers.dev/faenum/prefix"
)

// Options configures record assembly.
type Options struct {
	// Duotone requests a secondary member for every glyph found under the
	// solid prefix.
	Duotone bool

	// PrefixAttribute reports whether prefix annotations will be emitted.
	// When false, records carry no prefixes.
	PrefixAttribute bool

	// Namer normalizes identifiers. Defaults to naming.Default().
	Namer *naming.Namer
}

// Assemble returns one record per source, in source order.
// A nil index behaves as an empty one.
func Assemble(sources []glyph.Source, index *prefix.Index, opts Options) ([]glyph.Record, error) {
	namer := opts.Namer
	if namer == nil {
		namer = naming.Default()
	}

	records := make([]glyph.Record, 0, len(sources))
	for _, src := range sources {
		identifier, err := namer.Normalize(src.DisplayName)
		if err != nil {
			return nil, fmt.Errorf("glyph %q (line %d): %w", src.RawKey, src.Line, err)
		}

		record := glyph.Record{
			Identifier:   identifier,
			HexCode:      src.HexCode,
			RawKey:       src.RawKey,
			HasSecondary: opts.Duotone && index.Has(src.RawKey, glyph.SolidPrefix),
		}
		if opts.PrefixAttribute {
			record.Prefixes = index.Lookup(src.RawKey)
		}
		records = append(records, record)
	}
	return records, nil
}

// Collision reports identifiers produced by more than one record.
type Collision struct {
	Identifier string
	RawKeys    []string
}

// FindCollisions returns emitted member names shared by several glyphs,
// in order of first occurrence. Secondary members are included.
func FindCollisions(records []glyph.Record) []Collision {
	var order []string
	keys := make(map[string][]string)
	for _, m := range glyph.Members(records) {
		if _, ok := keys[m.Identifier]; !ok {
			order = append(order, m.Identifier)
		}
		keys[m.Identifier] = append(keys[m.Identifier], m.RawKey)
	}

	var collisions []Collision
	for _, id := range order {
		if len(keys[id]) > 1 {
			collisions = append(collisions, Collision{Identifier: id, RawKeys: keys[id]})
		}
	}
	return collisions
}
