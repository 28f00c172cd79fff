/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package data renders glyphs as JSON, YAML, or TOML manifests for build
// pipelines that generate their own code.
package data

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/faenum/emit/formatter"
)

// Encoding selects the manifest serialization.
type Encoding string

const (
	// EncodingJSON produces indented JSON.
	EncodingJSON Encoding = "json"
	// EncodingYAML produces YAML.
	EncodingYAML Encoding = "yaml"
	// EncodingTOML produces TOML with one [[glyphs]] table per member.
	EncodingTOML Encoding = "toml"
)

// Manifest is the serialized document.
type Manifest struct {
	Version         string  `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
	PrefixAttribute string  `json:"prefixAttribute,omitempty" yaml:"prefixAttribute,omitempty" toml:"prefixAttribute,omitempty"`
	Glyphs          []Entry `json:"glyphs" yaml:"glyphs" toml:"glyphs"`
}

// Entry is one emitted member.
type Entry struct {
	Name      string   `json:"name" yaml:"name" toml:"name"`
	Key       string   `json:"key" yaml:"key" toml:"key"`
	Code      string   `json:"code" yaml:"code" toml:"code"`
	Prefixes  []string `json:"prefixes,omitempty" yaml:"prefixes,omitempty" toml:"prefixes,omitempty"`
	Secondary bool     `json:"secondary,omitempty" yaml:"secondary,omitempty" toml:"secondary,omitempty"`
}

// Formatter outputs a data manifest.
type Formatter struct {
	encoding Encoding
}

// New creates a manifest formatter for the given encoding.
func New(encoding Encoding) *Formatter {
	return &Formatter{encoding: encoding}
}

// Build converts a document to its manifest. Prefixes are included only
// when a prefix attribute is configured.
func Build(doc formatter.Document, opts formatter.Options) Manifest {
	m := Manifest{
		Version:         doc.Version,
		PrefixAttribute: opts.PrefixAttribute,
		Glyphs:          []Entry{},
	}
	for _, member := range doc.Members() {
		entry := Entry{
			Name:      member.Identifier,
			Key:       member.RawKey,
			Code:      member.HexCode,
			Secondary: member.Secondary,
		}
		if opts.PrefixAttribute != "" {
			entry.Prefixes = member.Prefixes
		}
		m.Glyphs = append(m.Glyphs, entry)
	}
	return m
}

// Format serializes the document's manifest.
func (f *Formatter) Format(doc formatter.Document, opts formatter.Options) ([]byte, error) {
	manifest := Build(doc, opts)

	switch f.encoding {
	case EncodingJSON:
		out, err := json.MarshalIndent(manifest, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil

	case EncodingYAML:
		var buf bytes.Buffer
		buf.WriteString(formatter.FormatHeader(opts.Header, formatter.HashComments))
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(manifest); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	case EncodingTOML:
		var buf bytes.Buffer
		buf.WriteString(formatter.FormatHeader(opts.Header, formatter.HashComments))
		if err := toml.NewEncoder(&buf).Encode(manifest); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("unsupported manifest encoding: %s", f.encoding)
	}
}
