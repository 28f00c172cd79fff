/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading and option resolution for
// faenum.
package config

import (
	"slices"

	"bennypowers.dev/faenum/emit"
	"bennypowers.dev/faenum/emit/formatter"
	"bennypowers.dev/faenum/load"
	"bennypowers.dev/faenum/specifier"
)

// Config represents the faenum configuration file. Unset fields fall
// through to environment variables and defaults.
type Config struct {
	// Input is the variables file to read.
	Input string `yaml:"input" json:"input"`

	// Output is the file to write.
	Output string `yaml:"output" json:"output"`

	// PrefixAttribute names the annotation applied per prefix.
	PrefixAttribute string `yaml:"prefixAttribute" json:"prefixAttribute"`

	// SVGs is the prefix directory root.
	SVGs string `yaml:"svgs" json:"svgs"`

	// Enums emits the enumeration type.
	Enums *bool `yaml:"enums" json:"enums"`

	// Resources emits the character constants.
	Resources *bool `yaml:"resources" json:"resources"`

	// Duotone emits secondary members for solid glyphs.
	Duotone *bool `yaml:"duotone" json:"duotone"`

	// Format selects the emitter.
	Format string `yaml:"format" json:"format"`

	// Namespace wraps generated types.
	Namespace string `yaml:"namespace" json:"namespace"`

	// EnumName names the enumeration type.
	EnumName string `yaml:"enumName" json:"enumName"`

	// ResourceName names the constants container.
	ResourceName string `yaml:"resourceName" json:"resourceName"`

	// Header is comment text placed at the top of generated files.
	Header string `yaml:"header" json:"header"`

	// Encoding names the input character encoding.
	Encoding string `yaml:"encoding" json:"encoding"`

	// Culture is the BCP 47 tag used for identifier case mapping.
	Culture string `yaml:"culture" json:"culture"`

	// Extensions are the icon file extensions counted per prefix.
	Extensions []string `yaml:"extensions" json:"extensions"`

	// Fetch allows URL inputs and the CDN fallback for npm: inputs.
	Fetch *bool `yaml:"fetch" json:"fetch"`

	// CDN names the fallback CDN (unpkg or jsdelivr).
	CDN string `yaml:"cdn" json:"cdn"`
}

// Default returns a config with no values set.
func Default() *Config {
	return &Config{}
}

// Values returns the fields that are set, keyed by option name.
func (c *Config) Values() map[string]any {
	values := map[string]any{}
	if c == nil {
		return values
	}
	setString := func(name, value string) {
		if value != "" {
			values[name] = value
		}
	}
	setBool := func(name string, value *bool) {
		if value != nil {
			values[name] = *value
		}
	}

	setString(OptInput, c.Input)
	setString(OptOutput, c.Output)
	setString(OptPrefixAttribute, c.PrefixAttribute)
	setString(OptSVGs, c.SVGs)
	setBool(OptEnums, c.Enums)
	setBool(OptResources, c.Resources)
	setBool(OptDuotone, c.Duotone)
	setString(OptFormat, c.Format)
	setString(OptNamespace, c.Namespace)
	setString(OptEnumName, c.EnumName)
	setString(OptResourceName, c.ResourceName)
	setString(OptHeader, c.Header)
	setString(OptEncoding, c.Encoding)
	setString(OptCulture, c.Culture)
	if len(c.Extensions) > 0 {
		values[OptExtensions] = slices.Clone(c.Extensions)
	}
	setBool(OptFetch, c.Fetch)
	setString(OptCDN, c.CDN)
	return values
}

// Options are the resolved settings for a run.
type Options struct {
	Input           string
	Output          string
	PrefixAttribute string
	SVGs            string
	Enums           bool
	Resources       bool
	Duotone         bool
	Format          emit.Format
	Namespace       string
	EnumName        string
	ResourceName    string
	Header          string
	Encoding        string
	Culture         string
	Extensions      []string
	Fetch           bool
	CDN             specifier.CDN
	Help            bool
}

// EmitOptions returns the formatter options for these settings.
func (o *Options) EmitOptions() formatter.Options {
	return formatter.Options{
		Enums:           o.Enums,
		Resources:       o.Resources,
		PrefixAttribute: o.PrefixAttribute,
		Namespace:       o.Namespace,
		EnumName:        o.EnumName,
		ResourceName:    o.ResourceName,
		Header:          o.Header,
	}
}

// Fetcher returns an HTTP fetcher when fetching is enabled, nil otherwise.
func (o *Options) Fetcher() load.Fetcher {
	if !o.Fetch {
		return nil
	}
	return load.NewHTTPFetcher(load.DefaultMaxSize)
}
