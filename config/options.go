/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"fmt"
	"slices"

	"github.com/spf13/pflag"

	"bennypowers.dev/faenum/emit"
	"bennypowers.dev/faenum/emit/formatter"
	"bennypowers.dev/faenum/prefix"
	"bennypowers.dev/faenum/specifier"
)

// Option names, shared by flags, environment variables and config files.
const (
	OptInput           = "input"
	OptOutput          = "output"
	OptPrefixAttribute = "prefix-attribute"
	OptSVGs            = "svgs"
	OptEnums           = "enums"
	OptResources       = "resources"
	OptDuotone         = "duotone"
	OptFormat          = "format"
	OptNamespace       = "namespace"
	OptEnumName        = "enum-name"
	OptResourceName    = "resource-name"
	OptHeader          = "header"
	OptEncoding        = "encoding"
	OptCulture         = "culture"
	OptExtensions      = "extensions"
	OptFetch           = "fetch"
	OptCDN             = "cdn"
	OptHelp            = "help"
)

// Kind is the value type of an option.
type Kind int

const (
	// KindString holds a single string.
	KindString Kind = iota
	// KindBool holds a boolean switch.
	KindBool
	// KindStrings holds a list of strings.
	KindStrings
)

// Option describes one recognized setting.
type Option struct {
	Name      string
	Shorthand string
	Kind      Kind
	Default   any
	Usage     string
	Required  bool
}

// Table lists every recognized option with its kind and default.
var Table = []Option{
	{Name: OptInput, Kind: KindString, Default: "", Usage: "Font Awesome variables file", Required: true},
	{Name: OptOutput, Shorthand: "o", Kind: KindString, Default: "FontAwesomeEnum.cs", Usage: "Output file, or - for stdout"},
	{Name: OptPrefixAttribute, Shorthand: "p", Kind: KindString, Default: "", Usage: "Attribute emitted once per prefix (empty disables)"},
	{Name: OptSVGs, Kind: KindString, Default: "", Usage: "Prefix directory root (default <input>/../../svgs)"},
	{Name: OptEnums, Kind: KindBool, Default: true, Usage: "Emit the enumeration"},
	{Name: OptResources, Kind: KindBool, Default: true, Usage: "Emit the character constants"},
	{Name: OptDuotone, Kind: KindBool, Default: false, Usage: "Emit a secondary member for each solid glyph"},
	{Name: OptFormat, Shorthand: "f", Kind: KindString, Default: string(emit.FormatCSharp), Usage: "Output format (csharp, typescript, json, yaml, toml)"},
	{Name: OptNamespace, Kind: KindString, Default: formatter.DefaultOptions().Namespace, Usage: "Namespace for generated types (empty for none)"},
	{Name: OptEnumName, Kind: KindString, Default: formatter.DefaultOptions().EnumName, Usage: "Enumeration type name"},
	{Name: OptResourceName, Kind: KindString, Default: formatter.DefaultOptions().ResourceName, Usage: "Constants container name"},
	{Name: OptHeader, Kind: KindString, Default: "", Usage: "Comment text placed at the top of the output"},
	{Name: OptEncoding, Kind: KindString, Default: "utf-8", Usage: "Input character encoding"},
	{Name: OptCulture, Kind: KindString, Default: "und", Usage: "Culture for identifier case mapping (BCP 47)"},
	{Name: OptExtensions, Kind: KindStrings, Default: prefix.DefaultExtensions(), Usage: "Icon file extensions counted per prefix"},
	{Name: OptFetch, Kind: KindBool, Default: false, Usage: "Allow URL inputs and fetching npm: inputs that are not installed"},
	{Name: OptCDN, Kind: KindString, Default: string(specifier.CDNUnpkg), Usage: "CDN for fetched npm: inputs (unpkg, jsdelivr)"},
	{Name: OptHelp, Kind: KindBool, Default: false, Usage: "Show usage"},
}

// Lookup returns the table entry for name.
func Lookup(name string) (Option, bool) {
	i := slices.IndexFunc(Table, func(o Option) bool { return o.Name == name })
	if i < 0 {
		return Option{}, false
	}
	return Table[i], true
}

// optionAnnotation marks flags that carry a table option.
const optionAnnotation = "faenum_option"

// RegisterFlags adds the named options to flags using their table kind,
// shorthand and default.
func RegisterFlags(flags *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		opt, ok := Lookup(name)
		if !ok {
			return fmt.Errorf("unknown option: %s", name)
		}
		switch opt.Kind {
		case KindString:
			flags.StringP(opt.Name, opt.Shorthand, opt.Default.(string), opt.Usage)
		case KindBool:
			flags.BoolP(opt.Name, opt.Shorthand, opt.Default.(bool), opt.Usage)
		case KindStrings:
			flags.StringSliceP(opt.Name, opt.Shorthand, opt.Default.([]string), opt.Usage)
		}
		if err := flags.SetAnnotation(opt.Name, optionAnnotation, []string{"true"}); err != nil {
			return err
		}
	}
	return nil
}
