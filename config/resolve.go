/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bennypowers.dev/faenum/emit"
	"bennypowers.dev/faenum/fs"
	"bennypowers.dev/faenum/specifier"
)

// EnvPrefix prefixes environment variable names, e.g. FAENUM_ENUM_NAME.
const EnvPrefix = "FAENUM"

// positional maps positional arguments, in order, to option names.
var positional = []string{OptInput, OptOutput, OptPrefixAttribute}

// Resolve combines flags, positional arguments, environment variables, the
// config file and table defaults, in that order of precedence. An
// explicitly set flag wins over the positional argument for the same option.
// Only flags added by RegisterFlags are bound, so commands may define their
// own flags under option names.
// flags and file may be nil.
func Resolve(flags *pflag.FlagSet, args []string, file *Config) (*Options, error) {
	if len(args) > len(positional) {
		return nil, fmt.Errorf("too many arguments: expected at most %d, got %d", len(positional), len(args))
	}

	v := viper.New()
	for _, opt := range Table {
		v.SetDefault(opt.Name, opt.Default)
	}
	if err := v.MergeConfigMap(file.Values()); err != nil {
		return nil, fmt.Errorf("merging config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, opt := range Table {
			flag := flags.Lookup(opt.Name)
			if flag == nil || flag.Annotations[optionAnnotation] == nil {
				continue
			}
			if err := v.BindPFlag(opt.Name, flag); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", opt.Name, err)
			}
		}
	}
	for i, arg := range args {
		name := positional[i]
		if flags != nil && flags.Changed(name) {
			continue
		}
		v.Set(name, arg)
	}

	opts := &Options{
		Input:           v.GetString(OptInput),
		Output:          v.GetString(OptOutput),
		PrefixAttribute: v.GetString(OptPrefixAttribute),
		SVGs:            v.GetString(OptSVGs),
		Enums:           v.GetBool(OptEnums),
		Resources:       v.GetBool(OptResources),
		Duotone:         v.GetBool(OptDuotone),
		Namespace:       v.GetString(OptNamespace),
		EnumName:        v.GetString(OptEnumName),
		ResourceName:    v.GetString(OptResourceName),
		Header:          v.GetString(OptHeader),
		Encoding:        v.GetString(OptEncoding),
		Culture:         v.GetString(OptCulture),
		Extensions:      v.GetStringSlice(OptExtensions),
		Fetch:           v.GetBool(OptFetch),
		Help:            v.GetBool(OptHelp),
	}

	format, err := emit.ParseFormat(v.GetString(OptFormat))
	if err != nil {
		return nil, err
	}
	opts.Format = format

	cdn, err := specifier.ParseCDN(v.GetString(OptCDN))
	if err != nil {
		return nil, err
	}
	opts.CDN = cdn

	if opt, _ := Lookup(OptOutput); format != emit.FormatCSharp && opts.Output == opt.Default {
		opts.Output = emit.DefaultOutput(format, opts.EnumName)
	}

	if opts.Input == "" && !opts.Help {
		return nil, ErrMissingInput
	}
	return opts, nil
}

// ResolveFromDir loads the config file found under rootDir, if any, and
// resolves options against it.
func ResolveFromDir(filesystem fs.FileSystem, rootDir string, flags *pflag.FlagSet, args []string) (*Options, error) {
	file, err := Load(filesystem, rootDir)
	if err != nil {
		return nil, err
	}
	return Resolve(flags, args, file)
}
