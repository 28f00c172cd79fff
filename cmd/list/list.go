/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for faenum.
package list

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/faenum/config"
	"bennypowers.dev/faenum/fs"
	"bennypowers.dev/faenum/generate"
	"bennypowers.dev/faenum/glyph"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list <input>",
	Short: "List glyphs from a variables file",
	Long: `List the glyphs of a Font Awesome variables file with their identifiers,
codepoints and style prefixes.

Examples:
  faenum list fa/less/_variables.less
  faenum list --filter 'arrow-*' --format json fa/less/_variables.less`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	if err := config.RegisterFlags(Cmd.Flags(),
		config.OptSVGs,
		config.OptDuotone,
		config.OptEncoding,
		config.OptCulture,
		config.OptExtensions,
		config.OptFetch,
		config.OptCDN,
	); err != nil {
		panic(err)
	}
	Cmd.Flags().String("filter", "", "Only list glyphs whose key matches this glob")
	Cmd.Flags().String("format", "table", "Output format: table, json, yaml")
}

func run(cmd *cobra.Command, args []string) error {
	filter, _ := cmd.Flags().GetString("filter")
	format, _ := cmd.Flags().GetString("format")

	if filter != "" && !doublestar.ValidatePattern(filter) {
		return fmt.Errorf("invalid filter pattern: %s", filter)
	}

	filesystem := fs.NewOSFileSystem()
	opts, err := config.ResolveFromDir(filesystem, ".", cmd.Flags(), args)
	if err != nil {
		return err
	}

	result, err := generate.Collect(cmd.Context(), generate.Options{
		FS:         filesystem,
		InputPath:  opts.Input,
		Fetcher:    opts.Fetcher(),
		CDN:        opts.CDN,
		SVGsPath:   opts.SVGs,
		Encoding:   opts.Encoding,
		Extensions: opts.Extensions,
		Duotone:    opts.Duotone,
		Culture:    opts.Culture,
		Prefixes:   true,
	})
	if err != nil {
		return err
	}

	records := filterRecords(result.Records, filter)
	out := cmd.OutOrStdout()

	switch format {
	case "json":
		return outputJSON(out, records)
	case "yaml":
		return outputYAML(out, records)
	case "table", "":
		return outputTable(out, records)
	default:
		return fmt.Errorf("unknown list format: %s (valid: table, json, yaml)", format)
	}
}

// filterRecords keeps records whose raw key matches pattern.
// An empty pattern keeps everything.
func filterRecords(records []glyph.Record, pattern string) []glyph.Record {
	if pattern == "" {
		return records
	}
	filtered := make([]glyph.Record, 0)
	for _, r := range records {
		if ok, _ := doublestar.Match(pattern, r.RawKey); ok {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func outputTable(w io.Writer, records []glyph.Record) error {
	for _, m := range glyph.Members(records) {
		prefixes := strings.Join(m.Prefixes, ",")
		if prefixes == "" {
			prefixes = "-"
		}
		if _, err := fmt.Fprintf(w, "%-40s %-8s %-32s %s\n", m.Identifier, m.HexCode, m.RawKey, prefixes); err != nil {
			return err
		}
	}
	return nil
}

func outputJSON(w io.Writer, records []glyph.Record) error {
	if records == nil {
		records = []glyph.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func outputYAML(w io.Writer, records []glyph.Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}
