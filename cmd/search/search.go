/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package search provides the search command for faenum.
package search

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/faenum/config"
	"bennypowers.dev/faenum/fs"
	"bennypowers.dev/faenum/generate"
	"bennypowers.dev/faenum/glyph"
)

// Cmd is the search cobra command.
var Cmd = &cobra.Command{
	Use:   "search <query> [input]",
	Short: "Search glyphs by name, key, or codepoint",
	Long: `Search the glyphs of a Font Awesome variables file by identifier, variable
key, or codepoint, with optional regex support. The input defaults to the
one named in .config/faenum.{yaml,yml,json}.

Examples:
  faenum search arrow fa/less/_variables.less
  faenum search --code f0 fa/less/_variables.less
  faenum search --regex '^Arrow(Left|Right)$' --format names`,
	Args: cobra.RangeArgs(1, 2),
	RunE: run,
}

func init() {
	if err := config.RegisterFlags(Cmd.Flags(),
		config.OptSVGs,
		config.OptDuotone,
		config.OptEncoding,
		config.OptCulture,
		config.OptFetch,
		config.OptCDN,
	); err != nil {
		panic(err)
	}
	Cmd.Flags().Bool("name", false, "Search identifiers and keys only")
	Cmd.Flags().Bool("code", false, "Search codepoints only")
	Cmd.Flags().String("prefix", "", "Only match glyphs available under this style prefix")
	Cmd.Flags().Bool("regex", false, "Query is a regex")
	Cmd.Flags().String("format", "table", "Output format: table, json, names")
}

// query selects members.
type query struct {
	text     string
	pattern  *regexp.Regexp
	nameOnly bool
	codeOnly bool
	prefix   string
}

func run(cmd *cobra.Command, args []string) error {
	nameOnly, _ := cmd.Flags().GetBool("name")
	codeOnly, _ := cmd.Flags().GetBool("code")
	prefixFilter, _ := cmd.Flags().GetString("prefix")
	useRegex, _ := cmd.Flags().GetBool("regex")
	format, _ := cmd.Flags().GetString("format")

	if nameOnly && codeOnly {
		return fmt.Errorf("--name and --code are mutually exclusive")
	}

	q := query{text: args[0], nameOnly: nameOnly, codeOnly: codeOnly, prefix: prefixFilter}
	if useRegex {
		pattern, err := regexp.Compile(args[0])
		if err != nil {
			return fmt.Errorf("invalid regex: %w", err)
		}
		q.pattern = pattern
	}

	filesystem := fs.NewOSFileSystem()
	opts, err := config.ResolveFromDir(filesystem, ".", cmd.Flags(), args[1:])
	if err != nil {
		return err
	}

	result, err := generate.Collect(cmd.Context(), generate.Options{
		FS:        filesystem,
		InputPath: opts.Input,
		Fetcher:   opts.Fetcher(),
		CDN:       opts.CDN,
		SVGsPath:  opts.SVGs,
		Encoding:  opts.Encoding,
		Duotone:   opts.Duotone,
		Culture:   opts.Culture,
		Prefixes:  true,
	})
	if err != nil {
		return err
	}

	matches := q.filter(glyph.Members(result.Records))
	out := cmd.OutOrStdout()

	switch format {
	case "json":
		return outputJSON(out, matches)
	case "names":
		return outputNames(out, matches)
	case "table", "":
		return outputTable(out, matches)
	default:
		return fmt.Errorf("unknown search format: %s (valid: table, json, names)", format)
	}
}

// filter returns the matching members sorted by identifier.
func (q query) filter(members []glyph.Member) []glyph.Member {
	var matches []glyph.Member
	for _, m := range members {
		if q.prefix != "" && !slices.Contains(m.Prefixes, q.prefix) {
			continue
		}

		var matched bool
		switch {
		case q.nameOnly:
			matched = q.match(m.Identifier) || q.match(m.RawKey)
		case q.codeOnly:
			matched = q.match(m.HexCode)
		default:
			matched = q.match(m.Identifier) || q.match(m.RawKey) || q.match(m.HexCode)
		}
		if matched {
			matches = append(matches, m)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Identifier < matches[j].Identifier
	})
	return matches
}

func (q query) match(s string) bool {
	if q.pattern != nil {
		return q.pattern.MatchString(s)
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(q.text))
}

func outputTable(w io.Writer, members []glyph.Member) error {
	if len(members) == 0 {
		return nil
	}

	nameWidth := 4
	for _, m := range members {
		nameWidth = max(nameWidth, len(m.Identifier))
	}

	for _, m := range members {
		if _, err := fmt.Fprintf(w, "%-*s  %-8s  %s\n", nameWidth, m.Identifier, m.HexCode, m.RawKey); err != nil {
			return err
		}
	}
	return nil
}

func outputJSON(w io.Writer, members []glyph.Member) error {
	type memberOutput struct {
		Name      string   `json:"name"`
		Code      string   `json:"code"`
		Key       string   `json:"key"`
		Prefixes  []string `json:"prefixes,omitempty"`
		Secondary bool     `json:"secondary,omitempty"`
	}

	output := make([]memberOutput, 0, len(members))
	for _, m := range members {
		output = append(output, memberOutput{
			Name:      m.Identifier,
			Code:      m.HexCode,
			Key:       m.RawKey,
			Prefixes:  m.Prefixes,
			Secondary: m.Secondary,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func outputNames(w io.Writer, members []glyph.Member) error {
	for _, m := range members {
		if _, err := fmt.Fprintln(w, m.Identifier); err != nil {
			return err
		}
	}
	return nil
}
