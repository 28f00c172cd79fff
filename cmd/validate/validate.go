/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for faenum.
package validate

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/faenum/config"
	"bennypowers.dev/faenum/fs"
	"bennypowers.dev/faenum/generate"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate <input>",
	Short: "Validate a variables file",
	Long: `Validate a Font Awesome variables file: report variable lines that were
not recognized and identifiers produced by more than one glyph.`,
	Args: cobra.MaximumNArgs(1),
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
	Cmd.Flags().Bool("strict", false, "Fail on skipped lines and identifier collisions")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")

	filesystem := fs.NewOSFileSystem()
	opts, err := config.ResolveFromDir(filesystem, ".", cmd.Flags(), args)
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
	})
	if err != nil {
		return err
	}

	problems := report(cmd.OutOrStdout(), opts.Input, result, quiet)
	if result.Outcome == generate.OutcomeNoDeclarations {
		return fmt.Errorf("validation failed: no glyph variables in %s", opts.Input)
	}
	if strict && problems > 0 {
		return fmt.Errorf("validation failed: %d problem(s)", problems)
	}
	return nil
}

// report prints findings and returns how many there were.
func report(w io.Writer, input string, result *generate.Result, quiet bool) int {
	for _, s := range result.Skipped {
		fmt.Fprintf(w, "%s:%d: %s: %s\n", input, s.Line, s.Reason, s.Text)
	}
	for _, c := range result.Collisions {
		fmt.Fprintf(w, "%s: identifier %s is produced by %s\n", input, c.Identifier, strings.Join(c.RawKeys, ", "))
	}

	problems := len(result.Skipped) + len(result.Collisions)
	if !quiet {
		version := result.Version
		if !result.HasVersion {
			version = "none"
		}
		fmt.Fprintf(w, "%s: %d glyphs, version %s, %d problem(s)\n", input, len(result.Records), version, problems)
	}
	return problems
}
