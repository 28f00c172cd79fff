/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for faenum.
package generate

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/faenum/config"
	"bennypowers.dev/faenum/fs"
	generatelib "bennypowers.dev/faenum/generate"
	"bennypowers.dev/faenum/internal/logger"
	"bennypowers.dev/faenum/internal/version"
)

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate <input> [output] [prefix-attribute]",
	Short: "Generate an enumeration from a variables file",
	Long: `Generate an enumeration and character constants from a Font Awesome
LESS variables file.

Options may also come from FAENUM_* environment variables (FAENUM_ENUM_NAME,
FAENUM_DUOTONE, ...) or from .config/faenum.{yaml,yml,json}. Flags win over
positional arguments, which win over the environment, which wins over the
config file.

Examples:
  # Classic output: FontAwesomeEnum.cs in the working directory
  faenum generate Font-Awesome/less/variables.less

  # Annotate members with [Prefix("solid")] etc. from ../svgs
  faenum generate fa/less/_variables.less Icons.cs Prefix

  # Duotone secondaries, TypeScript, to stdout
  faenum generate --duotone -f ts -o - fa/less/_variables.less`,
	Args: cobra.MaximumNArgs(3),
	RunE: run,
}

func init() {
	if err := config.RegisterFlags(Cmd.Flags(),
		config.OptOutput,
		config.OptPrefixAttribute,
		config.OptSVGs,
		config.OptEnums,
		config.OptResources,
		config.OptDuotone,
		config.OptFormat,
		config.OptNamespace,
		config.OptEnumName,
		config.OptResourceName,
		config.OptHeader,
		config.OptEncoding,
		config.OptCulture,
		config.OptExtensions,
		config.OptFetch,
		config.OptCDN,
	); err != nil {
		panic(err)
	}
	Cmd.Flags().Bool("dry-run", false, "Print the output instead of writing it")
}

func run(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	filesystem := fs.NewOSFileSystem()
	opts, err := config.ResolveFromDir(filesystem, ".", cmd.Flags(), args)
	if errors.Is(err, config.ErrMissingInput) {
		opts, err = &config.Options{Help: true}, nil
	}
	if err != nil {
		return err
	}

	emitOpts := opts.EmitOptions()
	emitOpts.Generator = version.Generator()

	if !opts.Help {
		logger.Info("%s", version.Generator())
	}
	result, err := generatelib.Run(cmd.Context(), generatelib.Options{
		FS:         filesystem,
		InputPath:  opts.Input,
		Fetcher:    opts.Fetcher(),
		CDN:        opts.CDN,
		OutputPath: opts.Output,
		SVGsPath:   opts.SVGs,
		Encoding:   opts.Encoding,
		Extensions: opts.Extensions,
		Duotone:    opts.Duotone,
		Format:     opts.Format,
		Emit:       emitOpts,
		Culture:    opts.Culture,
		DryRun:     dryRun,
		Help:       opts.Help,
	})
	if err != nil {
		return err
	}

	if result.Outcome == generatelib.OutcomeHelp {
		return cmd.Help()
	}
	if result.Outcome == generatelib.OutcomeWritten && (dryRun || result.OutputPath == generatelib.StdoutPath) {
		if _, err := cmd.OutOrStdout().Write(result.Output); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
	}
	return nil
}
