/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for faenum.
package cmd

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/faenum/cmd/generate"
	"bennypowers.dev/faenum/cmd/list"
	"bennypowers.dev/faenum/cmd/search"
	"bennypowers.dev/faenum/cmd/validate"
	"bennypowers.dev/faenum/cmd/version"
	"bennypowers.dev/faenum/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "faenum",
	Short: "Generate glyph enumerations from Font Awesome variables files",
	Long: `faenum reads a Font Awesome LESS variables file and generates an
enumeration of every glyph together with character constants, optionally
annotated with the style prefixes (solid, regular, brands, ...) each glyph
ships under.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		quiet, _ := cmd.Flags().GetBool("quiet")
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger.SetQuiet(quiet)
		logger.SetVerbose(verbose)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only print warnings and errors")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug output")

	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(search.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
