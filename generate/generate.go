/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate runs the variables-file to source-file pipeline:
// parse, index prefixes, assemble records, emit, write.
package generate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"bennypowers.dev/faenum/assemble"
	"bennypowers.dev/faenum/emit"
	"bennypowers.dev/faenum/emit/formatter"
	"bennypowers.dev/faenum/fs"
	"bennypowers.dev/faenum/glyph"
	"bennypowers.dev/faenum/internal/logger"
	"bennypowers.dev/faenum/load"
	"bennypowers.dev/faenum/naming"
	"bennypowers.dev/faenum/parser"
	"bennypowers.dev/faenum/prefix"
	"bennypowers.dev/faenum/specifier"
)

// StdoutPath as an output path leaves writing to the caller.
const StdoutPath = "-"

// Outcome is how a run ended.
type Outcome int

const (
	// OutcomeWritten means records were assembled. Run also emits them
	// and writes the output unless the run is dry or targets stdout.
	OutcomeWritten Outcome = iota

	// OutcomeNoDeclarations means the input held no glyph declarations.
	// Nothing is written.
	OutcomeNoDeclarations

	// OutcomeHelp means usage was requested. Nothing is read or written.
	OutcomeHelp
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWritten:
		return "written"
	case OutcomeNoDeclarations:
		return "no declarations"
	case OutcomeHelp:
		return "help"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Options configures a run.
type Options struct {
	// FS is the filesystem to read and write. Defaults to the OS filesystem.
	FS fs.FileSystem

	// InputPath is the variables file: a path, an npm: specifier, or a URL.
	InputPath string

	// Root is where relative paths and node_modules lookup start.
	// Empty means the working directory.
	Root string

	// Fetcher enables URL inputs and the CDN fallback for npm: inputs
	// that are not installed. Nil keeps the run offline.
	Fetcher load.Fetcher

	// CDN selects the fallback CDN. Empty means unpkg.
	CDN specifier.CDN

	// OutputPath is the file to write. Empty derives a name from the
	// format and enum name; StdoutPath skips writing.
	OutputPath string

	// SVGsPath is the prefix directory root, a path or an npm: specifier.
	// Empty derives it from a local input with DefaultSVGsPath.
	SVGsPath string

	// Encoding names the input character encoding.
	Encoding string

	// Extensions are the icon file extensions counted by the prefix index.
	Extensions []string

	// Duotone emits a secondary member for every glyph under the solid prefix.
	Duotone bool

	// Format selects the emitter. Empty means C#.
	Format emit.Format

	// Emit configures the emitter. The zero value means
	// formatter.DefaultOptions().
	Emit formatter.Options

	// Culture is the BCP 47 tag used for identifier case mapping.
	Culture string

	// DryRun formats output without writing it.
	DryRun bool

	// Prefixes records prefixes even when no prefix attribute is set.
	Prefixes bool

	// Help requests usage instead of a run.
	Help bool
}

// Result reports what a run did.
type Result struct {
	Outcome        Outcome
	InputPath      string
	Remote         bool
	Version        string
	HasVersion     bool
	Records        []glyph.Record
	Skipped        []parser.Skipped
	Collisions     []assemble.Collision
	IndexAvailable bool
	OutputPath     string
	Output         []byte
}

// DefaultSVGsPath returns the prefix directory conventionally shipped next
// to a variables file: the svgs directory beside the file's parent.
func DefaultSVGsPath(input string) string {
	return filepath.Join(filepath.Dir(input), "..", "svgs")
}

// Collect parses the input and assembles records without emitting.
// The returned result has no output.
func Collect(ctx context.Context, opts Options) (*Result, error) {
	if opts.Help {
		return &Result{Outcome: OutcomeHelp}, nil
	}
	if opts.InputPath == "" {
		return nil, errors.New("no input file")
	}
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	namer, err := naming.Parse(opts.Culture)
	if err != nil {
		return nil, err
	}

	input, err := load.Load(ctx, opts.InputPath, loadOptions(filesystem, opts))
	if err != nil {
		return nil, err
	}
	if input.Remote {
		logger.Info("Input: %s (fetched)", input.Path)
	} else {
		logger.Info("Input: %s", input.Path)
	}

	parsed, err := parser.NewLessParserWithNamer(namer).Parse(input.Content, parser.Options{
		Encoding: opts.Encoding,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", input.Path, err)
	}

	result := &Result{
		InputPath:  input.Path,
		Remote:     input.Remote,
		Version:    parsed.Version,
		HasVersion: parsed.HasVersion,
		Skipped:    parsed.Skipped,
	}

	if parsed.HasVersion {
		logger.Info("Font Awesome version: %s", parsed.Version)
		if parsed.VersionDeclarations > 1 {
			logger.Warn("%s declares the version %d times; using %q", input.Path, parsed.VersionDeclarations, parsed.Version)
		}
	}
	for _, s := range parsed.Skipped {
		logger.Warn("%s:%d: skipped: %s", input.Path, s.Line, s.Reason)
	}

	if len(parsed.Sources) == 0 {
		logger.Warn("no glyph variables found in %s", input.Path)
		result.Outcome = OutcomeNoDeclarations
		return result, nil
	}
	logger.Info("Found %d glyph variables", len(parsed.Sources))

	withPrefixes := opts.Prefixes || opts.Emit.PrefixAttribute != ""
	index := prefix.Empty()
	if withPrefixes || opts.Duotone {
		index, result.IndexAvailable, err = buildIndex(filesystem, input, opts)
		if err != nil {
			return nil, err
		}
	}

	records, err := assemble.Assemble(parsed.Sources, index, assemble.Options{
		Duotone:         opts.Duotone,
		PrefixAttribute: withPrefixes,
		Namer:           namer,
	})
	if err != nil {
		return nil, err
	}
	result.Records = records

	result.Collisions = assemble.FindCollisions(records)
	for _, c := range result.Collisions {
		logger.Warn("identifier %s is produced by %v", c.Identifier, c.RawKeys)
	}

	result.Outcome = OutcomeWritten
	return result, nil
}

// Run executes the pipeline.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Help {
		return &Result{Outcome: OutcomeHelp}, nil
	}
	if opts.Emit == (formatter.Options{}) {
		opts.Emit = formatter.DefaultOptions()
	}
	if err := opts.Emit.Validate(); err != nil {
		return nil, err
	}
	if opts.FS == nil {
		opts.FS = fs.NewOSFileSystem()
	}
	format := opts.Format
	if format == "" {
		format = emit.FormatCSharp
	}

	result, err := Collect(ctx, opts)
	if err != nil || result.Outcome != OutcomeWritten {
		return result, err
	}

	out, err := emit.FormatRecords(formatter.Document{
		Version: result.Version,
		Records: result.Records,
	}, format, opts.Emit)
	if err != nil {
		return nil, err
	}
	result.Output = out

	output := opts.OutputPath
	if output == "" {
		output = emit.DefaultOutput(format, opts.Emit.EnumName)
	}
	result.OutputPath = output

	if opts.DryRun || output == StdoutPath {
		logger.Debug("Not writing %d bytes (dry run or stdout)", len(out))
		return result, nil
	}

	if err := fs.WriteOutput(opts.FS, output, out); err != nil {
		return nil, err
	}
	logger.Info("Output: %s (%d members)", output, len(glyph.Members(result.Records)))

	return result, nil
}

// buildIndex scans the prefix directory. A missing directory yields an
// empty index and available=false.
func buildIndex(filesystem fs.FileSystem, input *load.Input, opts Options) (*prefix.Index, bool, error) {
	root, err := svgsRoot(filesystem, input, opts)
	if err != nil {
		return nil, false, err
	}
	if root == "" {
		return prefix.Empty(), false, nil
	}

	index, err := prefix.Build(filesystem, root, prefix.Options{Extensions: opts.Extensions})
	if errors.Is(err, prefix.ErrIndexUnavailable) {
		logger.Warn("prefix directory %s not found; glyphs will carry no prefixes", root)
		return prefix.Empty(), false, nil
	}
	if err != nil {
		return nil, false, err
	}

	logger.Debug("Indexed %d icons across %d prefixes in %s", index.Len(), len(index.Prefixes()), root)
	return index, true, nil
}

// svgsRoot locates the prefix directory. It is empty, with a warning, when
// no local directory can serve.
func svgsRoot(filesystem fs.FileSystem, input *load.Input, opts Options) (string, error) {
	if opts.SVGsPath == "" {
		if input.Remote {
			logger.Warn("no prefix directory for fetched input %s; pass --svgs to index prefixes", input.Path)
			return "", nil
		}
		return DefaultSVGsPath(input.Path), nil
	}
	root, err := load.ResolvePath(opts.SVGsPath, loadOptions(filesystem, opts))
	if specifier.IsPackageSpecifier(opts.SVGsPath) && errors.Is(err, specifier.ErrNotFound) {
		logger.Warn("%s is not installed; glyphs will carry no prefixes", opts.SVGsPath)
		return "", nil
	}
	return root, err
}

func loadOptions(filesystem fs.FileSystem, opts Options) load.Options {
	return load.Options{
		Root:    opts.Root,
		FS:      filesystem,
		Fetcher: opts.Fetcher,
		CDN:     opts.CDN,
	}
}
