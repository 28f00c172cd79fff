/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load reads a variables file from a local path, an installed npm
// package, or the network.
package load

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"bennypowers.dev/faenum/fs"
	"bennypowers.dev/faenum/specifier"
)

var (
	// ErrLocalResolution indicates that local filesystem resolution failed.
	ErrLocalResolution = errors.New("local resolution failed")

	// ErrNetworkFallback indicates that the CDN network fallback also failed.
	ErrNetworkFallback = errors.New("network fallback failed")

	// ErrNetworkDisabled indicates a URL input without a Fetcher.
	ErrNetworkDisabled = errors.New("network access is disabled")
)

// Options configures how input is located.
type Options struct {
	// Root is the directory where node_modules lookup starts.
	// Defaults to the working directory.
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Fetcher enables network access: URL inputs, and CDN fallback for npm:
	// specifiers that are not installed. Nil means no network (default).
	Fetcher Fetcher

	// CDN selects the CDN provider for the npm: fallback. Defaults to unpkg.
	CDN specifier.CDN

	// FetchTimeout is the maximum time to wait for a network fetch.
	// Defaults to DefaultTimeout when zero.
	FetchTimeout time.Duration
}

// Input is a located variables file.
type Input struct {
	// Specifier is the location as given.
	Specifier string

	// Path is the local path read, or the URL fetched.
	Path string

	// Remote reports whether the content came from the network.
	Remote bool

	// Content is the raw file content.
	Content []byte
}

// Load reads the file named by spec.
//
// The specifier can be:
//   - Local file path: "less/variables.less"
//   - npm package: "npm:@fortawesome/fontawesome-free/less/_variables.less"
//   - URL: "https://example.com/variables.less" (requires a Fetcher)
//
// When Options.Fetcher is set, npm: specifiers that are not installed
// locally are fetched from a CDN.
func Load(ctx context.Context, spec string, opts Options) (*Input, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	if specifier.IsURL(spec) {
		if opts.Fetcher == nil {
			return nil, fmt.Errorf("%w: cannot fetch %s", ErrNetworkDisabled, spec)
		}
		content, err := fetch(ctx, spec, opts)
		if err != nil {
			return nil, err
		}
		return &Input{Specifier: spec, Path: spec, Remote: true, Content: content}, nil
	}

	path, err := ResolvePath(spec, opts)
	if err != nil {
		return fetchFromCDN(ctx, spec, opts, err)
	}

	content, err := filesystem.ReadFile(path)
	if err != nil {
		return fetchFromCDN(ctx, spec, opts, fmt.Errorf("failed to read %s: %w", path, err))
	}
	return &Input{Specifier: spec, Path: path, Content: content}, nil
}

// ResolvePath resolves a local path or npm: specifier to a filesystem path
// without reading it.
func ResolvePath(spec string, opts Options) (string, error) {
	parsed := specifier.Parse(spec)
	switch parsed.Kind {
	case specifier.KindURL:
		return "", fmt.Errorf("%w: %s is a URL", specifier.ErrNotFound, spec)
	case specifier.KindLocal:
		resolved, err := specifier.NewLocalResolver(opts.Root).Resolve(spec)
		if err != nil {
			return "", err
		}
		return resolved.Path, nil
	}

	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}
	root := opts.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		abs, err := filepath.Abs(root)
		if err != nil {
			return "", fmt.Errorf("failed to resolve root path: %w", err)
		}
		root = abs
	}

	res, err := specifier.NewDefaultResolver(filesystem, root)
	if err != nil {
		return "", fmt.Errorf("failed to create resolver: %w", err)
	}
	resolved, err := res.Resolve(spec)
	if err != nil {
		return "", err
	}
	return resolved.Path, nil
}

// fetchFromCDN attempts to fetch content from CDN as a fallback.
// Returns localErr unchanged when there is no fetcher or spec has no CDN URL.
func fetchFromCDN(ctx context.Context, spec string, opts Options, localErr error) (*Input, error) {
	if opts.Fetcher == nil {
		return nil, localErr
	}
	url, ok := specifier.CDNURL(spec, opts.CDN)
	if !ok {
		return nil, localErr
	}

	content, err := fetch(ctx, url, opts)
	if err != nil {
		return nil, fmt.Errorf("%w (%w), %w: %w", ErrLocalResolution, localErr, ErrNetworkFallback, err)
	}
	return &Input{Specifier: spec, Path: url, Remote: true, Content: content}, nil
}

func fetch(ctx context.Context, url string, opts Options) ([]byte, error) {
	timeout := opts.FetchTimeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return opts.Fetcher.Fetch(ctx, url)
}
