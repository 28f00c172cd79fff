/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"bennypowers.dev/faenum/internal/version"
	"bennypowers.dev/faenum/specifier"
)

const (
	// DefaultTimeout is the maximum time to wait for a network fetch.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxSize bounds a fetched variables file (10 MB).
	DefaultMaxSize int64 = 10 * 1024 * 1024
)

// ErrNotVariablesFile indicates a response that cannot be a LESS variables
// file, such as a CDN directory listing or an HTML error page.
var ErrNotVariablesFile = errors.New("response is not a variables file")

// Fetcher fetches content from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches variables files over HTTP.
type HTTPFetcher struct {
	// Client performs requests. Nil means http.DefaultClient.
	Client *http.Client

	// MaxSize is the largest accepted body in bytes.
	MaxSize int64
}

// NewHTTPFetcher creates an HTTPFetcher that accepts bodies up to maxSize.
func NewHTTPFetcher(maxSize int64) *HTTPFetcher {
	return &HTTPFetcher{MaxSize: maxSize}
}

// Fetch downloads url. A 404 or 410 wraps specifier.ErrNotFound, so a glyph
// file missing from the CDN reads like one missing from node_modules.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", version.Name+"/"+version.Get())
	req.Header.Set("Accept", "text/x-less, text/plain;q=0.9, */*;q=0.1")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("timeout fetching %s: %w", url, err)
		}
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusGone:
		return nil, fmt.Errorf("%w: %s (%s)", specifier.ErrNotFound, url, resp.Status)
	default:
		return nil, fmt.Errorf("fetching %s: %s", url, resp.Status)
	}

	if mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err == nil && mediaType == "text/html" {
		return nil, fmt.Errorf("%w: %s served %s", ErrNotVariablesFile, url, mediaType)
	}
	if resp.ContentLength > f.MaxSize {
		return nil, f.tooLarge(url)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, f.MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}
	if int64(len(content)) > f.MaxSize {
		return nil, f.tooLarge(url)
	}
	return content, nil
}

func (f *HTTPFetcher) tooLarge(url string) error {
	return fmt.Errorf("response from %s exceeds maximum size of %d bytes", url, f.MaxSize)
}
