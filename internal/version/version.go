/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides version information for the faenum CLI.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Name is the program name used in banners and generated files.
const Name = "faenum"

var (
	// Version information, set at build time via ldflags
	Version   = "dev"
	GitCommit = "unknown"
	GitTag    = "unknown"
	BuildTime = "unknown"
	GitDirty  = ""
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	GitTag    string `json:"gitTag"`
	BuildTime string `json:"buildTime"`
	GitDirty  string `json:"gitDirty,omitempty"`
}

// Get returns the version string for the application.
func Get() string {
	if Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}
	}

	if GitTag == "unknown" || GitCommit == "unknown" {
		return "dev"
	}
	return fromTag(GitTag, GitCommit, GitDirty == "dirty")
}

// fromTag composes tag, short commit and dirty marker.
func fromTag(tag, commit string, dirty bool) string {
	v := tag
	if commit != "" {
		short := commit
		if len(short) > 7 {
			short = short[:7]
		}
		if !strings.HasSuffix(tag, short) {
			v = fmt.Sprintf("%s-%s", tag, short)
		}
	}
	if dirty {
		v += "-dirty"
	}
	return v
}

// Generator returns the program name and version, as stamped into
// generated files.
func Generator() string {
	return Name + " " + Get()
}

// Info returns detailed build information.
func Info() BuildInfo {
	return BuildInfo{
		Version:   Get(),
		GitCommit: GitCommit,
		GitTag:    GitTag,
		BuildTime: BuildTime,
		GitDirty:  GitDirty,
	}
}
