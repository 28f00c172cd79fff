/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"testing"

	"bennypowers.dev/faenum/internal/mapfs"
	"bennypowers.dev/faenum/testutil"
)

func TestLoad_YAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if cfg.Input != "./Font-Awesome/less/variables.less" {
		t.Errorf("expected input './Font-Awesome/less/variables.less', got %q", cfg.Input)
	}
	if cfg.PrefixAttribute != "Prefix" {
		t.Errorf("expected prefixAttribute 'Prefix', got %q", cfg.PrefixAttribute)
	}
	if cfg.Duotone == nil || !*cfg.Duotone {
		t.Errorf("expected duotone true, got %v", cfg.Duotone)
	}
	if cfg.Enums == nil || *cfg.Enums {
		t.Errorf("expected enums false, got %v", cfg.Enums)
	}
	if cfg.Resources != nil {
		t.Errorf("expected resources unset, got %v", *cfg.Resources)
	}
	if len(cfg.Extensions) != 2 || cfg.Extensions[1] != "png" {
		t.Errorf("expected extensions [svg png], got %v", cfg.Extensions)
	}
}

func TestLoad_JSONWithComments(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/json", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if cfg.Format != "ts" {
		t.Errorf("expected format 'ts', got %q", cfg.Format)
	}
	if cfg.Culture != "tr" {
		t.Errorf("expected culture 'tr', got %q", cfg.Culture)
	}
	if cfg.Resources == nil || *cfg.Resources {
		t.Errorf("expected resources false, got %v", cfg.Resources)
	}
	if cfg.Header != "SPDX-License-Identifier: OFL-1.1" {
		t.Errorf("unexpected header %q", cfg.Header)
	}
}

func TestLoad_Invalid(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yml", "/project")

	if _, err := Load(mfs, "/project"); err == nil {
		t.Error("expected parse error")
	}
	if cfg := LoadOrDefault(mfs, "/project"); cfg == nil || cfg.Input != "" {
		t.Errorf("expected default config, got %+v", cfg)
	}
}

func TestLoad_NotFound(t *testing.T) {
	cfg, err := Load(mapfs.New(), "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config, got %+v", cfg)
	}
}

func TestValues(t *testing.T) {
	no := false
	cfg := &Config{
		Input:      "in.less",
		Enums:      &no,
		Extensions: []string{"svg"},
	}

	values := cfg.Values()
	if len(values) != 3 {
		t.Errorf("expected 3 values, got %v", values)
	}
	if values[OptEnums] != false {
		t.Errorf("expected enums false, got %v", values[OptEnums])
	}
	if _, ok := values[OptResources]; ok {
		t.Error("expected unset resources to be absent")
	}

	var nilConfig *Config
	if len(nilConfig.Values()) != 0 {
		t.Error("expected no values from nil config")
	}
}
