package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"BaseDir", cfg.BaseDir, ""},
		{"BuildDir", cfg.BuildDir, "build"},
		{"LogLevel", cfg.LogLevel, "info"},
		{"LogFormat", cfg.LogFormat, "text"},
		{"Steps", len(cfg.Steps), 0},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")

	yaml := `build_dir: target
steps:
  - name: web
    prettier:
      prettier_version: "2.3.0"
      config_file: .prettierrc
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.BuildDir != "target" {
		t.Errorf("BuildDir: got %q, want %q", cfg.BuildDir, "target")
	}
	if cfg.BaseDir != dir {
		t.Errorf("BaseDir: got %q, want config dir %q", cfg.BaseDir, dir)
	}

	// Verify unspecified fields retain defaults.
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel: got %q, want info (default)", cfg.LogLevel)
	}

	if len(cfg.Steps) != 1 {
		t.Fatalf("Steps: got %d, want 1", len(cfg.Steps))
	}
	p := cfg.Steps[0].Prettier
	if p.PrettierVersion != "2.3.0" {
		t.Errorf("PrettierVersion: got %q, want 2.3.0", p.PrettierVersion)
	}
	if p.ConfigFile != ".prettierrc" {
		t.Errorf("ConfigFile: got %q, want .prettierrc", p.ConfigFile)
	}
	if p.DevDependencies != nil || p.DevDependencyProperties != nil || p.Config != nil {
		t.Errorf("undeclared fields must stay nil: %+v", p)
	}
}

func TestLoadFS(t *testing.T) {
	fsys := afero.NewMemMapFs()
	dir := filepath.FromSlash("/mem/project")
	path := filepath.Join(dir, "prettierstep.yml")
	yaml := "log_format: json\nsteps:\n  - name: web\n    prettier: {}\n"
	if err := afero.WriteFile(fsys, path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := DiscoverFS(fsys, dir); got != path {
		t.Errorf("DiscoverFS: got %q, want %q", got, path)
	}

	cfg, err := LoadFS(fsys, path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseDir != dir {
		t.Errorf("BaseDir: got %q, want %q", cfg.BaseDir, dir)
	}
	if cfg.LogFormat != "json" || len(cfg.Steps) != 1 {
		t.Errorf("unexpected config: %+v", cfg)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("config must come from the in-memory filesystem, stat err: %v", err)
	}
	if _, err := LoadFS(fsys, filepath.Join(dir, "missing.yml")); err == nil || !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("missing file: got %v", err)
	}
}

func TestLoadRelativeBaseDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prettierstep.yml")
	if err := os.WriteFile(path, []byte("base_dir: web\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "web"); cfg.BaseDir != want {
		t.Errorf("BaseDir: got %q, want %q", cfg.BaseDir, want)
	}
}

func TestLoadNoConfigReturnsDefaults(t *testing.T) {
	// Use an empty temp dir so no config file is discovered.
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	want := DefaultConfig()
	if cfg.BuildDir != want.BuildDir || cfg.LogLevel != want.LogLevel || len(cfg.Steps) != 0 {
		t.Errorf("expected default config, got %+v", cfg)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseDir != wd {
		t.Errorf("BaseDir: got %q, want working directory %q", cfg.BaseDir, wd)
	}
}

func TestDiscoverPriority(t *testing.T) {
	dir := t.TempDir()

	content := []byte("build_dir: build\n")

	// Create all four files; prettierstep.yml (first in order) should win.
	for _, name := range []string{"prettierstep.yml", "prettierstep.yaml", ".prettierstep.yml", ".prettierstep.yaml"} {
		if err := os.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	order := []string{"prettierstep.yml", "prettierstep.yaml", ".prettierstep.yml", ".prettierstep.yaml"}
	for i, name := range order {
		got := Discover(dir)
		want := filepath.Join(dir, name)
		if got != want {
			t.Errorf("round %d: Discover = %q, want %q", i, got, want)
		}
		os.Remove(want)
	}
}

func TestDiscoverNoFiles(t *testing.T) {
	dir := t.TempDir()
	got := Discover(dir)
	if got != "" {
		t.Errorf("Discover in empty dir: got %q, want empty string", got)
	}
}

func TestLoadDiscovery(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prettierstep.yml")

	yaml := `log_level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug", cfg.LogLevel)
	}

	// Unspecified fields should retain defaults.
	if cfg.BuildDir != "build" {
		t.Errorf("BuildDir: got %q, want build (default)", cfg.BuildDir)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")

	if err := os.WriteFile(path, []byte("{{{{not valid yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yml")
	if err == nil {
		t.Error("expected error for missing explicit path, got nil")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yml")

	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	// Empty file should result in all defaults.
	if cfg.BuildDir != "build" || cfg.LogLevel != "info" {
		t.Errorf("expected default config for empty file, got %+v", cfg)
	}
}

func TestLookup(t *testing.T) {
	cfg := &Config{Steps: []Step{{Name: "a"}, {Name: "b"}}}

	s, ok := cfg.Lookup("b")
	if !ok || s.Name != "b" {
		t.Errorf("Lookup(b) = %v, %v", s, ok)
	}
	if _, ok := cfg.Lookup("c"); ok {
		t.Error("Lookup(c) found a step that does not exist")
	}
}
