package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveOutputDir_Precedence(t *testing.T) {
	cfg := &Config{OutputDir: "from-config"}

	// Flag beats everything.
	t.Setenv(EnvOutputDir, "from-env")
	if got := cfg.ResolveOutputDir("from-flag"); got != "from-flag" {
		t.Errorf("ResolveOutputDir(flag) = %q, want %q", got, "from-flag")
	}

	// Environment beats the config file.
	if got := cfg.ResolveOutputDir(""); got != "from-env" {
		t.Errorf("ResolveOutputDir() = %q, want %q", got, "from-env")
	}

	// Config file beats the default.
	os.Unsetenv(EnvOutputDir)
	if got := cfg.ResolveOutputDir(""); got != "from-config" {
		t.Errorf("ResolveOutputDir() = %q, want %q", got, "from-config")
	}

	// Default when nothing is set.
	empty := &Config{}
	if got := empty.ResolveOutputDir(""); got != DefaultOutputDir {
		t.Errorf("ResolveOutputDir() = %q, want %q", got, DefaultOutputDir)
	}
}

func TestCatalogEnabled(t *testing.T) {
	cfg := &Config{}

	if !cfg.CatalogEnabled(false) {
		t.Error("CatalogEnabled(false) = false, want true by default")
	}
	if cfg.CatalogEnabled(true) {
		t.Error("CatalogEnabled(true) = true, want false when flag set")
	}

	t.Setenv(EnvNoCatalog, "true")
	if cfg.CatalogEnabled(false) {
		t.Errorf("CatalogEnabled() = true, want false with %s=true", EnvNoCatalog)
	}
	t.Setenv(EnvNoCatalog, "false")
	if !cfg.CatalogEnabled(false) {
		t.Errorf("CatalogEnabled() = false, want true with %s=false", EnvNoCatalog)
	}

	disabled := &Config{NoCatalog: true}
	os.Unsetenv(EnvNoCatalog)
	if disabled.CatalogEnabled(false) {
		t.Error("CatalogEnabled() = true, want false when disabled in config")
	}
}

func TestLoad_MissingFileReturnsEmptyConfig(t *testing.T) {
	ResetCache()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.OutputDir != "" || cfg.NoCatalog {
		t.Errorf("Load() = %+v, want empty config", cfg)
	}
}

func TestLoad_ReadsYAML(t *testing.T) {
	ResetCache()
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, GlobalConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	content := "output_dir: /tmp/reports\nno_catalog: true\n"
	if err := os.WriteFile(filepath.Join(dir, GlobalConfigFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.OutputDir != "/tmp/reports" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "/tmp/reports")
	}
	if !cfg.NoCatalog {
		t.Error("NoCatalog = false, want true")
	}

	ResetCache()
}
