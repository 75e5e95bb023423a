package service

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emlmerge.yaml")
	content := []byte(`extensions: [pdf, PDF]
exclude:
  - "draft-*.pdf"
output: ~/merged/
workers: 3
verbose: true
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	home, _ := os.UserHomeDir()
	if cfg.Output != filepath.Join(home, "merged") {
		t.Fatalf("output=%q", cfg.Output)
	}
	if cfg.Workers != 3 || !cfg.Verbose || len(cfg.Extensions) != 2 || cfg.Exclude[0] != "draft-*.pdf" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadConfig_NegativeWorkers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("workers: -1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for negative workers")
	}
}

func TestConfigFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(EnvExtensions, "html, htm")
	t.Setenv(EnvWorkers, "5")
	t.Setenv(EnvVerbose, "true")
	cfg, err := ConfigFromEnv(&Config{Workers: 1})
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.Workers != 5 || !cfg.Verbose || len(cfg.Extensions) != 2 || cfg.Extensions[1] != "htm" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestConfigFromEnv_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvExclude+"=a.pdf,b.pdf\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv(EnvExclude, "")
	os.Unsetenv(EnvExclude)
	cfg, err := ConfigFromEnv(nil)
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if len(cfg.Exclude) != 2 || cfg.Exclude[0] != "a.pdf" {
		t.Fatalf("unexpected exclude %q", cfg.Exclude)
	}
}

func TestConfigFromEnv_InvalidWorkers(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(EnvWorkers, "many")
	if _, err := ConfigFromEnv(nil); err == nil {
		t.Fatalf("expected error")
	}
}
