package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/viant/emlmerge/source"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvExtensions = "EMLMERGE_EXTENSIONS"
	EnvExclude    = "EMLMERGE_EXCLUDE"
	EnvWorkers    = "EMLMERGE_WORKERS"
	EnvVerbose    = "EMLMERGE_VERBOSE"
)

// Config holds merge defaults loaded from YAML and the environment.
type Config struct {
	Extensions []string `yaml:"extensions"`
	Exclude    []string `yaml:"exclude"`
	Output     string   `yaml:"output"`
	Workers    int      `yaml:"workers"`
	Verbose    bool     `yaml:"verbose"`
}

// LoadConfig reads a YAML config file. "~" in paths expands to the home directory.
func LoadConfig(path string) (*Config, error) {
	path, err := expandUserPath(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Output != "" {
		if cfg.Output, err = expandUserPath(cfg.Output); err != nil {
			return nil, err
		}
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("config %s: workers must not be negative", path)
	}
	return &cfg, nil
}

// ConfigFromEnv loads .env (when present) and overlays EMLMERGE_* variables
// onto cfg. A nil cfg starts from an empty Config.
func ConfigFromEnv(cfg *Config) (*Config, error) {
	_ = godotenv.Load()
	if cfg == nil {
		cfg = &Config{}
	}
	if v := strings.TrimSpace(os.Getenv(EnvExtensions)); v != "" {
		cfg.Extensions = source.ParseCSV(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvExclude)); v != "" {
		cfg.Exclude = source.ParseCSV(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvWorkers)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%s: invalid worker count %q", EnvWorkers, v)
		}
		cfg.Workers = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvVerbose)); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvVerbose, err)
		}
		cfg.Verbose = verbose
	}
	return cfg, nil
}

func expandUserPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" || trimmed[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if trimmed == "~" {
		return home, nil
	}
	if !strings.HasPrefix(trimmed, "~/") {
		return "", fmt.Errorf("config: unsupported ~user path: %s", path)
	}
	return filepath.Join(home, trimmed[2:]), nil
}
