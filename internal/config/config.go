package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"prockill/internal/proc"
)

const (
	envSource   = "PROCKILL_SOURCE"
	envProcRoot = "PROCKILL_PROC_ROOT"
	envSpinner  = "PROCKILL_SPINNER"
)

// Config selects where processes are read from and how the CLI behaves.
type Config struct {
	Source   string
	ProcRoot string
	Spinner  bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Source:   proc.KindAuto,
		ProcRoot: proc.DefaultRoot,
		Spinner:  true,
	}
}

// Load builds a Config from an optional JSON or YAML file plus environment
// overrides. It does not validate; callers layer flags on top and then call
// Validate.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := loadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
		if raw.Source != "" {
			cfg.Source = raw.Source
		}
		if raw.ProcRoot != "" {
			cfg.ProcRoot = raw.ProcRoot
		}
		if raw.Spinner != nil {
			cfg.Spinner = *raw.Spinner
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Validate rejects unknown source kinds.
func (c Config) Validate() error {
	if !validSource(c.Source) {
		return fmt.Errorf("invalid source %q (want %s, %s or %s)", c.Source, proc.KindAuto, proc.KindProcFS, proc.KindGopsutil)
	}
	return nil
}

func validSource(kind string) bool {
	switch kind {
	case proc.KindAuto, proc.KindProcFS, proc.KindGopsutil:
		return true
	}
	return false
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(envSource)); v != "" {
		if validSource(v) {
			cfg.Source = v
		} else {
			log.Printf("invalid %s value %q: want %s, %s or %s", envSource, v, proc.KindAuto, proc.KindProcFS, proc.KindGopsutil)
		}
	}
	if v := strings.TrimSpace(os.Getenv(envProcRoot)); v != "" {
		cfg.ProcRoot = v
	}
	if v := os.Getenv(envSpinner); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Spinner = enabled
		} else {
			log.Printf("invalid %s value %q: %v", envSpinner, v, err)
		}
	}
}

type fileConfig struct {
	Source   string `json:"source" yaml:"source"`
	ProcRoot string `json:"proc_root" yaml:"proc_root"`
	Spinner  *bool  `json:"spinner" yaml:"spinner"`
}

func loadFromFile(path string) (fileConfig, error) {
	var raw fileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return raw, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return raw, err
	}
	return raw, nil
}
