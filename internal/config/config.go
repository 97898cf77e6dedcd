package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/pdfmark-launcher/internal/model"
)

// configFileNames lists the config file candidates searched in the
// working directory, in priority order. The first one that exists wins;
// later candidates are not consulted.
var configFileNames = []string{
	"launcher.yaml",
	"launcher.yml",
	"launcher.jsonc",
	"launcher.json",
}

// Config holds the launch parameters.
//
// The struct tags serve three readers: yaml for launcher.yaml, json for
// launcher.jsonc/launcher.json, and env for PDFMARK_* environment
// variable overrides (parsed with github.com/caarlos0/env).
type Config struct {
	// Interpreters is the ordered interpreter candidate list. The first
	// name that resolves on PATH is used; order is significant.
	// Env override uses a colon-separated list, e.g.
	// PDFMARK_INTERPRETERS=python3.11:python3.
	Interpreters []string `yaml:"interpreters" json:"interpreters" env:"PDFMARK_INTERPRETERS" envSeparator:":"`

	// EntryPoint is the file handed to the interpreter, relative to the
	// working directory.
	EntryPoint string `yaml:"entryPoint" json:"entryPoint" env:"PDFMARK_ENTRY_POINT"`

	// Port is the port the application is expected to serve on. It is
	// only used to format the printed URL and the check command's
	// advisory probe — the launcher never binds it.
	Port int `yaml:"port" json:"port" env:"PDFMARK_PORT"`
}

// Default returns the built-in configuration matching the historical
// launcher script.
func Default() Config {
	return Config{
		Interpreters: []string{"python3", "python"},
		EntryPoint:   "main.py",
		Port:         8083,
	}
}

// URL returns the address printed in the startup banner.
func (c Config) URL() string {
	return fmt.Sprintf("http://localhost:%d", c.Port)
}

// Validate checks the configuration for values that cannot work.
func (c Config) Validate() error {
	if len(c.Interpreters) == 0 {
		return fmt.Errorf("config: interpreter candidate list must not be empty")
	}
	for _, name := range c.Interpreters {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("config: interpreter candidate names must not be blank")
		}
	}
	if c.EntryPoint == "" {
		return fmt.Errorf("config: entry point must not be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config: port %d out of range (1-65535)", c.Port)
	}
	return nil
}

// Load assembles the effective configuration for the given working
// directory: defaults, then an optional config file found in dir, then
// environment variable overrides.
//
// A missing config file is not an error. A present but unparsable one
// is: silently launching with defaults the user tried to override would
// be worse than failing.
func Load(dir string) (Config, error) {
	cfg := Default()

	path, found := findConfigFile(dir)
	if found {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("failed to load config file %q", path), err)
		}
	}

	// Environment variables take precedence over the file. env.Parse
	// only touches fields whose variables are actually set, so file
	// values survive when no override is present.
	if err := env.Parse(&cfg); err != nil {
		return Config{}, model.WrapCLIError(model.ExitGeneralError,
			"failed to parse PDFMARK_* environment variables", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, model.WrapCLIError(model.ExitGeneralError,
			"invalid launcher configuration", err)
	}

	return cfg, nil
}

// findConfigFile returns the first config file candidate that exists in
// dir, or found=false when none do.
func findConfigFile(dir string) (path string, found bool) {
	for _, name := range configFileNames {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err == nil && info.Mode().IsRegular() {
			return candidate, true
		}
	}
	return "", false
}

// loadFile parses a single config file into cfg, dispatching on the
// file extension. YAML files go through gopkg.in/yaml.v3; JSON/JSONC
// files are comment-stripped with jsonc.ToJSON and then parsed with
// encoding/json.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse YAML: %w", err)
		}
	case ".json", ".jsonc":
		clean := jsonc.ToJSON(data)
		if err := json.Unmarshal(clean, cfg); err != nil {
			return fmt.Errorf("parse JSON: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config extension %q", ext)
	}
	return nil
}
