// Package config resolves the CLI's settings from, in order of precedence,
// environment variables, the YAML config file in the state directory, and
// built-in defaults. A .env file in the working directory is loaded by the
// root command before this runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	defaultAPIURL   = "http://localhost:8080/api"
	defaultPageSize = 10

	configFile = "config.yaml"
)

// Config is the resolved CLI configuration.
type Config struct {
	APIURL   string `yaml:"api_url"`
	PageSize int    `yaml:"page_size"`
	StateDir string `yaml:"-"`
}

// Load resolves the configuration. A missing config file is fine; a present
// but malformed one is an error rather than a silent fallback.
func Load() (*Config, error) {
	stateDir := os.Getenv("PIXSTASH_STATE_DIR")
	if stateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate user config dir: %w", err)
		}
		stateDir = filepath.Join(base, "pixstash")
	}

	cfg := &Config{
		APIURL:   defaultAPIURL,
		PageSize: defaultPageSize,
		StateDir: stateDir,
	}

	data, err := os.ReadFile(filepath.Join(stateDir, configFile))
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if v := os.Getenv("PIXSTASH_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("PIXSTASH_PAGE_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 1 {
			return nil, fmt.Errorf("invalid PIXSTASH_PAGE_SIZE %q", v)
		}
		cfg.PageSize = size
	}

	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}
	if cfg.PageSize < 1 {
		cfg.PageSize = defaultPageSize
	}

	return cfg, nil
}
