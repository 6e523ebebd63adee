// Package config resolves regstub settings from the environment and an
// optional config file. Flags override everything here.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const DefaultStubBase = "./stub"

// Config holds the resolvable settings
type Config struct {
	APIBase  string `yaml:"api_base"`
	StubBase string `yaml:"stub_base"`
}

// Load resolves the config: file values first, then environment overrides,
// then defaults. A missing or unreadable config file is not an error.
func Load() Config {
	cfg := loadFile(filePath())

	if env := os.Getenv("REGSTUB_API_BASE"); env != "" {
		cfg.APIBase = env
	}
	if env := os.Getenv("REGSTUB_STUB_BASE"); env != "" {
		cfg.StubBase = env
	}
	if cfg.StubBase == "" {
		cfg.StubBase = DefaultStubBase
	}
	return cfg
}

// APIBase returns the resolved API base URL, which may be empty
func APIBase() string {
	return Load().APIBase
}

// StubBase returns the resolved stub base directory
func StubBase() string {
	return Load().StubBase
}

func loadFile(path string) Config {
	var cfg Config
	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

func filePath() string {
	if env := os.Getenv("REGSTUB_CONFIG"); env != "" {
		return env
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "regstub", "config.yaml")
}
