// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 lonelyowl13

// Package config handles optional comfygen project configuration.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// ConfigFileName is the name of the comfygen configuration file.
const ConfigFileName = "comfygen.yaml"

// Defaults used when no config file overrides them.
const (
	DefaultServer         = "http://127.0.0.1:8188"
	DefaultOutput         = "workflow_api.py"
	DefaultTimeoutSeconds = 300
)

// Config represents the comfygen.yaml project configuration file.
// Every field except version is optional; zero values fall back to the
// defaults.
type Config struct {
	Version        int    `yaml:"version"`
	Server         string `yaml:"server,omitempty"`
	Output         string `yaml:"output,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
}

// Default returns a Config carrying the built-in defaults.
func Default() *Config {
	return &Config{
		Version:        CurrentConfigVersion,
		Server:         DefaultServer,
		Output:         DefaultOutput,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// Load reads a Config from a file path and fills unset fields with the
// defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// LoadDefault loads comfygen.yaml from the working directory when it
// exists, and the built-in defaults otherwise.
func LoadDefault() (*Config, error) {
	if _, err := os.Stat(ConfigFileName); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(ConfigFileName)
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.TimeoutSeconds < 0 {
		return errors.New("timeout_seconds must not be negative")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server == "" {
		c.Server = DefaultServer
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
}
