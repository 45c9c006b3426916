package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the structure of config.yml used by the tool. Every field
// has a default, so the tool runs with no config file at all.
type Config struct {
	Input struct {
		// Sheet is the workbook sheet the raw records are read from.
		Sheet string `yaml:"sheet"`
		// WinToken is matched as a case-sensitive substring of Result.
		WinToken string `yaml:"win_token"`
	} `yaml:"input"`
	Web struct {
		Addr string `yaml:"addr"`
	} `yaml:"web"`
	Export struct {
		Dir string `yaml:"dir"`
	} `yaml:"export"`
}

const (
	DefaultSheet = "Données Brutes"
	DefaultAddr  = ":8080"
	DefaultDir   = "./reports"
)

// Load parses the YAML configuration file pointed to by CONFIG_PATH (default
// ./config.yml). A missing file yields the defaults; a present but invalid
// file is an error.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config.yml"
	}

	c := &Config{}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.applyDefaults()
			return c, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	c.applyDefaults()
	slog.Info(fmt.Sprintf("Loaded config: %s", path))
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Input.Sheet == "" {
		c.Input.Sheet = DefaultSheet
	}
	// WinToken stays empty here; the domain applies its own default.
	if c.Web.Addr == "" {
		c.Web.Addr = DefaultAddr
	}
	if c.Export.Dir == "" {
		c.Export.Dir = DefaultDir
	}
}
