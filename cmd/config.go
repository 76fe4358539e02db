package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the optional defaults file for the run command.
// Unset fields leave the flag defaults untouched; explicit flags always win.
type Config struct {
	Count    *int    `yaml:"count" toml:"count"`
	Below    *uint64 `yaml:"below" toml:"below"`
	Big      *bool   `yaml:"big" toml:"big"`
	Trace    string  `yaml:"trace" toml:"trace"`
	LogLevel string  `yaml:"log" toml:"log"`
}

// LoadConfig reads a config file based on its extension (.yaml, .yml, .toml).
// Both formats use strict field checking: typos must cause errors.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("parse YAML config %s: %w", path, err)
		}
	case ".toml":
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("parse TOML config %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
