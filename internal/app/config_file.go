package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the optional configuration file schema.
type FileConfig struct {
	URL string `yaml:"url" json:"url"`

	Fetch struct {
		Timeout      time.Duration `yaml:"timeout" json:"timeout"`
		UserAgent    string        `yaml:"userAgent" json:"userAgent"`
		MaxRedirects int           `yaml:"maxRedirects" json:"maxRedirects"`
	} `yaml:"fetch" json:"fetch"`

	Export struct {
		Path string `yaml:"path" json:"path"`
	} `yaml:"export" json:"export"`

	Log struct {
		File    string `yaml:"file" json:"file"`
		Verbose bool   `yaml:"verbose" json:"verbose"`
	} `yaml:"log" json:"log"`
}

// LoadConfigFile reads YAML or JSON into FileConfig. Both are decoded with
// the YAML parser, so durations such as "15s" work in either format.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = "json"
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse %s: %w", format, err)
	}
	return fc, nil
}

// ApplyFileConfig overlays the values set in fc onto cfg. Fields left empty
// in the file keep their current value.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if fc.URL != "" {
		cfg.InitialURL = fc.URL
	}
	if fc.Fetch.Timeout > 0 {
		cfg.Timeout = fc.Fetch.Timeout
	}
	if fc.Fetch.UserAgent != "" {
		cfg.UserAgent = fc.Fetch.UserAgent
	}
	if fc.Fetch.MaxRedirects > 0 {
		cfg.RedirectMaxHops = fc.Fetch.MaxRedirects
	}
	if fc.Export.Path != "" {
		cfg.ExportPath = fc.Export.Path
	}
	if fc.Log.File != "" {
		cfg.LogFile = fc.Log.File
	}
	if fc.Log.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig performs minimal validation of the settings.
func ValidateConfig(cfg Config) error {
	if cfg.Timeout <= 0 {
		return errors.New("config: fetch timeout must be positive")
	}
	if cfg.RedirectMaxHops < 0 {
		return errors.New("config: negative redirect limit is not allowed")
	}
	if strings.TrimSpace(cfg.UserAgent) == "" {
		return errors.New("config: user agent is required")
	}
	return nil
}
