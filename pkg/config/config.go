// Package config provides configuration loading for item list filters.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dirview/itemfilter/pkg/filtering"
)

// Option defines the interface for configuration options
type Option func(*loaderConfig) error

// loaderConfig defines the configuration for loading a configuration
type loaderConfig struct {
	path string
}

// WithConfigPath loads configuration from a YAML file
func WithConfigPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return fmt.Errorf("path is required")
		}

		// Resolve symlinks to prevent symlink attacks.
		// Note that this calls filepath.Clean internally.
		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fmt.Errorf("failed to evaluate symlinks: %w", err)
		}

		// Validate the path to prevent path traversal attacks
		if !filepath.IsAbs(realPath) {
			if !filepath.IsLocal(realPath) {
				return fmt.Errorf("path is not local or contains invalid traversal: %s", path)
			}
		}

		cfg.path = realPath
		return nil
	}
}

// Config represents the root configuration structure
type Config struct {
	// Filter holds the item visibility filter settings
	Filter FilterConfig `yaml:"filter"`
}

// FilterConfig defines the settings applied to an ItemFilter
type FilterConfig struct {
	// Pattern is the name pattern; a substring by default, a wildcard
	// pattern when it contains '*', '?' or '['
	Pattern string `yaml:"pattern,omitempty"`

	// MimeTypes lists the MIME types to allow; a non-empty list acts as a
	// strict allow-list
	MimeTypes []string `yaml:"mimeTypes,omitempty"`

	// ExcludeMimeTypes lists the MIME types to reject; exclusion wins
	// over inclusion
	ExcludeMimeTypes []string `yaml:"excludeMimeTypes,omitempty"`

	// HiddenFilesShown controls hidden item visibility
	// Defaults to true when omitted
	HiddenFilesShown *bool `yaml:"hiddenFilesShown,omitempty"`

	// HiddenFilesWhitelist configures the always-visible hidden item names
	HiddenFilesWhitelist *WhitelistConfig `yaml:"hiddenFilesWhitelist,omitempty"`
}

// WhitelistConfig defines the hidden-files whitelist settings
type WhitelistConfig struct {
	// Enabled activates whitelist matching for hidden items
	Enabled bool `yaml:"enabled"`

	// Patterns are names or wildcard patterns of hidden items that stay
	// visible while hidden files are suppressed
	Patterns []string `yaml:"patterns,omitempty"`
}

// Load reads, parses and validates a configuration
func Load(opts ...Option) (*Config, error) {
	loader := &loaderConfig{}
	for _, opt := range opts {
		if err := opt(loader); err != nil {
			return nil, err
		}
	}

	if loader.path == "" {
		return nil, fmt.Errorf("no configuration source specified")
	}

	data, err := os.ReadFile(loader.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	return c.Filter.Validate()
}

// Validate checks the filter settings for errors. Whitelist and name
// patterns are deliberately not validated here: invalid wildcard
// patterns degrade gracefully inside the filter instead of rejecting the
// whole configuration.
func (c *FilterConfig) Validate() error {
	for _, mimeType := range c.MimeTypes {
		if err := validateMimeType(mimeType); err != nil {
			return fmt.Errorf("mimeTypes: %w", err)
		}
	}
	for _, mimeType := range c.ExcludeMimeTypes {
		if err := validateMimeType(mimeType); err != nil {
			return fmt.Errorf("excludeMimeTypes: %w", err)
		}
	}
	return nil
}

func validateMimeType(mimeType string) error {
	if strings.TrimSpace(mimeType) == "" {
		return fmt.Errorf("MIME type must not be empty")
	}
	major, minor, ok := strings.Cut(mimeType, "/")
	if !ok || major == "" || minor == "" {
		return fmt.Errorf("MIME type %q is not a type/subtype token", mimeType)
	}
	return nil
}

// NewFilter builds an ItemFilter from the settings, going through the
// filter's public setters only.
func (c *FilterConfig) NewFilter() *filtering.ItemFilter {
	filter := filtering.NewItemFilter()
	filter.SetPattern(c.Pattern)
	filter.SetMimeTypes(c.MimeTypes)
	filter.SetExcludeMimeTypes(c.ExcludeMimeTypes)

	if c.HiddenFilesShown != nil {
		filter.SetHiddenFilesShown(*c.HiddenFilesShown)
	}
	if whitelist := c.HiddenFilesWhitelist; whitelist != nil {
		filter.SetHiddenFilesWhitelistEnabled(whitelist.Enabled)
		filter.SetHiddenFilesWhitelist(whitelist.Patterns)
	}

	return filter
}
