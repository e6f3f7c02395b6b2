package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nao1215/favbooks/internal/analysis"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".favbooks"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .favbooks configuration file.
// Empty values leave the corresponding setting untouched.
type File struct {
	// Input is the visitor list path.
	Input string `yaml:"input,omitempty"`

	// Author is the author looked up by the presence check.
	Author string `yaml:"author,omitempty"`

	// Format is the report format: text, markdown, json or xlsx.
	Format string `yaml:"format,omitempty"`

	// UniqueOrder is the unique books order: title or appearance.
	UniqueOrder string `yaml:"uniqueOrder,omitempty"`
}

// Flag names that a config file value can stand in for.
const (
	FlagInput  = "input"
	FlagAuthor = "author"
	FlagFormat = "format"
	FlagOrder  = "order"
)

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	return &cf, nil
}

// Apply copies the file's values into the config.
// A value is skipped when it is empty or when changed reports that the
// matching flag was set on the command line, so flags win over the file.
// A nil changed treats every flag as unset.
func (f *File) Apply(c *Config, changed func(flag string) bool) {
	if f == nil {
		return
	}
	if changed == nil {
		changed = func(string) bool { return false }
	}

	if f.Input != "" && !changed(FlagInput) {
		c.InputPath = f.Input
	}
	if f.Author != "" && !changed(FlagAuthor) {
		c.Author = f.Author
	}
	if f.Format != "" && !changed(FlagFormat) {
		c.Format = Format(f.Format)
	}
	if f.UniqueOrder != "" && !changed(FlagOrder) {
		c.UniqueOrder = analysis.Order(f.UniqueOrder)
	}
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .favbooks in the current directory
// 3. Look for .favbooks in the user's home directory
// 4. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}
	candidates = append(candidates, XDGConfigFile())

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
