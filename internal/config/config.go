// Package config loads and validates deck configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2slides/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrEmptyDelimiter  = errors.New("delimiter cannot be empty")
	ErrEmptyKind       = errors.New("processor kind cannot be empty")
)

// Config holds all configuration for deck generation. Processors is an
// ordered list: invocation order is the order in the file, and later
// processors see the sub-slide structure left by earlier ones.
type Config struct {
	Delimiter  string          `yaml:"delimiter"`
	Template   string          `yaml:"template"`
	Output     OutputConfig    `yaml:"output"`
	Processors []ProcessorSpec `yaml:"processors"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = current directory)
}

// ProcessorSpec names one processor to instantiate, with its free-form
// options. The options are not interpreted here; each processor factory
// decodes the map into its own typed option struct.
type ProcessorSpec struct {
	Kind    string         `yaml:"kind"`
	Options map[string]any `yaml:"options"`
}

// Validate checks structural requirements: a non-empty delimiter and a
// kind for every processor entry.
func (c *Config) Validate() error {
	if c.Delimiter == "" {
		return ErrEmptyDelimiter
	}
	for i, spec := range c.Processors {
		if spec.Kind == "" {
			return fmt.Errorf("%w: processors[%d]", ErrEmptyKind, i)
		}
	}
	return nil
}

// DefaultConfig returns a configuration with the standard ">>>" delimiter
// and no processors.
func DefaultConfig() *Config {
	return &Config{
		Delimiter: ">>>",
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, then the user config
// directory under go-md2slides/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-md2slides", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
