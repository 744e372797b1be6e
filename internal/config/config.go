// Package config provides hierarchical configuration management for releasekit using koanf.
// Configuration is loaded with priority: environment variables (RELEASEKIT_*) > project config
// (.releasekit.yml or .releasekit.json) > defaults. Values are validated after merging so a
// bad environment override is reported the same way as a bad file entry.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable override.
const EnvPrefix = "RELEASEKIT_"

// Configuration represents the releasekit CLI configuration
type Configuration struct {
	// LabelsEnv names the environment variable holding the pull-request labels JSON.
	LabelsEnv string `koanf:"labels_env" validate:"required"`
	// Delimiter separates package and bump in a label name (e.g. "core:minor").
	Delimiter string `koanf:"delimiter" validate:"required,len=1"`
	// GitHubOutput writes has_labels/matrix step outputs to $GITHUB_OUTPUT.
	GitHubOutput bool `koanf:"github_output"`

	// Changelog is the default changelog path, relative to the repository root.
	Changelog string `koanf:"changelog" validate:"required"`
	// NotesOutput is the file release notes are written to.
	NotesOutput string `koanf:"notes_output" validate:"required"`
	// Markers identify the upcoming section heading, e.g. "TBD" for "## [TBD]".
	Markers []string `koanf:"markers" validate:"required,min=1,dive,required"`
	// PackagesDir holds one directory per package for package-notes.
	PackagesDir string `koanf:"packages_dir" validate:"required"`
	// MaxParallel caps concurrent package extractions (0 = unlimited).
	MaxParallel int `koanf:"max_parallel" validate:"min=0,max=64"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn error"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ProjectConfigPath overrides the project config lookup. The parser is
	// chosen by extension (.json, otherwise YAML).
	ProjectConfigPath string
}

// Load loads configuration from project and environment sources.
// Priority: Environment variables > Project config > Defaults
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	path, err := resolveProjectConfig(opts.ProjectConfigPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := loadProjectConfig(k, path); err != nil {
			return nil, err
		}
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k, path)
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// resolveProjectConfig returns the config file to load, or "" when none exists.
// An explicitly requested path must exist.
func resolveProjectConfig(customPath string) (string, error) {
	if customPath != "" {
		if !fileExists(customPath) {
			return "", &ValidationError{FilePath: customPath, Message: "config file not found"}
		}
		return customPath, nil
	}

	for _, candidate := range ProjectConfigPaths() {
		if fileExists(candidate) {
			return candidate, nil
		}
	}
	return "", nil
}

// loadProjectConfig loads a project config file, picking the parser by extension.
func loadProjectConfig(k *koanf.Koanf, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return fmt.Errorf("failed to load project config %s: %w", path, err)
		}
		return nil
	}

	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for project config: %w", err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load project config %s: %w", path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides.
// List values (markers) are given comma separated.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	provider := env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, any) {
		key = envTransform(key)
		if key == "markers" {
			return key, splitList(value)
		}
		return key, value
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals and validates the merged configuration.
func finalizeConfig(k *koanf.Koanf, path string) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	source := path
	if source == "" {
		source = "config"
	}
	if err := ValidateConfigValues(&cfg, source); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// envTransform converts environment variable names to config keys
// Example: RELEASEKIT_NOTES_OUTPUT -> notes_output
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// splitList splits a comma separated value, dropping empty items.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
