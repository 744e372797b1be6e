package config

import (
	"fmt"
	"sort"
	"strings"
)

// ConfigValueType defines the expected type for a configuration value.
type ConfigValueType int

const (
	TypeBool ConfigValueType = iota
	TypeInt
	TypeString
	TypeList
	TypeEnum
)

// String returns the string representation of ConfigValueType.
func (t ConfigValueType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeString:
		return "string"
	case TypeList:
		return "list"
	case TypeEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// ConfigKeySchema defines a known configuration key with its expected type and default.
type ConfigKeySchema struct {
	Path          string          // Key as written in the config file
	Type          ConfigValueType // Expected value type
	AllowedValues []string        // Valid values for enum types (empty for non-enums)
	Description   string          // Human-readable description for help text
	Default       interface{}     // Default value
}

// EnvVar returns the environment variable overriding this key.
func (s ConfigKeySchema) EnvVar() string {
	return EnvPrefix + strings.ToUpper(s.Path)
}

// DefaultString formats the default value for display.
func (s ConfigKeySchema) DefaultString() string {
	switch v := s.Default.(type) {
	case []string:
		return strings.Join(v, ",")
	case string:
		if v == "" {
			return `""`
		}
		return v
	default:
		return fmt.Sprint(v)
	}
}

// KnownKeys is the registry of all known configuration keys with their schemas.
var KnownKeys = map[string]ConfigKeySchema{
	"labels_env": {
		Path:        "labels_env",
		Type:        TypeString,
		Description: "Environment variable holding the pull-request labels JSON",
		Default:     "PULL_LABELS",
	},
	"delimiter": {
		Path:        "delimiter",
		Type:        TypeString,
		Description: "Separator between package and bump in a label name",
		Default:     ":",
	},
	"github_output": {
		Path:        "github_output",
		Type:        TypeBool,
		Description: "Write has_labels and matrix outputs to $GITHUB_OUTPUT",
		Default:     false,
	},
	"changelog": {
		Path:        "changelog",
		Type:        TypeString,
		Description: "Default changelog path, relative to the repository root",
		Default:     "CHANGELOG.md",
	},
	"notes_output": {
		Path:        "notes_output",
		Type:        TypeString,
		Description: "File the release notes are written to",
		Default:     "release-notes.txt",
	},
	"markers": {
		Path:        "markers",
		Type:        TypeList,
		Description: "Heading tokens marking the upcoming section",
		Default:     []string{"TBD", "UPCOMING"},
	},
	"packages_dir": {
		Path:        "packages_dir",
		Type:        TypeString,
		Description: "Directory holding one sub-directory per package",
		Default:     "modules",
	},
	"max_parallel": {
		Path:        "max_parallel",
		Type:        TypeInt,
		Description: "Maximum concurrent package extractions (0 = unlimited)",
		Default:     0,
	},
	"log_level": {
		Path:          "log_level",
		Type:          TypeEnum,
		AllowedValues: []string{"debug", "info", "warn", "error"},
		Description:   "Log level for diagnostics on stderr",
		Default:       "warn",
	},
}

// SortedKeys returns the known key names in alphabetical order.
func SortedKeys() []string {
	keys := make([]string, 0, len(KnownKeys))
	for k := range KnownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
