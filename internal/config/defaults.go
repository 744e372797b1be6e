package config

import "slices"

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options
func GetDefaultConfigTemplate() string {
	return `# releasekit configuration
# See 'releasekit config keys' for all options

# Label matrix settings
labels_env: PULL_LABELS               # Env var holding toJson(github.event.pull_request.labels)
delimiter: ":"                        # Label format: <package><delimiter><major|minor|patch>
github_output: false                  # Also write has_labels/matrix to $GITHUB_OUTPUT

# Release notes settings
changelog: CHANGELOG.md               # Default changelog, relative to the repository root
notes_output: release-notes.txt       # File the upcoming section is written to
markers:                              # Heading tokens of the upcoming section (## [TBD])
  - TBD
  - UPCOMING

# Monorepo settings
packages_dir: modules                 # One sub-directory per package
max_parallel: 0                       # Concurrent package extractions (0 = unlimited)

# Logging
log_level: warn                       # debug | info | warn | error
`
}

// GetDefaults returns the default configuration values keyed by config key.
// List values are copied so callers may modify them.
func GetDefaults() map[string]interface{} {
	defaults := make(map[string]interface{}, len(KnownKeys))
	for key, schema := range KnownKeys {
		if list, ok := schema.Default.([]string); ok {
			defaults[key] = slices.Clone(list)
			continue
		}
		defaults[key] = schema.Default
	}
	return defaults
}
