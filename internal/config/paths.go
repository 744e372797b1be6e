package config

// ProjectConfigPath returns the path to the preferred project-level config file.
// This is always .releasekit.yml relative to the current directory.
func ProjectConfigPath() string {
	return ".releasekit.yml"
}

// ProjectConfigPaths returns the project-level config files in lookup order.
// The first one that exists is loaded; the others are ignored.
func ProjectConfigPaths() []string {
	return []string{
		ProjectConfigPath(),
		".releasekit.yaml",
		".releasekit.json",
	}
}
