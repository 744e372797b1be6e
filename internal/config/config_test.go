// Package config tests configuration loading, layering and validation.
// Related: internal/config/config.go, internal/config/validate.go
// Tags: config, koanf, yaml, json, env, validation

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "PULL_LABELS", cfg.LabelsEnv)
	assert.Equal(t, ":", cfg.Delimiter)
	assert.False(t, cfg.GitHubOutput)
	assert.Equal(t, "CHANGELOG.md", cfg.Changelog)
	assert.Equal(t, "release-notes.txt", cfg.NotesOutput)
	assert.Equal(t, []string{"TBD", "UPCOMING"}, cfg.Markers)
	assert.Equal(t, "modules", cfg.PackagesDir)
	assert.Equal(t, 0, cfg.MaxParallel)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_ProjectYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, ".releasekit.yml", `
labels_env: LABELS
notes_output: notes.md
markers:
  - UNRELEASED
github_output: true
`)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "LABELS", cfg.LabelsEnv)
	assert.Equal(t, "notes.md", cfg.NotesOutput)
	assert.Equal(t, []string{"UNRELEASED"}, cfg.Markers)
	assert.True(t, cfg.GitHubOutput)
	assert.Equal(t, ":", cfg.Delimiter, "unset keys keep defaults")
}

func TestLoad_ProjectJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "releasekit.json", `{"delimiter": "-", "max_parallel": 4}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "-", cfg.Delimiter)
	assert.Equal(t, 4, cfg.MaxParallel)
}

func TestLoad_YAMLPreferredOverJSON(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, ".releasekit.yml", "packages_dir: packages\n")
	writeFile(t, dir, ".releasekit.json", `{"packages_dir": "ignored"}`)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "packages", cfg.PackagesDir)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, ".releasekit.yml", "notes_output: from-file.txt\n")

	t.Setenv("RELEASEKIT_NOTES_OUTPUT", "from-env.txt")
	t.Setenv("RELEASEKIT_MARKERS", "NEXT, TBD,")
	t.Setenv("RELEASEKIT_GITHUB_OUTPUT", "true")
	t.Setenv("RELEASEKIT_MAX_PARALLEL", "8")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "from-env.txt", cfg.NotesOutput)
	assert.Equal(t, []string{"NEXT", "TBD"}, cfg.Markers)
	assert.True(t, cfg.GitHubOutput)
	assert.Equal(t, 8, cfg.MaxParallel)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := map[string]struct {
		content   string
		wantField string
	}{
		"invalid log level": {
			content:   "log_level: verbose\n",
			wantField: "log_level",
		},
		"multi character delimiter": {
			content:   "delimiter: '::'\n",
			wantField: "delimiter",
		},
		"empty labels env": {
			content:   "labels_env: ''\n",
			wantField: "labels_env",
		},
		"negative parallelism": {
			content:   "max_parallel: -1\n",
			wantField: "max_parallel",
		},
		"bracketed marker": {
			content:   "markers: ['[TBD]']\n",
			wantField: "markers",
		},
		"blank marker": {
			content:   "markers: ['TBD', '']\n",
			wantField: "markers",
		},
		"empty markers": {
			content:   "markers: []\n",
			wantField: "markers",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "config.yml", tt.content)

			_, err := Load(path)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestLoad_InvalidYAMLSyntax(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", "labels_env: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating YAML syntax")
}

func TestLoad_MissingExplicitConfig(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "config file not found", verr.Message)
}

func TestGetDefaults_CoversKnownKeys(t *testing.T) {
	defaults := GetDefaults()
	for _, key := range SortedKeys() {
		_, ok := defaults[key]
		assert.True(t, ok, "missing default for %s", key)
	}

	markers := defaults["markers"].([]string)
	markers[0] = "MUTATED"
	assert.Equal(t, []string{"TBD", "UPCOMING"}, KnownKeys["markers"].Default)
}

func TestConfigKeySchema_EnvVar(t *testing.T) {
	assert.Equal(t, "RELEASEKIT_NOTES_OUTPUT", KnownKeys["notes_output"].EnvVar())
	assert.Equal(t, "TBD,UPCOMING", KnownKeys["markers"].DefaultString())
	assert.Equal(t, "false", KnownKeys["github_output"].DefaultString())
}

func TestDefaultConfigTemplate_IsValidYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", GetDefaultConfigTemplate())
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "PULL_LABELS", cfg.LabelsEnv)
}
