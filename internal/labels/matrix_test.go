// Package labels tests label parsing and build matrix generation.
// Related: internal/labels/matrix.go, internal/labels/types.go
// Tags: labels, matrix, bump, ci

package labels

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLabels(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		raw  string
		want []Label
	}{
		"empty string": {
			raw:  "",
			want: []Label{},
		},
		"whitespace only": {
			raw:  "  \n",
			want: []Label{},
		},
		"malformed json": {
			raw:  `[{"name": "core:major"`,
			want: []Label{},
		},
		"json object instead of array": {
			raw:  `{"name": "core:major"}`,
			want: []Label{},
		},
		"json null": {
			raw:  `null`,
			want: []Label{},
		},
		"webhook payload with extra fields": {
			raw: `[{"color":"FFFFF7","default":false,"id":1786730933,"name":"core:major","node_id":"MDU6"},
				{"name":"ui:patch","description":"ui"}]`,
			want: []Label{{Name: "core:major"}, {Name: "ui:patch"}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseLabels(tt.raw))
		})
	}
}

func TestParseName(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		name      string
		delimiter string
		want      Entry
		wantOK    bool
	}{
		"major": {
			name:   "core:major",
			want:   Entry{Package: "core", Bump: BumpMajor},
			wantOK: true,
		},
		"minor": {
			name:   "client-common:minor",
			want:   Entry{Package: "client-common", Bump: BumpMinor},
			wantOK: true,
		},
		"patch": {
			name:   "ui:patch",
			want:   Entry{Package: "ui", Bump: BumpPatch},
			wantOK: true,
		},
		"superseded bump vocabulary": {
			name:   "docs:feature",
			wantOK: false,
		},
		"superseded release suffix": {
			name:   "core-release",
			wantOK: false,
		},
		"too many delimiters": {
			name:   "a:b:patch",
			wantOK: false,
		},
		"no delimiter": {
			name:   "bug",
			wantOK: false,
		},
		"empty package": {
			name:   ":patch",
			wantOK: false,
		},
		"bump is case sensitive": {
			name:   "core:Major",
			wantOK: false,
		},
		"custom delimiter": {
			name:      "core-minor",
			delimiter: "-",
			want:      Entry{Package: "core", Bump: BumpMinor},
			wantOK:    true,
		},
		"custom delimiter rejects default": {
			name:      "core:minor",
			delimiter: "-",
			wantOK:    false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseName(tt.name, Options{Delimiter: tt.delimiter})
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildFromJSON(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		raw  string
		want string
	}{
		"unset": {
			raw:  "",
			want: `{"include":[]}`,
		},
		"mixed labels": {
			raw:  `[{"name":"core:major"},{"name":"ui:patch"},{"name":"docs:feature"}]`,
			want: `{"include":[{"package":"core","bump":"major"},{"package":"ui","bump":"patch"}]}`,
		},
		"duplicates are kept in order": {
			raw:  `[{"name":"ui:patch"},{"name":"core:minor"},{"name":"ui:patch"}]`,
			want: `{"include":[{"package":"ui","bump":"patch"},{"package":"core","bump":"minor"},{"package":"ui","bump":"patch"}]}`,
		},
		"nothing matches": {
			raw:  `[{"name":"bug"},{"name":"needs-review"}]`,
			want: `{"include":[]}`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			data, err := BuildFromJSON(tt.raw, Options{}).JSON()
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestBuild_EntriesArePrefixesOfLabels(t *testing.T) {
	t.Parallel()

	input := []Label{
		{Name: "core:major"},
		{Name: "a:b:c"},
		{Name: "x::patch"},
		{Name: "web:minor"},
		{Name: ""},
		{Name: "sdk:patch:extra"},
	}

	m := Build(input, Options{})
	assert.LessOrEqual(t, len(m.Include), len(input))

	for _, e := range m.Include {
		found := false
		for _, l := range input {
			if strings.HasPrefix(l.Name, e.Package+DefaultDelimiter) {
				found = true
				break
			}
		}
		assert.True(t, found, "entry %q has no source label", e.Package)
		assert.NotContains(t, e.Package, DefaultDelimiter)
	}
	assert.Equal(t, []string{"core", "web"}, m.Packages())
}

func TestMatrix_HasEntries(t *testing.T) {
	t.Parallel()

	assert.False(t, Matrix{}.HasEntries())
	assert.False(t, Build(nil, Options{}).HasEntries())
	assert.True(t, Matrix{Include: []Entry{{Package: "core", Bump: BumpPatch}}}.HasEntries())
}

func TestMatrix_JSON_NilInclude(t *testing.T) {
	t.Parallel()

	data, err := Matrix{}.JSON()
	require.NoError(t, err)
	assert.Equal(t, `{"include":[]}`, string(data))
}

func TestReadMatrix(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		want    []string
		wantErr bool
	}{
		"valid matrix": {
			input: `{"include":[{"package":"core","bump":"major"},{"package":"ui","bump":"patch"}]}`,
			want:  []string{"core", "ui"},
		},
		"empty include": {
			input: `{"include":[]}`,
			want:  []string{},
		},
		"missing include": {
			input: `{}`,
			want:  []string{},
		},
		"empty package": {
			input:   `{"include":[{"package":"","bump":"major"}]}`,
			wantErr: true,
		},
		"not json": {
			input:   `core ui`,
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m, err := ReadMatrix(strings.NewReader(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Packages())
		})
	}
}

func TestBump_IsValid(t *testing.T) {
	t.Parallel()

	for _, b := range ValidBumps() {
		assert.True(t, b.IsValid(), string(b))
	}
	for _, b := range []Bump{"breaking", "feature", "fix", "", "MAJOR"} {
		assert.False(t, b.IsValid(), string(b))
	}
}
