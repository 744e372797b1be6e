package labels

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteGitHubOutput(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		matrix Matrix
		want   string
	}{
		"empty matrix": {
			matrix: Matrix{},
			want:   "has_labels=false\nmatrix={\"include\":[]}\n",
		},
		"with entries": {
			matrix: Matrix{Include: []Entry{{Package: "core", Bump: BumpMinor}}},
			want:   "has_labels=true\nmatrix={\"include\":[{\"package\":\"core\",\"bump\":\"minor\"}]}\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, WriteGitHubOutput(&buf, tt.matrix))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestAppendGitHubOutput_KeepsExistingOutputs(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "github_output")
	require.NoError(t, os.WriteFile(path, []byte("previous=1\n"), 0o644))

	m := Matrix{Include: []Entry{{Package: "ui", Bump: BumpPatch}}}
	require.NoError(t, AppendGitHubOutput(path, m))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous=1\nhas_labels=true\nmatrix={\"include\":[{\"package\":\"ui\",\"bump\":\"patch\"}]}\n", string(data))
}

func TestAppendGitHubOutput_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "github_output")
	err := AppendGitHubOutput(path, Matrix{})
	assert.Error(t, err)
}
