package output

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestPrintFunctions(t *testing.T) {
	color.NoColor = true

	tests := map[string]struct {
		print func(*bytes.Buffer)
		want  string
	}{
		"success": {
			print: func(b *bytes.Buffer) { PrintSuccess(b, "wrote release-notes.txt") },
			want:  "✓ wrote release-notes.txt\n",
		},
		"warning": {
			print: func(b *bytes.Buffer) { PrintWarning(b, "no upcoming section") },
			want:  "! no upcoming section\n",
		},
		"key value": {
			print: func(b *bytes.Buffer) { PrintKeyValue(b, 8, "key", "value") },
			want:  "key      value\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(&buf)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
