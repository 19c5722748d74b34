// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pointpair

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func writeHeader(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixed.mhd")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadMetaHeader(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    MetaHeader
		errMsg  string
	}{
		{
			name: "typical header",
			content: `ObjectType = Image
NDims = 3
DimSize = 512 512 129
ElementType = MET_SHORT
Orientation = 1 0 0 0 1 0 0 0 1
Offset = -120.5 -118 -60.25
ElementSpacing = 0.78 0.78 2.5
ElementDataFile = fixed.raw
`,
			want: MetaHeader{
				Orientation: "1 0 0 0 1 0 0 0 1",
				DimSize:     "512 512 129",
				Offset:      r3.Vec{X: -120.5, Y: -118, Z: -60.25},
				Spacing:     r3.Vec{X: 0.78, Y: 0.78, Z: 2.5},
			},
		},
		{
			name: "last occurrence wins",
			content: `Offset = 1 1 1
ElementSpacing = 1 1 1
Offset = 2 3 4
ElementSpacing = 5 6 7
`,
			want: MetaHeader{
				Offset:  r3.Vec{X: 2, Y: 3, Z: 4},
				Spacing: r3.Vec{X: 5, Y: 6, Z: 7},
			},
		},
		{
			name:    "missing spacing",
			content: "DimSize = 10 10 10\nOffset = 0 0 0\n",
			errMsg:  "no ElementSpacing line",
		},
		{
			name:    "missing offset",
			content: "ElementSpacing = 1 1 1\n",
			errMsg:  "no Offset line",
		},
		{
			name:    "short offset line",
			content: "Offset = 1 2\nElementSpacing = 1 1 1\n",
			errMsg:  "bad Offset line",
		},
		{
			name:    "non-numeric spacing",
			content: "Offset = 0 0 0\nElementSpacing = a b c\n",
			errMsg:  "bad ElementSpacing line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeHeader(t, tt.content)
			got, err := ReadMetaHeader(path)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadMetaHeaderMissingFile(t *testing.T) {
	_, err := ReadMetaHeader(filepath.Join(t.TempDir(), "nope.mhd"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening image header")
}
