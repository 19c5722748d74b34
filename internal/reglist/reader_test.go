// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reglist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ireg_result.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []float64
		points  int
		errMsg  string
	}{
		{
			name: "exact multiple of three after sentinel drop",
			// Two points stored tail-first, then the trailing sentinel.
			content: "6 5 4 3 2 1\n1",
			want:    []float64{1, 2, 3, 4, 5, 6},
			points:  2,
		},
		{
			name: "leading point count is dropped",
			content: `2
6 5 4
3 2 1
1`,
			want:   []float64{1, 2, 3, 4, 5, 6},
			points: 2,
		},
		{
			name:    "fractional physical coordinates",
			content: "30.25 -20.5 10.75 10.75",
			want:    []float64{10.75, -20.5, 30.25},
			points:  1,
		},
		{
			name:    "empty file",
			content: "",
			errMsg:  "is empty",
		},
		{
			name:    "non-numeric token",
			content: "1 2 x 1",
			errMsg:  "bad coordinate",
		},
		{
			name:    "unusable length",
			content: "1 2 3 4 5 9",
			errMsg:  "not a multiple of 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeList(t, tt.content)
			set, err := Read(path)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.points, set.NumPoints)
			assert.Equal(t, tt.want, set.Fixed)
			assert.False(t, set.HasMoving())
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening landmark list")
}
