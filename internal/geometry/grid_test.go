// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package geometry

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestToPhysical(t *testing.T) {
	tests := []struct {
		name  string
		grid  Grid
		voxel r3.Vec
		want  r3.Vec
	}{
		{
			name:  "identity grid",
			grid:  Identity(),
			voxel: r3.Vec{X: 10, Y: 20, Z: 30},
			want:  r3.Vec{X: 10, Y: 20, Z: 30},
		},
		{
			name: "non-unit spacing with offset",
			grid: Grid{
				Offset:  r3.Vec{X: -120.5, Y: 4, Z: 0.25},
				Spacing: r3.Vec{X: 0.78, Y: 0.78, Z: 2.5},
			},
			voxel: r3.Vec{X: 100, Y: 50, Z: 8},
			want:  r3.Vec{X: 100*0.78 - 120.5, Y: 50*0.78 + 4, Z: 8*2.5 + 0.25},
		},
		{
			name: "origin voxel maps to offset",
			grid: Grid{
				Offset:  r3.Vec{X: 1, Y: 2, Z: 3},
				Spacing: r3.Vec{X: 9, Y: 9, Z: 9},
			},
			voxel: r3.Vec{},
			want:  r3.Vec{X: 1, Y: 2, Z: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.grid.ToPhysical(tt.voxel)
			if got != tt.want {
				t.Errorf("ToPhysical(%v) = %v, want %v", tt.voxel, got, tt.want)
			}
		})
	}
}

func TestApplyAll(t *testing.T) {
	g := Grid{
		Offset:  r3.Vec{X: 0, Y: 0, Z: 0},
		Spacing: r3.Vec{X: 2, Y: 2, Z: 2},
	}
	coords := []float64{10, 20, 30, 11, 21, 31}
	g.ApplyAll(coords)

	want := []float64{20, 40, 60, 22, 42, 62}
	for i := range want {
		if coords[i] != want[i] {
			t.Fatalf("coords = %v, want %v", coords, want)
		}
	}
}

func TestApplyAllEmpty(t *testing.T) {
	g := Identity()
	g.ApplyAll(nil) // must not panic
}
