// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package geometry maps voxel indices onto physical-space positions using a
// MetaImage-style affine grid (per-axis offset and spacing).
//
// One grid — the fixed image's — is applied to both fixed and moving voxel
// coordinates. The converter assumes the two scans are co-registered to the
// same grid; independently spaced moving images are not supported.
package geometry

import "gonum.org/v1/gonum/spatial/r3"

// Grid is the affine voxel-to-physical mapping of one image volume.
type Grid struct {
	// Offset is the physical position of voxel (0,0,0).
	Offset r3.Vec

	// Spacing is the physical extent of one voxel along each axis.
	Spacing r3.Vec
}

// Identity returns the unit grid: zero offset, unit spacing.
func Identity() Grid {
	return Grid{Spacing: r3.Vec{X: 1, Y: 1, Z: 1}}
}

// ToPhysical converts a voxel index to its physical position,
// physical = voxel*spacing + offset per axis.
func (g Grid) ToPhysical(voxel r3.Vec) r3.Vec {
	return r3.Vec{
		X: voxel.X*g.Spacing.X + g.Offset.X,
		Y: voxel.Y*g.Spacing.Y + g.Offset.Y,
		Z: voxel.Z*g.Spacing.Z + g.Offset.Z,
	}
}

// ApplyAll converts a flattened X,Y,Z coordinate slice in place from voxel
// indices to physical positions. len(coords) must be a multiple of 3.
func (g Grid) ApplyAll(coords []float64) {
	for i := 0; i+2 < len(coords); i += 3 {
		p := g.ToPhysical(r3.Vec{X: coords[i], Y: coords[i+1], Z: coords[i+2]})
		coords[i], coords[i+1], coords[i+2] = p.X, p.Y, p.Z
	}
}
