// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data structures shared between the readers,
// writers, and the conversion driver.
package types

// NumDims is the dimensionality of every landmark set this tool handles.
// The formats involved are all 3D medical-image formats.
const NumDims = 3

// LandmarkSet is the central entity of a conversion: one reader produces it,
// one or more writers consume it. Coordinates are physical-space values,
// flattened X,Y,Z per point, points in the order they appeared in the
// source file.
type LandmarkSet struct {
	// NumPoints is the number of landmark pairs (or singletons for the
	// registration-list format).
	NumPoints int

	// ImageDims is the raw DimSize descriptor lifted from the fixed image's
	// MetaImage header. It is passed through to the Transformix writer
	// unparsed.
	ImageDims string

	// Offset and Spacing are the fixed image's per-axis affine parameters.
	Offset  [3]float64
	Spacing [3]float64

	// Fixed holds the fixed-image coordinates, len == 3*NumPoints.
	Fixed []float64

	// Moving holds the moving-image coordinates, index-aligned with Fixed.
	// Empty when the source format supplies only one point set.
	Moving []float64
}

// HasMoving reports whether the set carries a moving point set. Sources
// like the registration list produce fixed points only.
func (s *LandmarkSet) HasMoving() bool {
	return len(s.Moving) > 0
}

// Point returns the i-th fixed point as an X,Y,Z triplet.
func (s *LandmarkSet) Point(i int) [3]float64 {
	return [3]float64{s.Fixed[3*i], s.Fixed[3*i+1], s.Fixed[3*i+2]}
}

// MovingPoint returns the i-th moving point as an X,Y,Z triplet.
func (s *LandmarkSet) MovingPoint(i int) [3]float64 {
	return [3]float64{s.Moving[3*i], s.Moving[3*i+1], s.Moving[3*i+2]}
}
