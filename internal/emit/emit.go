// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package emit serializes a landmark set into the three destination
// formats: Transformix spline-transform parameters, 3D Slicer fiducials,
// and plain text.
//
// The field order, the Z,Y,X axis reversal, and the fiducial sign flips are
// compatibility requirements of the downstream tools and are reproduced
// byte for byte.
package emit

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Output file suffixes, appended to the input file's base name.
const (
	SuffixTransformix  = "_transformix.txt"
	SuffixSlicerFixed  = "_fixed_slicer.fcsv"
	SuffixSlicerMoving = "_moving_slicer.fcsv"
	SuffixTextFixed    = "_fixed_landmarks.txt"
	SuffixTextMoving   = "_moving_landmarks.txt"
)

// OutputPath derives the destination path for a writer: the input file's
// base name, extension stripped, plus the writer suffix, inside outDir.
func OutputPath(inputPath, outDir, suffix string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(outDir, base+suffix)
}

// writeFile creates the destination file with the given content.
func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("creating output file %s: %w", path, err)
	}
	return nil
}

// num formats a coordinate the way the legacy files carry them: shortest
// decimal form, no exponent padding.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// appendZYX appends one point in reversed axis order, space separated,
// with a leading space.
func appendZYX(b *strings.Builder, p [3]float64) {
	b.WriteString(" ")
	b.WriteString(num(p[2]))
	b.WriteString(" ")
	b.WriteString(num(p[1]))
	b.WriteString(" ")
	b.WriteString(num(p[0]))
}
