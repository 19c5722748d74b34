// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"fmt"
	"strings"

	"github.com/pdiddy/landmark-converter/pkg/types"
)

// WriteText writes one point set as a plain text file: a literal "point"
// tag, the point count, then one Z Y X line per point with no sign flips.
// This is the layout elastix-style tools take as an input point list. It
// returns the path written.
func WriteText(set *types.LandmarkSet, inputPath, outDir string, fixed bool) (string, error) {
	suffix := SuffixTextFixed
	point := set.Point
	if !fixed {
		if !set.HasMoving() {
			return "", fmt.Errorf("landmark set has no moving points to write")
		}
		suffix = SuffixTextMoving
		point = set.MovingPoint
	}

	var b strings.Builder
	b.WriteString("point\n")
	fmt.Fprintf(&b, "%d\n", set.NumPoints)
	for i := 0; i < set.NumPoints; i++ {
		p := point(i)
		fmt.Fprintf(&b, "%s %s %s\n", num(p[2]), num(p[1]), num(p[0]))
	}

	path := OutputPath(inputPath, outDir, suffix)
	if err := writeFile(path, b.String()); err != nil {
		return "", err
	}
	return path, nil
}
