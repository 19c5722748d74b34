// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pointpair

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pdiddy/landmark-converter/internal/geometry"
)

// MetaImage header labels. Lines are "<label><values>"; anything else is
// ignored. If a label repeats, the last occurrence wins.
const (
	tagOrientation = "Orientation = "
	tagDimSize     = "DimSize = "
	tagOffset      = "Offset = "
	tagSpacing     = "ElementSpacing = "
)

// MetaHeader holds the fields scanned from a MetaImage (.mhd) header that
// the conversion needs.
type MetaHeader struct {
	// Orientation is the raw orientation matrix string. Parsed for
	// completeness; nothing downstream consumes it.
	Orientation string

	// DimSize is the raw image-dimensions string, passed through to the
	// Transformix writer unparsed.
	DimSize string

	// Offset and Spacing define the image's affine grid.
	Offset  r3.Vec
	Spacing r3.Vec
}

// Grid returns the affine voxel-to-physical mapping the header describes.
func (h MetaHeader) Grid() geometry.Grid {
	return geometry.Grid{Offset: h.Offset, Spacing: h.Spacing}
}

// ReadMetaHeader scans a MetaImage header file for the orientation, image
// dimensions, offset, and element spacing lines. Offset and ElementSpacing
// are required: without them every landmark would silently collapse onto
// the origin.
func ReadMetaHeader(path string) (MetaHeader, error) {
	f, err := os.Open(path)
	if err != nil {
		return MetaHeader{}, fmt.Errorf("opening image header %s: %w", path, err)
	}
	defer f.Close()

	var h MetaHeader
	var haveOffset, haveSpacing bool

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, tagOrientation):
			h.Orientation = strings.TrimPrefix(line, tagOrientation)
		case strings.HasPrefix(line, tagDimSize):
			h.DimSize = strings.TrimPrefix(line, tagDimSize)
		case strings.HasPrefix(line, tagOffset):
			v, err := parseTriplet(strings.TrimPrefix(line, tagOffset))
			if err != nil {
				return MetaHeader{}, fmt.Errorf("%s: bad Offset line: %w", path, err)
			}
			h.Offset = v
			haveOffset = true
		case strings.HasPrefix(line, tagSpacing):
			v, err := parseTriplet(strings.TrimPrefix(line, tagSpacing))
			if err != nil {
				return MetaHeader{}, fmt.Errorf("%s: bad ElementSpacing line: %w", path, err)
			}
			h.Spacing = v
			haveSpacing = true
		}
	}
	if err := sc.Err(); err != nil {
		return MetaHeader{}, fmt.Errorf("reading image header %s: %w", path, err)
	}

	if !haveOffset {
		return MetaHeader{}, fmt.Errorf("image header %s has no Offset line", path)
	}
	if !haveSpacing {
		return MetaHeader{}, fmt.Errorf("image header %s has no ElementSpacing line", path)
	}
	return h, nil
}

// parseTriplet parses the first three whitespace-separated floats of s.
func parseTriplet(s string) (r3.Vec, error) {
	fields := strings.Fields(s)
	if len(fields) < 3 {
		return r3.Vec{}, fmt.Errorf("want 3 values, got %d in %q", len(fields), s)
	}
	var vals [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("value %q: %w", fields[i], err)
		}
		vals[i] = v
	}
	return r3.Vec{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}
