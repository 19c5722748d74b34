// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reglist reads Caliper registration output: a flat whitespace
// separated list of physical-space coordinates, fixed points only.
package reglist

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/pdiddy/landmark-converter/pkg/types"
)

// Read parses the coordinate list at path. The final token is a duplicate
// sentinel the registration code always appends and is dropped; if the
// remaining count is not divisible by 3 the leading token is a point count
// rather than a coordinate and is dropped too. The remainder is stored
// tail-first, so it is reversed into point-major X,Y,Z order.
func Read(path string) (*types.LandmarkSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening landmark list %s: %w", path, err)
	}
	defer f.Close()

	var vals []float64
	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: bad coordinate %q: %w", path, sc.Text(), err)
		}
		vals = append(vals, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading landmark list %s: %w", path, err)
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("landmark list %s is empty", path)
	}

	// Trailing sentinel.
	vals = vals[:len(vals)-1]

	// Leading point-count field.
	if len(vals)%types.NumDims != 0 {
		vals = vals[1:]
	}
	if len(vals)%types.NumDims != 0 {
		return nil, fmt.Errorf("landmark list %s has %d coordinates, not a multiple of 3", path, len(vals))
	}

	for i, j := 0, len(vals)-1; i < j; i, j = i+1, j-1 {
		vals[i], vals[j] = vals[j], vals[i]
	}

	return &types.LandmarkSet{
		NumPoints: len(vals) / types.NumDims,
		Fixed:     vals,
	}, nil
}
