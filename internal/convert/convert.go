// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives one landmark conversion: it selects the reader
// and writer set by format tag, enforces the format compatibility matrix,
// and runs the read-transform-write pipeline.
package convert

import (
	"fmt"
	"io"

	"github.com/pdiddy/landmark-converter/internal/emit"
	"github.com/pdiddy/landmark-converter/internal/pointpair"
	"github.com/pdiddy/landmark-converter/internal/reglist"
	"github.com/pdiddy/landmark-converter/pkg/types"
)

// Request describes one conversion.
type Request struct {
	InputPath    string
	InputFormat  types.InputFormat
	OutDir       string
	OutputFormat types.OutputFormat

	// KeepAll keeps manually chosen points flagged "very unsure".
	KeepAll bool

	// Remaps translate companion header path prefixes for point-pair input.
	Remaps []types.PathRemap
}

// Result is the outcome of a successful conversion.
type Result struct {
	// NumPoints is the number of landmarks (pairs or singletons) converted.
	NumPoints int

	// HasMoving reports whether the source carried a moving point set.
	HasMoving bool

	// Outputs lists the files written, in write order.
	Outputs []string
}

// readerFunc produces a landmark set from an input file.
type readerFunc func(req Request) (*types.LandmarkSet, error)

// writerFunc serializes a landmark set into one or more files and returns
// their paths.
type writerFunc func(set *types.LandmarkSet, req Request) ([]string, error)

// readers maps each input tag to its reader. Selection by table keeps the
// supported formats in one visible place.
var readers = map[types.InputFormat]readerFunc{
	types.InputPointPair: func(req Request) (*types.LandmarkSet, error) {
		return pointpair.Read(req.InputPath, pointpair.Options{
			KeepAll: req.KeepAll,
			Remaps:  req.Remaps,
		})
	},
	types.InputRegList: func(req Request) (*types.LandmarkSet, error) {
		return reglist.Read(req.InputPath)
	},
}

// writers maps each output tag to its writer set. The fiducial and plain
// text writers produce a moving-set file as well when the source supplied
// one.
var writers = map[types.OutputFormat]writerFunc{
	types.OutputTransformix: func(set *types.LandmarkSet, req Request) ([]string, error) {
		path, err := emit.WriteTransformix(set, req.InputPath, req.OutDir)
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	},
	types.OutputSlicer: func(set *types.LandmarkSet, req Request) ([]string, error) {
		return writeBoth(set, req, emit.WriteSlicer)
	},
	types.OutputText: func(set *types.LandmarkSet, req Request) ([]string, error) {
		return writeBoth(set, req, emit.WriteText)
	},
}

// writeBoth runs a fixed/moving-capable writer once or twice, depending on
// whether the set carries moving points.
func writeBoth(set *types.LandmarkSet, req Request,
	write func(*types.LandmarkSet, string, string, bool) (string, error)) ([]string, error) {

	fixedPath, err := write(set, req.InputPath, req.OutDir, true)
	if err != nil {
		return nil, err
	}
	paths := []string{fixedPath}

	if set.HasMoving() {
		movingPath, err := write(set, req.InputPath, req.OutDir, false)
		if err != nil {
			return nil, err
		}
		paths = append(paths, movingPath)
	}
	return paths, nil
}

// Run executes the conversion, printing per-file status lines to w.
func Run(req Request, w io.Writer) (Result, error) {
	read, ok := readers[req.InputFormat]
	if !ok {
		return Result{}, fmt.Errorf("unknown input format %q", req.InputFormat)
	}
	write, ok := writers[req.OutputFormat]
	if !ok {
		return Result{}, fmt.Errorf("unknown output format %q", req.OutputFormat)
	}
	if err := types.Compatible(req.InputFormat, req.OutputFormat); err != nil {
		return Result{}, err
	}

	fmt.Fprintf(w, "reading %s landmarks: %s\n", req.InputFormat, req.InputPath)
	set, err := read(req)
	if err != nil {
		return Result{}, err
	}
	fmt.Fprintf(w, "read %d points\n", set.NumPoints)

	outputs, err := write(set, req)
	if err != nil {
		return Result{}, err
	}
	for _, path := range outputs {
		fmt.Fprintf(w, "wrote: %s\n", path)
	}

	return Result{
		NumPoints: set.NumPoints,
		HasMoving: set.HasMoving(),
		Outputs:   outputs,
	}, nil
}
