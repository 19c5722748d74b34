// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// InputFormat identifies the format landmarks are read from.
type InputFormat string

const (
	// InputPointPair is the iX Matching Points Annotator point-pair file:
	// voxel-indexed pairs with per-point selection metadata.
	InputPointPair InputFormat = "ix_pp"

	// InputRegList is the Caliper registration output: a flat list of
	// physical-space coordinates, fixed points only.
	InputRegList InputFormat = "ireg"
)

// OutputFormat identifies the format landmarks are written to.
type OutputFormat string

const (
	// OutputTransformix is a Transformix SplineKernelTransform parameter file.
	OutputTransformix OutputFormat = "tfx_lmk"

	// OutputSlicer is a 3D Slicer fiducial (.fcsv) file.
	OutputSlicer OutputFormat = "slr_fid"

	// OutputText is a plain text coordinate file.
	OutputText OutputFormat = "std_txt"
)

// ParseInputFormat validates a CLI input-format tag.
func ParseInputFormat(tag string) (InputFormat, error) {
	switch f := InputFormat(tag); f {
	case InputPointPair, InputRegList:
		return f, nil
	}
	return "", fmt.Errorf("unknown input format %q (options: %s, %s)",
		tag, InputPointPair, InputRegList)
}

// ParseOutputFormat validates a CLI output-format tag.
func ParseOutputFormat(tag string) (OutputFormat, error) {
	switch f := OutputFormat(tag); f {
	case OutputTransformix, OutputSlicer, OutputText:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (options: %s, %s, %s)",
		tag, OutputTransformix, OutputSlicer, OutputText)
}

// Compatible reports whether landmarks read as in can be written as out.
// The Transformix parameter file needs both a fixed and a moving point set,
// which the registration list does not carry.
func Compatible(in InputFormat, out OutputFormat) error {
	if in == InputRegList && out == OutputTransformix {
		return fmt.Errorf("conversion %s -> %s is not supported: the registration list has no moving point set", in, out)
	}
	return nil
}
