// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"fmt"
	"strings"

	"github.com/pdiddy/landmark-converter/pkg/types"
)

// WriteTransformix writes a SplineKernelTransform parameter file for
// Transformix: the moving points as transform parameters, the fixed points
// as FixedImageLandmarks, both in Z,Y,X axis order, framed by the
// interpolation and resampling defaults the registration pipeline expects.
// It returns the path written.
func WriteTransformix(set *types.LandmarkSet, inputPath, outDir string) (string, error) {
	if !set.HasMoving() {
		return "", fmt.Errorf("transformix output needs a moving point set")
	}

	var b strings.Builder
	b.WriteString("(Transform \"SplineKernelTransform\")\n")
	fmt.Fprintf(&b, "(NumberOfParameters %d)\n", types.NumDims*set.NumPoints)

	b.WriteString("(TransformParameters")
	for i := 0; i < set.NumPoints; i++ {
		appendZYX(&b, set.MovingPoint(i))
	}
	b.WriteString(")\n")
	b.WriteString("(InitialTransformParametersFileName \"NoInitialTransform\")\n")
	b.WriteString("(HowToCombineTransforms \"Compose\")\n\n")

	b.WriteString("// Image specific\n")
	b.WriteString("(FixedImageDimension 3)\n")
	b.WriteString("(MovingImageDimension 3)\n")
	b.WriteString("(FixedInternalImagePixelType \"float\")\n")
	b.WriteString("(MovingInternalImagePixelType \"float\")\n")
	fmt.Fprintf(&b, "(Size %s)\n", set.ImageDims)
	b.WriteString("(Index 0 0 0)\n")
	fmt.Fprintf(&b, "(Spacing %s %s %s)\n", num(set.Spacing[0]), num(set.Spacing[1]), num(set.Spacing[2]))
	fmt.Fprintf(&b, "(Origin %s %s %s)\n", num(set.Offset[0]), num(set.Offset[1]), num(set.Offset[2]))
	b.WriteString("(Direction 1.0000000000 0.0000000000 0.0000000000 ")
	b.WriteString("0.0000000000 1.0000000000 0.0000000000 ")
	b.WriteString("0.0000000000 0.0000000000 1.0000000000)\n")
	b.WriteString("(UseDirectionCosines \"true\")\n\n")

	b.WriteString("// SplineKernelTransform specific\n")
	b.WriteString("(SplineKernelType \"ThinPlateSpline\")\n")
	b.WriteString("(SplinePoissonRatio 0.0)\n")
	b.WriteString("(SplineRelaxationFactor 0.0)\n")
	b.WriteString("(FixedImageLandmarks")
	for i := 0; i < set.NumPoints; i++ {
		appendZYX(&b, set.Point(i))
	}
	b.WriteString(")\n\n")

	b.WriteString("// ResampleInterpolator specific\n")
	b.WriteString("(ResampleInterpolator \"FinalBSplineInterpolator\")\n")
	b.WriteString("(FinalBSplineInterpolationOrder 3)\n\n")

	b.WriteString("// Resampler specific\n")
	b.WriteString("(Resampler \"DefaultResampler\")\n")
	b.WriteString("(DefaultPixelValue 0.000000)\n")
	b.WriteString("(ResultImageFormat \"mhd\")\n")
	b.WriteString("(ResultImagePixelType \"short\")\n")
	b.WriteString("(CompressResultImage \"false\")\n")

	path := OutputPath(inputPath, outDir, SuffixTransformix)
	if err := writeFile(path, b.String()); err != nil {
		return "", err
	}
	return path, nil
}
