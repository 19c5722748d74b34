// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"fmt"
	"strings"

	"github.com/pdiddy/landmark-converter/pkg/types"
)

// slicerHeader is the fiducial-set metadata block 3D Slicer expects. The
// values match the annotation team's viewing defaults.
const slicerHeader = `# symbolScale = 5.5
# symbolType = 11
# visibility = 1
# textScale = 12.5
# color = 0.4,1,1
# selectedColor = 0.807843,0.560784,1
# opacity = 1
# ambient = 0
# diffuse = 1
# specular = 0
# power = 1
# locked = 1
# columns = label,x,y,z,sel,vis
`

// WriteSlicer writes one point set (the fixed set when fixed is true,
// otherwise the moving set) as a 3D Slicer fiducial file. Each point line
// carries a 1-based label, the first two axes sign-flipped per the
// format's anatomical convention, and an unselected/visible marker pair.
// It returns the path written.
func WriteSlicer(set *types.LandmarkSet, inputPath, outDir string, fixed bool) (string, error) {
	suffix := SuffixSlicerFixed
	point := set.Point
	if !fixed {
		if !set.HasMoving() {
			return "", fmt.Errorf("landmark set has no moving points to write")
		}
		suffix = SuffixSlicerMoving
		point = set.MovingPoint
	}

	var b strings.Builder
	b.WriteString("# name = lmk\n")
	fmt.Fprintf(&b, "# numPoints = %d\n", set.NumPoints)
	b.WriteString(slicerHeader)

	for i := 0; i < set.NumPoints; i++ {
		if i != 0 {
			b.WriteString("\n")
		}
		p := point(i)
		fmt.Fprintf(&b, "%d, %s, %s, %s, 0, 1", i+1, num(-p[2]), num(-p[1]), num(p[0]))
	}

	path := OutputPath(inputPath, outDir, suffix)
	if err := writeFile(path, b.String()); err != nil {
		return "", err
	}
	return path, nil
}
