// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/landmark-converter/pkg/types"
)

// writePointPairFixture writes a one-point annotator file (automatic point,
// fixed voxel (10,20,30), moving voxel (11,21,31)) with a companion header
// using zero offset and spacing (2,2,2). Returns the pair path.
func writePointPairFixture(t *testing.T, dir string) string {
	t.Helper()
	header := "DimSize = 512 512 129\nOffset = 0 0 0\nElementSpacing = 2 2 2\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fixed.mhd"), []byte(header), 0o644))

	content := "Scan_0=" + filepath.Join(dir, "fixed.mhd") + "\n" +
		"Scan_1=" + filepath.Join(dir, "moving.mhd") + "\n" +
		`Point_0->Distinctiveness=0.9
Point_0->ManuallyChosen=0
Point_0->SqDiffRegion=0.1
Point_0->VeryUnsure=0
Point_0->0=10
Point_0->0_Corresp=11
Point_0->1=20
Point_0->1_Corresp=21
Point_0->2=30
Point_0->2_Corresp=31
`
	path := filepath.Join(dir, "case01_pairs.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeRegListFixture(t *testing.T, dir string) string {
	t.Helper()
	// One point stored tail-first plus the trailing sentinel.
	path := filepath.Join(dir, "ireg_result.txt")
	require.NoError(t, os.WriteFile(path, []byte("60 40 20 20"), 0o644))
	return path
}

func TestRunPointPairToText(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(outDir, 0o755))
	inPath := writePointPairFixture(t, dir)

	var status bytes.Buffer
	res, err := Run(Request{
		InputPath:    inPath,
		InputFormat:  types.InputPointPair,
		OutDir:       outDir,
		OutputFormat: types.OutputText,
	}, &status)
	require.NoError(t, err)

	assert.Equal(t, 1, res.NumPoints)
	assert.True(t, res.HasMoving)
	require.Len(t, res.Outputs, 2)
	assert.Contains(t, status.String(), "wrote:")

	fixed, err := os.ReadFile(filepath.Join(outDir, "case01_pairs_fixed_landmarks.txt"))
	require.NoError(t, err)
	assert.Equal(t, "point\n1\n60 40 20\n", string(fixed))

	moving, err := os.ReadFile(filepath.Join(outDir, "case01_pairs_moving_landmarks.txt"))
	require.NoError(t, err)
	assert.Equal(t, "point\n1\n62 42 22\n", string(moving))
}

func TestRunPointPairToSlicerWritesBothSets(t *testing.T) {
	dir := t.TempDir()
	inPath := writePointPairFixture(t, dir)

	var status bytes.Buffer
	res, err := Run(Request{
		InputPath:    inPath,
		InputFormat:  types.InputPointPair,
		OutDir:       dir,
		OutputFormat: types.OutputSlicer,
	}, &status)
	require.NoError(t, err)
	require.Len(t, res.Outputs, 2)
	assert.True(t, strings.HasSuffix(res.Outputs[0], "_fixed_slicer.fcsv"))
	assert.True(t, strings.HasSuffix(res.Outputs[1], "_moving_slicer.fcsv"))

	data, err := os.ReadFile(res.Outputs[0])
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "1, -60, -40, 20, 0, 1"))
}

func TestRunRegListToSlicerWritesOneFile(t *testing.T) {
	dir := t.TempDir()
	inPath := writeRegListFixture(t, dir)

	var status bytes.Buffer
	res, err := Run(Request{
		InputPath:    inPath,
		InputFormat:  types.InputRegList,
		OutDir:       dir,
		OutputFormat: types.OutputSlicer,
	}, &status)
	require.NoError(t, err)

	assert.Equal(t, 1, res.NumPoints)
	assert.False(t, res.HasMoving)
	require.Len(t, res.Outputs, 1)
	assert.True(t, strings.HasSuffix(res.Outputs[0], "_fixed_slicer.fcsv"))
}

func TestRunRejectsRegListToTransformix(t *testing.T) {
	dir := t.TempDir()
	inPath := writeRegListFixture(t, dir)

	var status bytes.Buffer
	_, err := Run(Request{
		InputPath:    inPath,
		InputFormat:  types.InputRegList,
		OutDir:       dir,
		OutputFormat: types.OutputTransformix,
	}, &status)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")

	// Rejection happens before any file is produced.
	matches, err := filepath.Glob(filepath.Join(dir, "*_transformix.txt"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestRunRejectsUnknownFormats(t *testing.T) {
	var status bytes.Buffer

	_, err := Run(Request{InputFormat: "dicom", OutputFormat: types.OutputText}, &status)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown input format")

	_, err = Run(Request{InputFormat: types.InputRegList, OutputFormat: "csv"}, &status)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestRunMissingInput(t *testing.T) {
	var status bytes.Buffer
	_, err := Run(Request{
		InputPath:    filepath.Join(t.TempDir(), "absent.txt"),
		InputFormat:  types.InputRegList,
		OutDir:       t.TempDir(),
		OutputFormat: types.OutputText,
	}, &status)
	require.Error(t, err)
}

func TestReportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.yaml")

	req := Request{
		InputPath:    "/data/case01_pairs.txt",
		InputFormat:  types.InputPointPair,
		OutDir:       "/out",
		OutputFormat: types.OutputText,
		KeepAll:      true,
	}
	res := Result{
		NumPoints: 7,
		HasMoving: true,
		Outputs:   []string{"/out/a.txt", "/out/b.txt"},
	}
	require.NoError(t, WriteReport(path, req, res))

	got, err := ReadReport(path)
	require.NoError(t, err)
	assert.Equal(t, "ix_pp", got.Input.Format)
	assert.True(t, got.Input.KeepAll)
	assert.Equal(t, "std_txt", got.Output.Format)
	assert.Equal(t, res.Outputs, got.Output.Files)
	assert.Equal(t, 7, got.Summary.NumPoints)
	assert.True(t, got.Summary.HasMoving)
	assert.False(t, got.Summary.Timestamp.IsZero())
}
