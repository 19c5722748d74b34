// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/landmark-converter/internal/convert"
	"github.com/pdiddy/landmark-converter/internal/history"
	"github.com/pdiddy/landmark-converter/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert one landmark file to a destination format",
	Long: `Convert reads a landmark file in the declared input format, maps voxel
coordinates to physical space where the source is voxel-indexed, and writes
the landmarks in the declared output format into the output directory.

Input formats:
  ix_pp    iX Matching Points Annotator point pairs (voxel-indexed)
  ireg     Caliper registration landmark list (physical space)

Output formats:
  tfx_lmk  Transformix spline-transform parameter file
  slr_fid  3D Slicer fiducial file (.fcsv)
  std_txt  plain text coordinate file

For ix_pp input, the fiducial and plain text formats produce one file per
point set (fixed and moving). The ireg to tfx_lmk pairing is rejected: a
transform needs both point sets and the registration list carries one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inFile, _ := cmd.Flags().GetString("in-file")
		inType, _ := cmd.Flags().GetString("in-type")
		outDir, _ := cmd.Flags().GetString("out-dir")
		outType, _ := cmd.Flags().GetString("out-type")
		reportPath, _ := cmd.Flags().GetString("report")

		keepAll := viper.GetBool("convert.keep_all")
		if cmd.Flags().Changed("keep-all") {
			keepAll, _ = cmd.Flags().GetBool("keep-all")
		}

		inFormat, err := types.ParseInputFormat(inType)
		if err != nil {
			return err
		}
		outFormat, err := types.ParseOutputFormat(outType)
		if err != nil {
			return err
		}

		var remaps []types.PathRemap
		if err := viper.UnmarshalKey("convert.paths.remaps", &remaps); err != nil {
			return fmt.Errorf("reading path remaps from config: %w", err)
		}

		req := convert.Request{
			InputPath:    inFile,
			InputFormat:  inFormat,
			OutDir:       outDir,
			OutputFormat: outFormat,
			KeepAll:      keepAll,
			Remaps:       remaps,
		}

		res, err := convert.Run(req, os.Stderr)
		if err != nil {
			return err
		}

		if err := recordRun(req, res); err != nil {
			// History is an audit convenience; a failed insert should not
			// fail a conversion that already produced its files.
			fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
		}

		if reportPath != "" {
			if err := convert.WriteReport(reportPath, req, res); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "wrote report: %s\n", reportPath)
		}

		fmt.Fprintf(os.Stderr, "conversion complete: %d points, %d file(s)\n",
			res.NumPoints, len(res.Outputs))
		return nil
	},
}

// recordRun appends the conversion to the history database.
func recordRun(req convert.Request, res convert.Result) error {
	store, err := history.Open(types.HistoryConfig{
		Dir:        viper.GetString("history.dir"),
		MaxResults: viper.GetInt("history.max_results"),
	})
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Record(history.Run{
		InputPath:    req.InputPath,
		InputFormat:  string(req.InputFormat),
		OutputFormat: string(req.OutputFormat),
		KeepAll:      req.KeepAll,
		NumPoints:    res.NumPoints,
		Outputs:      res.Outputs,
	})
	return err
}

func init() {
	convertCmd.Flags().String("in-file", "", "path to the input landmark file")
	convertCmd.Flags().String("in-type", "", "input format: ix_pp or ireg")
	convertCmd.Flags().String("out-dir", "", "directory for the output file(s)")
	convertCmd.Flags().String("out-type", "", "output format: tfx_lmk, slr_fid, or std_txt")
	convertCmd.Flags().Bool("keep-all", false, "keep manually chosen points flagged very unsure")
	convertCmd.Flags().String("report", "", "write a YAML run report to this path")

	for _, f := range []string{"in-file", "in-type", "out-dir", "out-type"} {
		cobra.CheckErr(convertCmd.MarkFlagRequired(f))
	}

	rootCmd.AddCommand(convertCmd)
}
