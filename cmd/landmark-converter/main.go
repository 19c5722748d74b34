// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the landmark-converter CLI, which
// reformats anatomical landmark files between the annotation, registration,
// and visualization tools of the image-registration workflow.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the landmark-converter CLI.
var rootCmd = &cobra.Command{
	Use:   "landmark-converter",
	Short: "Convert anatomical landmark files between registration formats",
	Long: `landmark-converter reformats paired anatomical landmarks between the file
formats of an image-registration workflow: iX Matching Points Annotator
point pairs and Caliper registration lists on the input side; Transformix
spline-transform parameters, 3D Slicer fiducials, and plain text on the
output side. Voxel-indexed input is mapped to physical space using the
fixed image's MetaImage header.

Each conversion is logged to a local SQLite history that the history
subcommand can list.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./landmark-converter.yaml or ~/.config/landmark-converter/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("landmark-converter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "landmark-converter"))
		}
	}

	viper.SetEnvPrefix("LANDMARK_CONVERTER")
	viper.AutomaticEnv()

	viper.SetDefault("convert.keep_all", false)
	viper.SetDefault("history.dir", ".")
	viper.SetDefault("history.max_results", 20)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
