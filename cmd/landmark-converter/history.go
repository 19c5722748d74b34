// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/landmark-converter/internal/history"
	"github.com/pdiddy/landmark-converter/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded conversion runs",
	Long: `History lists past conversions from the local SQLite run log, newest
first: when the run happened, what was read and written, and how many
points were converted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		store, err := history.Open(types.HistoryConfig{
			Dir:        viper.GetString("history.dir"),
			MaxResults: viper.GetInt("history.max_results"),
		})
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.List(limit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintln(os.Stderr, "no conversions recorded")
			return nil
		}

		for _, r := range runs {
			keep := ""
			if r.KeepAll {
				keep = " keep-all"
			}
			fmt.Printf("%d  %s  %s -> %s%s  %d points\n",
				r.ID, r.CreatedAt.Local().Format(time.DateTime),
				r.InputFormat, r.OutputFormat, keep, r.NumPoints)
			fmt.Printf("    in:  %s\n", r.InputPath)
			fmt.Printf("    out: %s\n", strings.Join(r.Outputs, ", "))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum runs to list (default from config)")

	rootCmd.AddCommand(historyCmd)
}
