// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Report is the on-disk summary of one conversion run, for pipeline
// scripts that want the outcome without re-parsing the landmark files.
type Report struct {
	Input   ReportInput   `yaml:"input"`
	Output  ReportOutput  `yaml:"output"`
	Summary ReportSummary `yaml:"summary"`
}

// ReportInput records what was read.
type ReportInput struct {
	Path    string `yaml:"path"`
	Format  string `yaml:"format"`
	KeepAll bool   `yaml:"keep_all"`
}

// ReportOutput records what was written.
type ReportOutput struct {
	Dir    string   `yaml:"dir"`
	Format string   `yaml:"format"`
	Files  []string `yaml:"files"`
}

// ReportSummary records result statistics and a timestamp.
type ReportSummary struct {
	NumPoints int       `yaml:"num_points"`
	HasMoving bool      `yaml:"has_moving"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteReport saves a run summary as YAML.
func WriteReport(path string, req Request, res Result) error {
	r := Report{
		Input: ReportInput{
			Path:    req.InputPath,
			Format:  string(req.InputFormat),
			KeepAll: req.KeepAll,
		},
		Output: ReportOutput{
			Dir:    req.OutDir,
			Format: string(req.OutputFormat),
			Files:  res.Outputs,
		},
		Summary: ReportSummary{
			NumPoints: res.NumPoints,
			HasMoving: res.HasMoving,
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadReport loads a previously written run report.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report %s: %w", path, err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report %s: %w", path, err)
	}
	return &r, nil
}
