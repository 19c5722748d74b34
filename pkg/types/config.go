// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PathRemap rewrites a leading prefix of a companion header path. Annotation
// files written on Windows workstations carry drive-letter paths that do not
// resolve on the analysis hosts; remaps translate them.
type PathRemap struct {
	// Prefix is the leading path fragment to match (e.g. "Z:").
	Prefix string `json:"prefix" yaml:"prefix"`

	// Replace is the fragment substituted for Prefix (e.g. "/data/scans").
	Replace string `json:"replace" yaml:"replace"`
}

// PathsConfig holds settings for resolving companion header paths named
// inside point-pair files.
type PathsConfig struct {
	// Remaps are applied in order; the first matching prefix wins.
	Remaps []PathRemap `json:"remaps" yaml:"remaps"`
}

// ConvertConfig holds settings for the conversion stage.
type ConvertConfig struct {
	// KeepAll keeps manually chosen points flagged "very unsure" instead of
	// discarding them.
	KeepAll bool `json:"keep_all" yaml:"keep_all"`

	Paths PathsConfig `json:"paths" yaml:"paths"`
}

// HistoryConfig holds settings for the conversion-run log.
type HistoryConfig struct {
	// Dir is the directory holding the history database (default ".").
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default maximum number of runs listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
