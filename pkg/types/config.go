// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SlidesConfig holds settings for the markdown-to-presentation stage.
type SlidesConfig struct {
	// Meta is the document metadata written into meta.xml.
	Meta DeckMeta `json:"meta" yaml:"meta"`

	// ReportPath, when non-empty, is where the YAML run report is written.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`
}

// TextConfig holds settings for the PDF-to-text stage.
type TextConfig struct {
	// OutDir is the output directory for extracted text files. Empty means
	// each text file is written next to its source PDF.
	OutDir string `json:"out_dir,omitempty" yaml:"out_dir,omitempty"`

	// Password unlocks encrypted PDFs. Empty for unencrypted input.
	Password string `json:"password,omitempty" yaml:"password,omitempty"`

	// Pages restricts extraction to the given 1-based page numbers.
	// Empty means all pages.
	Pages []int `json:"pages,omitempty" yaml:"pages,omitempty"`

	// Overwrite replaces existing output files instead of skipping them.
	Overwrite bool `json:"overwrite" yaml:"overwrite"`

	// Layout enables row-oriented extraction that keeps simple tabular
	// alignment at the cost of reading-order heuristics.
	Layout bool `json:"layout" yaml:"layout"`
}

// HistoryConfig holds settings for the conversion run log.
type HistoryConfig struct {
	// StateDir is the directory holding the run log database (default ".docpress").
	StateDir string `json:"state_dir" yaml:"state_dir"`

	// MaxResults is the default maximum number of listed runs (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
