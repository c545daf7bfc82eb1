// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docpress/pkg/types"
)

// Report is the on-disk YAML summary of one slides conversion run. It lets
// the caller audit what the converter saw without unzipping the package.
type Report struct {
	Input   string        `yaml:"input"`
	Output  string        `yaml:"output"`
	Summary ReportSummary `yaml:"summary"`
	Slides  []SlideStat   `yaml:"slides"`
}

// ReportSummary aggregates deck-level counts and a timestamp.
type ReportSummary struct {
	SlideCount int       `yaml:"slide_count"`
	Subtitles  int       `yaml:"subtitles"`
	Bullets    int       `yaml:"bullets"`
	Bold       int       `yaml:"bold"`
	Text       int       `yaml:"text"`
	Timestamp  time.Time `yaml:"timestamp"`
}

// SlideStat summarizes one slide.
type SlideStat struct {
	Title  string `yaml:"title"`
	Blocks int    `yaml:"blocks"`
}

// BuildReport tallies a parsed deck into a Report.
func BuildReport(input, output string, deck []types.Slide) Report {
	r := Report{
		Input:  input,
		Output: output,
		Summary: ReportSummary{
			SlideCount: len(deck),
			Timestamp:  time.Now().UTC(),
		},
	}
	for _, s := range deck {
		r.Slides = append(r.Slides, SlideStat{Title: s.Title, Blocks: len(s.Blocks)})
		for _, b := range s.Blocks {
			switch b.Kind {
			case types.BlockSubtitle:
				r.Summary.Subtitles++
			case types.BlockBullet:
				r.Summary.Bullets++
			case types.BlockBold:
				r.Summary.Bold++
			case types.BlockText:
				r.Summary.Text++
			}
		}
	}
	return r
}

// WriteReport saves a report as YAML at path.
func WriteReport(path string, r Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
