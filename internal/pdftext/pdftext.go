// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext extracts plain text from PDF documents. The actual
// extraction is delegated to a backend implementing Extractor; the package
// adds page selection, output-path derivation, and batch processing.
package pdftext

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/docpress/pkg/types"
)

// Extractor turns a PDF file into plain text. Backends decide how to honor
// the options; TextLayer is the production implementation.
type Extractor interface {
	// Extract reads the PDF at path and returns its text content.
	Extract(path string, cfg types.TextConfig) (string, error)
}

// BatchResult holds the outcome of a batch extraction run.
type BatchResult struct {
	Extracted int
	Skipped   int
	Failed    int
}

// Total returns the total number of PDFs processed.
func (r BatchResult) Total() int {
	return r.Extracted + r.Skipped + r.Failed
}

// HasFailures reports whether any PDFs failed extraction.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// DeriveOutputPath returns the text output path for a PDF: the PDF's base
// name with a .txt extension, placed in outDir or, when outDir is empty,
// next to the source file.
func DeriveOutputPath(pdfPath, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	if outDir == "" {
		outDir = filepath.Dir(pdfPath)
	}
	return filepath.Join(outDir, base+".txt")
}

// ExtractOne extracts a single PDF to outPath, creating the output directory
// if needed. An existing output is skipped unless cfg.Overwrite is set.
func ExtractOne(ex Extractor, pdfPath, outPath string, cfg types.TextConfig, w io.Writer) types.RunStatus {
	base := filepath.Base(pdfPath)

	if _, err := os.Stat(outPath); err == nil && !cfg.Overwrite {
		fmt.Fprintf(w, "skipped: %s (output exists, use --overwrite)\n", base)
		return types.RunSkipped
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.RunFailed
	}

	text, err := ex.Extract(pdfPath, cfg)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.RunFailed
	}

	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.RunFailed
	}

	fmt.Fprintf(w, "extracted: %s -> %s\n", base, outPath)
	return types.RunDone
}

// ExtractBatch processes PDFs through the extractor, printing per-file
// status to w and returning a summary. outFor maps each PDF to its output
// path.
func ExtractBatch(ex Extractor, pdfPaths []string, outFor func(string) string, cfg types.TextConfig, w io.Writer) BatchResult {
	var result BatchResult
	for _, p := range pdfPaths {
		switch ExtractOne(ex, p, outFor(p), cfg, w) {
		case types.RunDone:
			result.Extracted++
		case types.RunSkipped:
			result.Skipped++
		case types.RunFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d extracted, %d skipped, %d failed (total: %d)\n",
		result.Extracted, result.Skipped, result.Failed, result.Total())
	return result
}
