// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/docpress/pkg/types"
)

// fakeExtractor implements Extractor for testing. It returns canned text or
// an error, depending on configuration.
type fakeExtractor struct {
	output string
	err    error
	calls  int
}

func (f *fakeExtractor) Extract(path string, cfg types.TextConfig) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

func setupPDF(t *testing.T) (pdfPath, tmpDir string) {
	t.Helper()
	tmpDir = t.TempDir()
	pdfPath = filepath.Join(tmpDir, "report.pdf")
	if err := os.WriteFile(pdfPath, []byte("%PDF-1.4 fake"), 0o644); err != nil {
		t.Fatal(err)
	}
	return pdfPath, tmpDir
}

func TestExtractOne(t *testing.T) {
	tests := []struct {
		name       string
		extractor  *fakeExtractor
		preCreate  bool // create output before running
		overwrite  bool
		wantStatus types.RunStatus
		wantLog    string
	}{
		{
			name:       "successful extraction",
			extractor:  &fakeExtractor{output: "page text"},
			wantStatus: types.RunDone,
			wantLog:    "extracted:",
		},
		{
			name:       "skip existing output",
			extractor:  &fakeExtractor{output: "should not be called"},
			preCreate:  true,
			wantStatus: types.RunSkipped,
			wantLog:    "skipped:",
		},
		{
			name:       "overwrite existing output",
			extractor:  &fakeExtractor{output: "fresh text"},
			preCreate:  true,
			overwrite:  true,
			wantStatus: types.RunDone,
			wantLog:    "extracted:",
		},
		{
			name:       "extraction failure",
			extractor:  &fakeExtractor{err: errors.New("bad xref table")},
			wantStatus: types.RunFailed,
			wantLog:    "failed:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdfPath, tmpDir := setupPDF(t)
			outPath := filepath.Join(tmpDir, "report.txt")

			if tt.preCreate {
				if err := os.WriteFile(outPath, []byte("old"), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			var log bytes.Buffer
			cfg := types.TextConfig{Overwrite: tt.overwrite}
			status := ExtractOne(tt.extractor, pdfPath, outPath, cfg, &log)

			if status != tt.wantStatus {
				t.Errorf("status = %q, want %q", status, tt.wantStatus)
			}
			if !strings.Contains(log.String(), tt.wantLog) {
				t.Errorf("log %q does not contain %q", log.String(), tt.wantLog)
			}

			if tt.wantStatus == types.RunDone {
				data, err := os.ReadFile(outPath)
				if err != nil {
					t.Fatal(err)
				}
				if string(data) != tt.extractor.output {
					t.Errorf("output = %q, want %q", data, tt.extractor.output)
				}
			}
			if tt.wantStatus == types.RunSkipped && tt.extractor.calls != 0 {
				t.Errorf("extractor was called %d times for a skipped file", tt.extractor.calls)
			}
		})
	}
}

func TestExtractBatch(t *testing.T) {
	tmpDir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.pdf", "b.pdf", "c.pdf"} {
		p := filepath.Join(tmpDir, name)
		if err := os.WriteFile(p, []byte("%PDF"), 0o644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}
	// b already has output and must be skipped.
	if err := os.WriteFile(filepath.Join(tmpDir, "b.txt"), []byte("done"), 0o644); err != nil {
		t.Fatal(err)
	}

	var log bytes.Buffer
	outFor := func(p string) string { return DeriveOutputPath(p, "") }
	result := ExtractBatch(&fakeExtractor{output: "text"}, paths, outFor, types.TextConfig{}, &log)

	if result.Extracted != 2 || result.Skipped != 1 || result.Failed != 0 {
		t.Errorf("result = %+v, want 2 extracted, 1 skipped, 0 failed", result)
	}
	if result.Total() != 3 {
		t.Errorf("Total() = %d, want 3", result.Total())
	}
	if result.HasFailures() {
		t.Error("HasFailures() = true for a clean batch")
	}
	if !strings.Contains(log.String(), "Batch summary: 2 extracted, 1 skipped, 0 failed (total: 3)") {
		t.Errorf("missing batch summary in log %q", log.String())
	}
}

func TestDeriveOutputPath(t *testing.T) {
	tests := []struct {
		pdfPath, outDir, want string
	}{
		{filepath.Join("docs", "manual.pdf"), "", filepath.Join("docs", "manual.txt")},
		{filepath.Join("docs", "manual.pdf"), "out", filepath.Join("out", "manual.txt")},
		{"noext", "out", filepath.Join("out", "noext.txt")},
	}
	for _, tt := range tests {
		if got := DeriveOutputPath(tt.pdfPath, tt.outDir); got != tt.want {
			t.Errorf("DeriveOutputPath(%q, %q) = %q, want %q", tt.pdfPath, tt.outDir, got, tt.want)
		}
	}
}
