// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/docpress/pkg/types"
)

// TextLayer extracts the embedded text layer using ledongthuc/pdf (pure Go,
// no CGO). Scanned, image-only PDFs have no text layer and come back empty.
type TextLayer struct{}

// NewTextLayer creates the default extractor.
func NewTextLayer() *TextLayer {
	return &TextLayer{}
}

// Extract reads the PDF at path and returns its text. cfg.Pages restricts
// extraction to those 1-based pages; cfg.Layout switches to row-oriented
// extraction that keeps one output line per visual row.
func (t *TextLayer) Extract(path string, cfg types.TextConfig) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	r, err := pdf.NewReaderEncrypted(f, st.Size(), func() string { return cfg.Password })
	if err != nil {
		return "", fmt.Errorf("reading PDF %s: %w", path, err)
	}

	wanted := pageSet(cfg.Pages)
	var parts []string
	for i := 1; i <= r.NumPage(); i++ {
		if wanted != nil && !wanted[i] {
			continue
		}
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		var text string
		var pageErr error
		if cfg.Layout {
			text, pageErr = rowText(p)
		} else {
			text, pageErr = p.GetPlainText(nil)
		}
		if pageErr != nil {
			return "", fmt.Errorf("reading page %d of %s: %w", i, path, pageErr)
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	return strings.Join(parts, "\n\n"), nil
}

// rowText renders a page row by row. Fragments on the same visual row are
// joined with single spaces, which keeps simple tables readable.
func rowText(p pdf.Page) (string, error) {
	rows, err := p.GetTextByRow()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, row := range rows {
		var frags []string
		for _, t := range row.Content {
			if s := strings.TrimSpace(t.S); s != "" {
				frags = append(frags, s)
			}
		}
		if len(frags) == 0 {
			continue
		}
		b.WriteString(strings.Join(frags, " "))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func pageSet(pages []int) map[int]bool {
	if len(pages) == 0 {
		return nil
	}
	set := make(map[int]bool, len(pages))
	for _, p := range pages {
		set[p] = true
	}
	return set
}
