// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package odp

import (
	"fmt"
	"os"
	"time"

	"github.com/pdiddy/docpress/internal/slides"
	"github.com/pdiddy/docpress/pkg/types"
)

// Result summarizes a completed conversion.
type Result struct {
	Slides int
	Blocks int
	Deck   []types.Slide
}

// ConvertFile reads a markdown document, parses it into a deck, and writes
// the presentation archive at dest. The staging directory is torn down
// unconditionally, including when archiving fails. An unreadable input
// fails before any staging is created.
func ConvertFile(input, dest string, meta types.DeckMeta) (Result, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", input, err)
	}

	deck := slides.Parse(string(data))
	res := Result{Slides: len(deck), Deck: deck}
	for _, s := range deck {
		res.Blocks += len(s.Blocks)
	}

	pkg := BuildPackage(deck, meta, time.Now())

	staging, err := Stage(pkg)
	if err != nil {
		return res, err
	}
	defer func() {
		if cerr := Cleanup(staging); cerr != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", cerr)
		}
	}()

	if err := WriteArchive(staging, dest); err != nil {
		return res, err
	}
	return res, nil
}
