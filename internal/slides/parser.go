// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package slides parses markdown-like manuals into an ordered slide deck.
//
// The parser is deliberately not a markdown grammar: each line is trimmed and
// classified by an ordered list of rules, first match wins. That keeps the
// exact precedence a slide author relies on (a bulleted bold line is a
// bullet, not a bold block) without hidden fallthrough.
package slides

import (
	"regexp"
	"strings"

	"github.com/pdiddy/docpress/pkg/types"
)

const (
	slideMarker    = "## "
	subtitleMarker = "### "
	bulletMarker   = "- "
	boldMarker     = "**"
	cellSeparator  = " | "
)

// titleSanitizer strips every rune outside letters, digits, underscore,
// whitespace, and hyphen. Titles land in presentation shapes where emoji
// and markup punctuation corrupt layout expectations.
var titleSanitizer = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)

// separatorCell matches one cell of a table header-separator row (`---`,
// `:--`, `--:`, `:-:`).
var separatorCell = regexp.MustCompile(`^:?-+:?$`)

// rule classifies one trimmed, non-empty line inside a slide. match reports
// whether the rule applies; build produces the block (ok=false drops the
// line without trying later rules).
type rule struct {
	match func(line string) bool
	build func(line string) (types.Block, bool)
}

// blockRules is evaluated top to bottom per line; order is the contract.
var blockRules = []rule{
	{
		match: func(l string) bool { return strings.HasPrefix(l, subtitleMarker) },
		build: func(l string) (types.Block, bool) {
			return types.Block{Kind: types.BlockSubtitle, Text: strings.TrimSpace(l[len(subtitleMarker):])}, true
		},
	},
	{
		match: func(l string) bool { return strings.HasPrefix(l, bulletMarker) },
		build: func(l string) (types.Block, bool) {
			return types.Block{Kind: types.BlockBullet, Text: strings.TrimSpace(l[len(bulletMarker):])}, true
		},
	},
	{
		match: func(l string) bool {
			return len(l) >= 2*len(boldMarker) && strings.HasPrefix(l, boldMarker) && strings.HasSuffix(l, boldMarker)
		},
		build: func(l string) (types.Block, bool) {
			return types.Block{Kind: types.BlockBold, Text: strings.TrimSpace(l[len(boldMarker) : len(l)-len(boldMarker)])}, true
		},
	},
	{
		match: func(l string) bool { return strings.HasPrefix(l, "|") && strings.Contains(l[1:], "|") },
		build: buildTableRow,
	},
	{
		match: func(l string) bool { return !strings.HasPrefix(l, "---") },
		build: func(l string) (types.Block, bool) {
			return types.Block{Kind: types.BlockText, Text: l}, true
		},
	},
}

// buildTableRow flattens a pipe-delimited row into a plain text block with
// cells joined by " | ". Header-separator rows and rows with an empty first
// cell are dropped.
func buildTableRow(line string) (types.Block, bool) {
	raw := strings.Split(line, "|")
	if len(raw) < 3 {
		return types.Block{}, false
	}
	cells := make([]string, 0, len(raw)-2)
	for _, c := range raw[1 : len(raw)-1] {
		cells = append(cells, strings.TrimSpace(c))
	}
	if len(cells) == 0 || cells[0] == "" {
		return types.Block{}, false
	}
	if isSeparatorRow(cells) {
		return types.Block{}, false
	}
	return types.Block{Kind: types.BlockText, Text: strings.Join(cells, cellSeparator)}, true
}

// isSeparatorRow reports whether every cell is a dashes-under-pipes marker.
func isSeparatorRow(cells []string) bool {
	for _, c := range cells {
		if !separatorCell.MatchString(c) {
			return false
		}
	}
	return true
}

// Parse splits a document into slides. A line starting with "## " (and not
// "### ") opens a new slide; subsequent non-empty lines are classified by
// blockRules. Lines before the first slide marker are discarded. A document
// with no slide markers yields an empty, non-nil deck.
func Parse(doc string) []types.Slide {
	deck := []types.Slide{}
	var current *types.Slide

	for _, raw := range strings.Split(doc, "\n") {
		line := strings.TrimSpace(raw)

		if strings.HasPrefix(line, slideMarker) && !strings.HasPrefix(line, subtitleMarker) {
			if current != nil {
				deck = append(deck, *current)
			}
			current = &types.Slide{Title: SanitizeTitle(line[len(slideMarker):])}
			continue
		}
		if current == nil || line == "" {
			continue
		}

		for _, r := range blockRules {
			if !r.match(line) {
				continue
			}
			if b, ok := r.build(line); ok {
				current.Blocks = append(current.Blocks, b)
			}
			break
		}
	}

	if current != nil {
		deck = append(deck, *current)
	}
	return deck
}

// SanitizeTitle trims a raw title and removes every rune outside the
// letter/digit/underscore/whitespace/hyphen class. Interior whitespace is
// kept as-is, so removed runes can leave doubled spaces behind.
func SanitizeTitle(raw string) string {
	return titleSanitizer.ReplaceAllString(strings.TrimSpace(raw), "")
}
