// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docpress/pkg/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []types.Slide
	}{
		{
			name: "bullets subtitle and text",
			doc:  "## Overview\n- First point\n- Second point\n### Details\nSome text.\n",
			want: []types.Slide{
				{
					Title: "Overview",
					Blocks: []types.Block{
						{Kind: types.BlockBullet, Text: "First point"},
						{Kind: types.BlockBullet, Text: "Second point"},
						{Kind: types.BlockSubtitle, Text: "Details"},
						{Kind: types.BlockText, Text: "Some text."},
					},
				},
			},
		},
		{
			name: "no slide markers yields empty deck",
			doc:  "Just a paragraph.\n\nAnother one.\n",
			want: []types.Slide{},
		},
		{
			name: "lines before first marker are discarded",
			doc:  "# Top title\nintro text\n## First\ncontent\n",
			want: []types.Slide{
				{Title: "First", Blocks: []types.Block{{Kind: types.BlockText, Text: "content"}}},
			},
		},
		{
			name: "title sanitization removes emoji and punctuation",
			doc:  "## Setup 🚀 Guide!\n",
			want: []types.Slide{{Title: "Setup  Guide"}},
		},
		{
			name: "hyphens survive sanitization",
			doc:  "## Build-and-Test (v2)\n",
			want: []types.Slide{{Title: "Build-and-Test v2"}},
		},
		{
			name: "bold line",
			doc:  "## S\n**Important note**\n",
			want: []types.Slide{{Title: "S", Blocks: []types.Block{{Kind: types.BlockBold, Text: "Important note"}}}},
		},
		{
			name: "bullet wins over bold",
			doc:  "## S\n- **emphasized item**\n",
			want: []types.Slide{{Title: "S", Blocks: []types.Block{{Kind: types.BlockBullet, Text: "**emphasized item**"}}}},
		},
		{
			name: "table data row is flattened",
			doc:  "## S\n| A | B |\n",
			want: []types.Slide{{Title: "S", Blocks: []types.Block{{Kind: types.BlockText, Text: "A | B"}}}},
		},
		{
			name: "table separator rows are suppressed",
			doc:  "## S\n| Col1 | Col2 |\n|---|---|\n| --- | --- |\n| a | b |\n",
			want: []types.Slide{{Title: "S", Blocks: []types.Block{
				{Kind: types.BlockText, Text: "Col1 | Col2"},
				{Kind: types.BlockText, Text: "a | b"},
			}}},
		},
		{
			name: "row with empty first cell is dropped",
			doc:  "## S\n|  | B |\n",
			want: []types.Slide{{Title: "S"}},
		},
		{
			name: "horizontal rule and blank lines produce nothing",
			doc:  "## S\n\n---\n\ntext\n",
			want: []types.Slide{{Title: "S", Blocks: []types.Block{{Kind: types.BlockText, Text: "text"}}}},
		},
		{
			name: "deeper markers do not open slides",
			doc:  "## One\n### Sub\n## Two\n",
			want: []types.Slide{
				{Title: "One", Blocks: []types.Block{{Kind: types.BlockSubtitle, Text: "Sub"}}},
				{Title: "Two"},
			},
		},
		{
			name: "unterminated final slide is flushed",
			doc:  "## A\nx\n## B\ny",
			want: []types.Slide{
				{Title: "A", Blocks: []types.Block{{Kind: types.BlockText, Text: "x"}}},
				{Title: "B", Blocks: []types.Block{{Kind: types.BlockText, Text: "y"}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.doc)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Setup 🚀 Guide!", "Setup  Guide"},
		{"  padded  ", "padded"},
		{"Configuración", "Configuración"}, // Unicode letters are word characters
		{"a_b-c", "a_b-c"},
		{"<markup> & junk", "markup  junk"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeTitle(tt.in), "input %q", tt.in)
	}
}
