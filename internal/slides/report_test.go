// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docpress/pkg/types"
)

func TestBuildReport(t *testing.T) {
	deck := []types.Slide{
		{Title: "One", Blocks: []types.Block{
			{Kind: types.BlockBullet, Text: "a"},
			{Kind: types.BlockBullet, Text: "b"},
			{Kind: types.BlockSubtitle, Text: "s"},
		}},
		{Title: "Two", Blocks: []types.Block{
			{Kind: types.BlockBold, Text: "x"},
			{Kind: types.BlockText, Text: "y"},
		}},
	}

	r := BuildReport("in.md", "out.odp", deck)

	assert.Equal(t, "in.md", r.Input)
	assert.Equal(t, "out.odp", r.Output)
	assert.Equal(t, 2, r.Summary.SlideCount)
	assert.Equal(t, 2, r.Summary.Bullets)
	assert.Equal(t, 1, r.Summary.Subtitles)
	assert.Equal(t, 1, r.Summary.Bold)
	assert.Equal(t, 1, r.Summary.Text)
	assert.False(t, r.Summary.Timestamp.IsZero())

	require.Len(t, r.Slides, 2)
	assert.Equal(t, SlideStat{Title: "One", Blocks: 3}, r.Slides[0])
	assert.Equal(t, SlideStat{Title: "Two", Blocks: 2}, r.Slides[1])
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	r := BuildReport("in.md", "out.odp", Parse("## Solo\n- item\n"))

	require.NoError(t, WriteReport(path, r))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Report
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, 1, got.Summary.SlideCount)
	assert.Equal(t, 1, got.Summary.Bullets)
	assert.Equal(t, "Solo", got.Slides[0].Title)
}
