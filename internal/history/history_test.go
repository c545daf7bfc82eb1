// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docpress/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)

	first := types.Run{
		Kind:   types.RunSlides,
		Input:  "manual.md",
		Output: "manual.odp",
		Detail: "3 slides, 12 blocks",
		Status: types.RunDone,
	}
	id1, err := s.Record(first)
	require.NoError(t, err)
	assert.Positive(t, id1)

	id2, err := s.Record(types.Run{
		Kind:   types.RunText,
		Input:  "report.pdf",
		Status: types.RunFailed,
	})
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	runs, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	assert.Equal(t, types.RunText, runs[0].Kind)
	assert.Equal(t, types.RunFailed, runs[0].Status)
	assert.Equal(t, "manual.md", runs[1].Input)
	assert.Equal(t, "manual.odp", runs[1].Output)
	assert.Equal(t, "3 slides, 12 blocks", runs[1].Detail)
	assert.WithinDuration(t, time.Now(), runs[0].CreatedAt, time.Minute)
}

func TestRecentLimit(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 5; i++ {
		_, err := s.Record(types.Run{Kind: types.RunSlides, Input: "doc.md", Status: types.RunDone})
		require.NoError(t, err)
	}

	runs, err := s.Recent(3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)

	// Zero falls back to the default cap.
	runs, err = s.Recent(0)
	require.NoError(t, err)
	assert.Len(t, runs, 5)
}

func TestRecentEmpty(t *testing.T) {
	s := openTestStore(t)
	runs, err := s.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestOpenCreatesStateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	s, err := Open(dir)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(filepath.Join(dir, dbFile))
	assert.NoError(t, err)
}
