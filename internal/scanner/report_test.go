package scanner

import (
	"testing"

	"github.com/AlexJ-StL/unified-repo-analyzer-sub009/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport(t *testing.T) {
	s := newTestScanner(t, fixtureFs(t), nil)

	tree, err := s.ScanStructure("/repo")
	require.NoError(t, err)
	contents := s.BuildContentMap(tree)
	rep := s.BuildReport(tree.Path, tree, contents)

	assert.Equal(t, "/repo", rep.RootPath)
	assert.Same(t, tree, rep.Tree)

	// a.ts (50) + image.png (2000) + sub/b.md (30); .git/config excluded
	assert.Equal(t, 3, rep.Metadata.TotalFiles)
	assert.Equal(t, int64(2080), rep.Metadata.TotalSize)
	// root + sub
	assert.Equal(t, 2, rep.Metadata.TotalDirs)
	assert.False(t, rep.Metadata.AnalyzedAt.IsZero())
}

func TestBuildReportSizeIgnoresSentinels(t *testing.T) {
	fsys := fixtureFs(t)
	// Force every file into a sentinel; sizes must still come from stat
	cfg := &config.Config{MaxSize: "10"}
	s := newTestScanner(t, fsys, cfg)

	tree, err := s.ScanStructure("/repo")
	require.NoError(t, err)
	contents := s.BuildContentMap(tree)
	rep := s.BuildReport(tree.Path, tree, contents)

	assert.Equal(t, int64(2080), rep.Metadata.TotalSize)
}

func TestBuildReportWithoutContents(t *testing.T) {
	s := newTestScanner(t, fixtureFs(t), nil)

	tree, err := s.ScanStructure("/repo")
	require.NoError(t, err)
	rep := s.BuildReport(tree.Path, tree, nil)

	assert.Nil(t, rep.Contents)
	assert.Equal(t, 3, rep.Metadata.TotalFiles)
}
