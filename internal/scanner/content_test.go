package scanner

import (
	"fmt"
	"os"
	"testing"

	"github.com/AlexJ-StL/unified-repo-analyzer-sub009/internal/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildContentMap(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/repo/readme.md", []byte("# Hello"), 0644))
	writeFile(t, fsys, "/repo/image.png", 2000)
	s := newTestScanner(t, fsys, nil)

	tree, err := s.ScanStructure("/repo")
	require.NoError(t, err)
	contents := s.BuildContentMap(tree)

	// One entry per file, no omissions
	require.Len(t, contents, 2)
	assert.Equal(t, "# Hello", contents["/repo/readme.md"])
	assert.Equal(t, "[Binary file]", contents["/repo/image.png"])
}

func TestBuildContentMapOversized(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/repo/big.txt", 2*1024*1024)
	writeFile(t, fsys, "/repo/small.txt", 10)
	s := newTestScanner(t, fsys, nil) // 1M default ceiling

	tree, err := s.ScanStructure("/repo")
	require.NoError(t, err)
	contents := s.BuildContentMap(tree)

	assert.Equal(t, "[File too large: 2097152 bytes]", contents["/repo/big.txt"])
	assert.Equal(t, "xxxxxxxxxx", contents["/repo/small.txt"])
}

func TestBuildContentMapBinaryByExtensionOnly(t *testing.T) {
	fsys := afero.NewMemMapFs()
	// Perfectly readable text, but a binary extension: never read
	require.NoError(t, afero.WriteFile(fsys, "/repo/notes.PDF", []byte("plain text"), 0644))
	s := newTestScanner(t, fsys, nil)

	tree, err := s.ScanStructure("/repo")
	require.NoError(t, err)
	contents := s.BuildContentMap(tree)

	assert.Equal(t, "[Binary file]", contents["/repo/notes.PDF"])
}

func TestBuildContentMapReadFailure(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/repo/locked.txt", 10)
	writeFile(t, fsys, "/repo/open.txt", 10)
	denied := &failFs{Fs: fsys, failPaths: map[string]bool{"/repo/locked.txt": true}}
	s := newTestScanner(t, denied, nil)

	tree, err := s.ScanStructure("/repo")
	require.NoError(t, err)
	contents := s.BuildContentMap(tree)

	// The failed read degrades to a sentinel embedding the error; the
	// sibling file is unaffected
	pathErr := &os.PathError{Op: "open", Path: "/repo/locked.txt", Err: os.ErrPermission}
	assert.Equal(t, fmt.Sprintf("[Error reading file: %s]", pathErr.Error()), contents["/repo/locked.txt"])
	assert.Equal(t, "xxxxxxxxxx", contents["/repo/open.txt"])
}

func TestBuildContentMapCustomCeiling(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/repo/a.txt", 600)
	cfg := &config.Config{MaxSize: "500"}
	s := newTestScanner(t, fsys, cfg)

	tree, err := s.ScanStructure("/repo")
	require.NoError(t, err)
	contents := s.BuildContentMap(tree)

	assert.Equal(t, "[File too large: 600 bytes]", contents["/repo/a.txt"])
}

func TestBuildContentMapEmptyTree(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/repo", 0755))
	s := newTestScanner(t, fsys, nil)

	tree, err := s.ScanStructure("/repo")
	require.NoError(t, err)
	contents := s.BuildContentMap(tree)

	require.NotNil(t, contents)
	assert.Empty(t, contents)
}
