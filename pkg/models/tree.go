package models

import (
	"time"
)

// EntryKind discriminates tree nodes when serialized
type EntryKind string

const (
	KindFile      EntryKind = "file"
	KindDirectory EntryKind = "directory"
)

// Node is a single entry in the analyzed tree, either a FileEntry
// or a DirectoryEntry
type Node interface {
	EntryName() string
	EntryPath() string
}

// FileEntry is a leaf of the tree. All fields are captured from a
// single stat at scan time and never updated afterwards.
type FileEntry struct {
	Kind      EntryKind `json:"type"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`      // absolute path
	Size      int64     `json:"size"`      // bytes, from stat
	ModTime   time.Time `json:"mod_time"`  // last modification time
	Extension string    `json:"extension"` // with leading dot, lowercased
	Language  string    `json:"language,omitempty"`
}

// EntryName returns the file name
func (f *FileEntry) EntryName() string { return f.Name }

// EntryPath returns the absolute file path
func (f *FileEntry) EntryPath() string { return f.Path }

// DirectoryEntry is an internal node of the tree. Children preserve
// the order the directory listing returned them; callers must not
// assume alphabetical order.
type DirectoryEntry struct {
	Kind     EntryKind `json:"type"`
	Name     string    `json:"name"`
	Path     string    `json:"path"` // absolute path
	ModTime  time.Time `json:"mod_time"`
	Children []Node    `json:"children"`
}

// EntryName returns the directory name
func (d *DirectoryEntry) EntryName() string { return d.Name }

// EntryPath returns the absolute directory path
func (d *DirectoryEntry) EntryPath() string { return d.Path }

// NewFileEntry creates a file leaf
func NewFileEntry(name, path string, size int64, modTime time.Time, extension, language string) *FileEntry {
	return &FileEntry{
		Kind:      KindFile,
		Name:      name,
		Path:      path,
		Size:      size,
		ModTime:   modTime,
		Extension: extension,
		Language:  language,
	}
}

// NewDirectoryEntry creates a directory node with no children yet
func NewDirectoryEntry(name, path string, modTime time.Time) *DirectoryEntry {
	return &DirectoryEntry{
		Kind:     KindDirectory,
		Name:     name,
		Path:     path,
		ModTime:  modTime,
		Children: []Node{},
	}
}

// WalkTree visits every node of the tree depth-first, parents before
// children, calling fn for each
func WalkTree(root Node, fn func(Node)) {
	if root == nil {
		return
	}
	fn(root)
	if dir, ok := root.(*DirectoryEntry); ok {
		for _, child := range dir.Children {
			WalkTree(child, fn)
		}
	}
}
