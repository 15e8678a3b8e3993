package models

import "time"

// ContentMap maps absolute file paths to textual content. Values are
// always non-nil strings: either the file's text or a bracketed
// sentinel ("[File too large: N bytes]", "[Binary file]",
// "[Error reading file: ...]").
type ContentMap map[string]string

// Metadata aggregates counts computed from a scanned tree
type Metadata struct {
	TotalFiles int       `json:"total_files"`
	TotalDirs  int       `json:"total_dirs"`
	TotalSize  int64     `json:"total_size"` // sum of FileEntry sizes, bytes
	AnalyzedAt time.Time `json:"analyzed_at"`
}

// Report is the complete result of one analysis run. It is built once
// and read-only afterwards; a new run produces a fresh Report.
type Report struct {
	RootPath string          `json:"root_path"`
	Tree     *DirectoryEntry `json:"tree"`
	Contents ContentMap      `json:"contents,omitempty"`
	Metadata Metadata        `json:"metadata"`
}
