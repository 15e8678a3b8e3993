package scanner

import (
	"time"

	"github.com/AlexJ-StL/unified-repo-analyzer-sub009/pkg/models"
)

// BuildReport aggregates a scanned tree and its content map into the
// final report. Sizes come from the stat-derived file metadata, not
// from content strings, so sentinel substitutions never skew totals.
// Pure aggregation; cannot fail for a well-formed tree.
func (s *Scanner) BuildReport(rootPath string, tree *models.DirectoryEntry, contents models.ContentMap) *models.Report {
	meta := models.Metadata{AnalyzedAt: time.Now()}

	models.WalkTree(tree, func(n models.Node) {
		switch entry := n.(type) {
		case *models.FileEntry:
			meta.TotalFiles++
			meta.TotalSize += entry.Size
		case *models.DirectoryEntry:
			meta.TotalDirs++
		}
	})

	return &models.Report{
		RootPath: rootPath,
		Tree:     tree,
		Contents: contents,
		Metadata: meta,
	}
}
