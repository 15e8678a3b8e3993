package scanner

import (
	"fmt"

	"github.com/AlexJ-StL/unified-repo-analyzer-sub009/internal/language"
	"github.com/AlexJ-StL/unified-repo-analyzer-sub009/pkg/models"
	"github.com/spf13/afero"
)

// BuildContentMap reads the content of every file in a previously
// scanned tree. The structure is not re-walked on disk; only file bytes
// are read. Oversized files, binary extensions and read failures are
// recorded as sentinel strings, so every FileEntry in the tree has an
// entry and a failure never aborts the build for siblings.
func (s *Scanner) BuildContentMap(tree *models.DirectoryEntry) models.ContentMap {
	contents := make(models.ContentMap)
	maxSize := s.config.MaxFileSize()

	models.WalkTree(tree, func(n models.Node) {
		file, ok := n.(*models.FileEntry)
		if !ok {
			return
		}

		if file.Size > maxSize {
			contents[file.Path] = fmt.Sprintf("[File too large: %d bytes]", file.Size)
			return
		}
		if language.IsBinary(file.Extension) {
			contents[file.Path] = "[Binary file]"
			return
		}

		data, err := afero.ReadFile(s.fs, file.Path)
		if err != nil {
			contents[file.Path] = fmt.Sprintf("[Error reading file: %s]", err.Error())
			return
		}
		contents[file.Path] = string(data)
	})

	return contents
}
