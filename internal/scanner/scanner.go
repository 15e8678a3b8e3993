package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlexJ-StL/unified-repo-analyzer-sub009/internal/config"
	"github.com/AlexJ-StL/unified-repo-analyzer-sub009/internal/language"
	"github.com/AlexJ-StL/unified-repo-analyzer-sub009/pkg/models"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Scanner walks a directory tree and produces an immutable snapshot of
// its structure and contents. Each invocation is self-contained; no
// state is shared between runs.
type Scanner struct {
	config  *config.Config
	logger  *zap.Logger
	fs      afero.Fs
	table   *language.Table
	exclude map[string]bool
}

// New creates a scanner over the OS filesystem
func New(cfg *config.Config, logger *zap.Logger, table *language.Table) *Scanner {
	return NewWithFs(cfg, logger, table, afero.NewOsFs())
}

// NewWithFs creates a scanner over an explicit filesystem
func NewWithFs(cfg *config.Config, logger *zap.Logger, table *language.Table, fsys afero.Fs) *Scanner {
	// Build exclude map for fast lookup
	exclude := make(map[string]bool)
	for _, dir := range cfg.Exclude {
		exclude[dir] = true
	}

	return &Scanner{
		config:  cfg,
		logger:  logger,
		fs:      fsys,
		table:   table,
		exclude: exclude,
	}
}

// ScanStructure builds the directory tree rooted at root. The root must
// exist and be a directory; anything below it degrades locally instead
// of failing the scan. Hidden entries (name starting with ".") are
// skipped. Children keep the order the directory listing returned them.
func (s *Scanner) ScanStructure(root string) (*models.DirectoryEntry, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := s.fs.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return nil, &NotADirectoryError{Path: absRoot}
	}

	return s.scanDir(absRoot, filepath.Base(absRoot), info), nil
}

// scanDir builds one directory node. An unreadable listing yields the
// node with empty children and a warning, never an error.
func (s *Scanner) scanDir(path, name string, info os.FileInfo) *models.DirectoryEntry {
	dir := models.NewDirectoryEntry(name, path, info.ModTime())

	entries, err := s.readDir(path)
	if err != nil {
		s.logger.Warn("Failed to read directory",
			zap.String("path", path),
			zap.Error(err))
		return dir
	}

	for _, entry := range entries {
		entryName := entry.Name()
		if strings.HasPrefix(entryName, ".") {
			continue
		}
		childPath := filepath.Join(path, entryName)

		if entry.IsDir() {
			if s.exclude[entryName] {
				s.logger.Debug("Skipping excluded directory", zap.String("path", childPath))
				continue
			}
			dir.Children = append(dir.Children, s.scanDir(childPath, entryName, entry))
			continue
		}

		ext := language.Extension(entryName)
		dir.Children = append(dir.Children, models.NewFileEntry(
			entryName,
			childPath,
			entry.Size(),
			entry.ModTime(),
			ext,
			s.table.Detect(ext),
		))
	}

	return dir
}

// readDir lists a directory without sorting, preserving the order the
// filesystem returned the entries
func (s *Scanner) readDir(path string) ([]os.FileInfo, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Readdir(-1)
}
