// File: pkg/combine/traversal.go
package combine

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// IgnoreParser decides whether a path under root is excluded.
type IgnoreParser interface {
	MatchesPath(path, root string) bool
}

// CollectFiles walks root depth-first and returns a record for every file that
// is not ignored and decodes as UTF-8. Ignored directories are pruned before
// descent. Undecodable files are reported on notices and skipped; any other
// filesystem error aborts the walk.
func CollectFiles(root string, gi IgnoreParser, notices io.Writer, logger *zap.Logger) ([]FileRecord, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notices == nil {
		notices = io.Discard
	}

	records := []FileRecord{}
	skipped := 0
	logger.Debug("Starting file traversal and collection", zap.String("root", root))

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to access %s: %w", path, err)
		}
		if path == root {
			return nil
		}

		if d.IsDir() {
			if gi.MatchesPath(path, root) {
				logger.Debug("Skipping ignored directory during traversal", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}

		if gi.MatchesPath(path, root) {
			logger.Debug("Skipping ignored file during traversal", zap.String("filePath", path))
			return nil
		}

		readable, err := isReadableFile(path, d)
		if err != nil {
			return err
		}
		if !readable {
			logger.Debug("Skipping non-regular file during traversal", zap.String("filePath", path))
			return nil
		}

		content, err := ReadText(path)
		if errors.Is(err, ErrUndecodable) {
			fmt.Fprintf(notices, "Skipping binary or non-UTF-8 file: %s\n", path)
			logger.Info("Skipped undecodable file", zap.String("filePath", path))
			skipped++
			return nil
		}
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("failed to relativize %s: %w", path, err)
		}

		records = append(records, FileRecord{
			Path:     relPath,
			Content:  content,
			Filename: d.Name(),
		})
		logger.Debug("Collected file", zap.String("path", relPath), zap.Int("contentSizeBytes", len(content)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Completed file traversal and collection",
		zap.Int("collectedFiles", len(records)),
		zap.Int("skippedFiles", skipped))
	return records, nil
}

// isReadableFile reports whether a non-directory entry should be read.
// Symlinks are followed for files but symlinked directories are not entered,
// and special files such as sockets and devices are left alone.
func isReadableFile(path string, d fs.DirEntry) (bool, error) {
	mode := d.Type()
	if mode.IsRegular() {
		return true, nil
	}
	if mode&fs.ModeSymlink == 0 {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to resolve symlink %s: %w", path, err)
	}
	return info.Mode().IsRegular(), nil
}
