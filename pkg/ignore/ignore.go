package ignore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"go.uber.org/zap"
)

// FileName is the conventional ignore file read from the scan root.
const FileName = ".gitignore"

// BuiltinPatterns keep version-control metadata out of every scan, with or
// without an ignore file. The bare form matches the relative path of a
// top-level .git, the prefixed form matches it anywhere in the raw path.
var BuiltinPatterns = []string{".git", "*/.git"}

// IgnorePattern is one compiled glob together with where it came from.
type IgnorePattern struct {
	Glob   glob.Glob // Compiled whole-string glob.
	Line   string    // Trimmed pattern text.
	LineNo int       // Line number in the ignore file (1-based), 0 for built-ins.
}

// GitIgnore is an ordered collection of ignore patterns.
type GitIgnore struct {
	Patterns []*IgnorePattern
	logger   *zap.Logger
}

// NewGitIgnore returns a GitIgnore holding only the built-in patterns.
func NewGitIgnore(logger *zap.Logger) *GitIgnore {
	if logger == nil {
		logger = zap.NewNop()
	}
	gi := &GitIgnore{
		Patterns: make([]*IgnorePattern, 0, len(BuiltinPatterns)),
		logger:   logger,
	}
	for _, p := range BuiltinPatterns {
		gi.add(p, 0)
	}
	return gi
}

// LoadIgnoreFile builds a GitIgnore from the built-in patterns followed by the
// lines of the ignore file at path. A missing file is reported on notices and
// is not an error; any other read failure is returned.
func LoadIgnoreFile(path string, notices io.Writer, logger *zap.Logger) (*GitIgnore, error) {
	gi := NewGitIgnore(logger)

	err := gi.CompileIgnoreFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if notices != nil {
			fmt.Fprintf(notices, "No %s file found at %s. Continuing without it.\n", FileName, path)
		}
		gi.logger.Info("Ignore file not found, using built-in patterns only", zap.String("filePath", path))
	case err != nil:
		return nil, fmt.Errorf("failed to read ignore file %s: %w", path, err)
	}

	gi.logger.Debug("Loaded ignore patterns", zap.Strings("patterns", gi.Lines()))
	return gi, nil
}

// CompileIgnoreLines adds every non-empty, non-comment line as a pattern,
// preserving order.
func (gi *GitIgnore) CompileIgnoreLines(lines ...string) {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		gi.add(trimmed, i+1)
	}
}

// CompileIgnoreFile reads an ignore file and compiles its lines.
// The error from reading is returned unchanged so callers can test it with errors.Is.
func (gi *GitIgnore) CompileIgnoreFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	lines := strings.Split(string(content), "\n")
	before := len(gi.Patterns)
	gi.CompileIgnoreLines(lines...)
	gi.logger.Debug("Compiled ignore file",
		zap.String("filePath", path),
		zap.Int("lineCount", len(lines)),
		zap.Int("patternCount", len(gi.Patterns)-before))
	return nil
}

// Lines returns the pattern texts in order.
func (gi *GitIgnore) Lines() []string {
	lines := make([]string, len(gi.Patterns))
	for i, p := range gi.Patterns {
		lines[i] = p.Line
	}
	return lines
}

// MatchesPath reports whether path is ignored relative to root.
func (gi *GitIgnore) MatchesPath(path, root string) bool {
	matched, _ := gi.MatchesPathWithPattern(path, root)
	return matched
}

// MatchesPathWithPattern tests every pattern against both the path relative to
// root and the path exactly as given, and returns the first pattern that matches.
//
// Matching is against the whole string: '*' also crosses path separators, and a
// pattern without wildcards only matches a path equal to it. A bare directory
// name such as "build" therefore does not match "build/out.txt" or "src/build".
func (gi *GitIgnore) MatchesPathWithPattern(path, root string) (bool, *IgnorePattern) {
	relPath, err := filepath.Rel(root, path)
	if err != nil {
		relPath = path
	}

	for _, pattern := range gi.Patterns {
		if pattern.Glob.Match(relPath) || pattern.Glob.Match(path) {
			gi.logger.Debug("Path matches ignore pattern",
				zap.String("path", path),
				zap.String("relPath", relPath),
				zap.String("pattern", pattern.Line))
			return true, pattern
		}
	}
	return false, nil
}

func (gi *GitIgnore) add(line string, lineNo int) {
	g, err := compileGlob(line)
	if err != nil {
		gi.logger.Warn("Skipping unusable ignore pattern",
			zap.String("pattern", line),
			zap.Int("lineNo", lineNo),
			zap.Error(err))
		return
	}
	gi.Patterns = append(gi.Patterns, &IgnorePattern{Glob: g, Line: line, LineNo: lineNo})
}
