package combine

import (
	"fmt"
	"path/filepath"
	"time"

	"concatjson/pkg/ignore"

	"go.uber.org/zap"
)

// RunCombine loads the ignore patterns, collects the text files under
// args.Directory and writes them as one JSON document inside that directory.
// It returns the path of the document.
func RunCombine(args *Arguments, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()
	logger.Info("Starting combination process", zap.String("directory", args.Directory))

	ignoreFile := args.IgnoreFile
	if ignoreFile == "" {
		ignoreFile = ignore.FileName
	}

	gi, err := ignore.LoadIgnoreFile(filepath.Join(args.Directory, ignoreFile), args.Notices, logger)
	if err != nil {
		return "", fmt.Errorf("failed to load ignore patterns: %w", err)
	}

	records, err := CollectFiles(args.Directory, gi, args.Notices, logger)
	if err != nil {
		return "", fmt.Errorf("failed to collect files: %w", err)
	}

	// Written after the walk, so this run never sees its own output.
	outputPath := filepath.Join(args.Directory, OutputFileName(args.Timestamp))
	if err := WriteCombinedFile(outputPath, records, logger); err != nil {
		return "", err
	}

	logger.Info("Combination process completed",
		zap.String("outputFile", outputPath),
		zap.Int("totalFiles", len(records)),
		zap.Duration("elapsed", time.Since(startTime)))
	return outputPath, nil
}
