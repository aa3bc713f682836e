// File: pkg/combine/helpers.go
package combine

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// EncodeRecords renders records as a JSON array indented by four spaces.
// Non-ASCII text and HTML characters are written as-is.
func EncodeRecords(records []FileRecord) ([]byte, error) {
	if records == nil {
		records = []FileRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return unescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// unescapeLineSeparators replaces the \u2028 and \u2029 escapes encoding/json
// always emits with the literal characters. data must be encoder output: every
// backslash there starts a two-byte escape or a \uXXXX escape, so escapes are
// consumed pairwise and an escaped backslash followed by "u2028" text is left alone.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			out = append(out, data[i])
			continue
		}
		if rest := data[i+1:]; len(rest) >= 5 && rest[0] == 'u' {
			switch string(rest[1:5]) {
			case "2028":
				out = append(out, "\u2028"...)
				i += 5
				continue
			case "2029":
				out = append(out, "\u2029"...)
				i += 5
				continue
			}
		}
		out = append(out, data[i], data[i+1])
		i++
	}
	return out
}

// WriteCombinedFile writes the records to outputPath in a single write.
// If the write fails and the file did not exist beforehand, the partial file
// is removed; a file that was already there is never deleted.
func WriteCombinedFile(outputPath string, records []FileRecord, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("Writing combined content to output file", zap.String("combinedFile", outputPath))

	data, err := EncodeRecords(records)
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	_, statErr := os.Lstat(outputPath)
	existed := statErr == nil || !errors.Is(statErr, fs.ErrNotExist)

	if err := writeToFile(outputPath, data, 0o644, logger); err != nil {
		if !existed {
			if rmErr := os.Remove(outputPath); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
				logger.Warn("Failed to remove partial output file", zap.String("file", outputPath), zap.Error(rmErr))
			}
		}
		return fmt.Errorf("failed to write combined file %s: %w", outputPath, err)
	}
	return nil
}

// writeToFile writes data to a file and logs the operation.
func writeToFile(path string, data []byte, perm os.FileMode, logger *zap.Logger) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		return err
	}
	logger.Debug("Successfully wrote file", zap.String("path", path), zap.Int("sizeBytes", len(data)))
	return nil
}
