package combine

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// ErrUndecodable is returned by ReadText when a file is not valid UTF-8.
var ErrUndecodable = errors.New("content is not valid UTF-8")

// ReadText reads the whole file at path and returns it as a string.
// The file is closed before returning whether or not the read succeeds.
func ReadText(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("error reading file %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, ErrUndecodable)
	}
	return string(data), nil
}
