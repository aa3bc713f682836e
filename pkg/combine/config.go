// File: pkg/combine/config.go
package combine

import (
	"fmt"
	"io"
)

// Arguments holds the configuration options for one concatenation run.
type Arguments struct {
	Directory  string    // Scan root; all record paths are relative to it.
	IgnoreFile string    // Ignore file name, resolved inside Directory.
	Timestamp  int64     // Unix seconds captured at startup, used to name the output file.
	Notices    io.Writer // Destination for user-facing notices; nil discards them.
}

// FileRecord is the output entry for one text file. Field order fixes the
// key order in the JSON document.
type FileRecord struct {
	Path     string `json:"path"`     // Path relative to the scan root.
	Content  string `json:"content"`  // Full UTF-8 content.
	Filename string `json:"filename"` // Base name.
}

// OutputFileName returns the name of the document written for a run started at timestamp.
func OutputFileName(timestamp int64) string {
	return fmt.Sprintf("concatenated_%d.json", timestamp)
}
