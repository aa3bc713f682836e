package cmd

import (
	"errors"
	"fmt"

	"concatjson/pkg/combine"
	"concatjson/pkg/ignore"

	"github.com/spf13/cobra"
)

// ErrUsage is returned when no directory argument is given.
var ErrUsage = errors.New("missing directory argument")

// runCombine captures the start timestamp and runs the concatenation for the
// first positional argument. Extra arguments are ignored.
func (c *cli) runCombine(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) < 1 {
		fmt.Fprintf(out, "Usage: %s <directory>\n", appName)
		return ErrUsage
	}

	timestamp := c.now().Unix()
	outputPath, err := combine.RunCombine(&combine.Arguments{
		Directory:  args[0],
		IgnoreFile: ignore.FileName,
		Timestamp:  timestamp,
		Notices:    out,
	}, c.logger)
	if err != nil {
		return fmt.Errorf("failed to concatenate %s: %w", args[0], err)
	}

	fmt.Fprintf(out, "Files have been saved into %s\n", outputPath)
	return nil
}
