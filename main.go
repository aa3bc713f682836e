package main

import (
	"errors"
	"io"
	"log"
	"os"

	"concatjson/cmd"
	"concatjson/pkg/logging"
	"concatjson/pkg/version"

	"go.uber.org/zap"
)

func main() {
	if err := logging.Setup(false, "concatjson", version.Get().Version); err != nil {
		log.Printf("Failed to initialize logger: %v", err)
	}

	code := run(os.Args[1:], os.Stdout)
	logging.Sync(logging.Logger)
	os.Exit(code)
}

// run executes the CLI and maps its outcome to a process exit code.
// A missing argument exits 1 after the usage line; any other failure is
// logged once, with a stack trace in the production config, and exits 1.
func run(args []string, stdout io.Writer) int {
	err := cmd.Execute(logging.Logger, args, stdout)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, cmd.ErrUsage):
		return 1
	default:
		// Read the logger again: --debug replaces it while the command runs.
		logging.Logger.Error("concatjson execution failed", zap.Error(err))
		return 1
	}
}
