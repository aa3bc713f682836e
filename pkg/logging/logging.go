package logging

import (
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Logger is the process-wide logger installed by Setup.
var Logger = zap.NewNop()

// Options selects how New builds a logger.
type Options struct {
	Debug      bool   // Console output at debug level instead of JSON at info level.
	AppName    string // Attached to every entry as appName.
	AppVersion string // Attached to every entry as appVersion.
}

// New builds a logger writing to stderr with sampling off and ISO 8601 timestamps.
func New(opts Options) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if opts.Debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Sampling = nil
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.InitialFields = map[string]interface{}{
		"appName":    opts.AppName,
		"appVersion": opts.AppVersion,
	}
	return cfg.Build()
}

// Setup installs a new logger as Logger and as zap's global logger.
// On failure Logger falls back to zap's example logger and the error is returned.
func Setup(debug bool, appName, appVersion string) error {
	logger, err := New(Options{Debug: debug, AppName: appName, AppVersion: appVersion})
	if err != nil {
		Logger = zap.NewExample()
		return err
	}

	Logger = logger
	zap.ReplaceGlobals(Logger)
	return nil
}

// Sync flushes logger when stderr can be synced. Syncing a pipe or character
// device returns "invalid argument", which is not worth reporting.
func Sync(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if err := logger.Sync(); err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "invalid argument") {
			log.Printf("Logger sync failed: %v", err)
		}
	}
}

func isRegularFile(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
