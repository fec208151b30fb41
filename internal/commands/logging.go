package commands

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// defaultLogPath returns <user cache dir>/quicklaunch/quicklaunch.log
func defaultLogPath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, "quicklaunch", "quicklaunch.log")
}

// openLog redirects the standard logger to the log file. The terminal belongs
// to the UI, so when the file cannot be opened logging is discarded.
func openLog(cmd *cobra.Command, args []string) error {
	path := logPath
	if path == "" {
		path = defaultLogPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		logFile, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			log.SetOutput(logFile)
			return nil
		}
	}

	log.SetOutput(io.Discard)
	return nil
}

// closeLog releases the log file opened by openLog, if any
func closeLog() error {
	if logFile == nil {
		return nil
	}
	log.SetOutput(io.Discard)
	err := logFile.Close()
	logFile = nil
	return err
}
