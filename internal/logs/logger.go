// Package logs provides a file-backed logger shared by all components.
// The TUI owns the terminal, so log output always goes to a file.
package logs

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	Logger  = log.New(io.Discard, "[tnotes] ", log.LstdFlags|log.Lshortfile)
	logFile *os.File
	mu      sync.Mutex
)

// Initialize points the logger at debug.log inside the given directory.
// Until this is called, log output is discarded.
func Initialize(dir string) error {
	mu.Lock()
	defer mu.Unlock()

	if dir == "" {
		return nil
	}

	logPath := filepath.Join(dir, "debug.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	Logger = log.New(f, "[tnotes] ", log.LstdFlags|log.Lshortfile)
	return nil
}

// Close closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		return logFile.Close()
	}
	return nil
}
