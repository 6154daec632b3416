// Package debug is a small category logger.  Logging is off until Enable
// is called, so the engine can be chatty without polluting normal runs.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	out     io.Writer
	file    *os.File
	enabled bool
)

// Enable starts logging.  With an empty path it logs to stderr, otherwise
// to the named file (truncated).
func Enable(path string) error {
	mu.Lock()
	defer mu.Unlock()
	if path == "" {
		out = os.Stderr
		enabled = true
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	file = f
	out = f
	enabled = true
	return nil
}

// Disable stops logging and closes the log file if one is open.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		file.Close()
		file = nil
	}
	out = nil
	enabled = false
}

// Log writes one timestamped line under a category tag.  A no-op unless
// enabled.
func Log(category, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled || out == nil {
		return
	}
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(out, "[%s] %-8s %s\n", ts, category, fmt.Sprintf(format, args...))
	if file != nil {
		file.Sync()
	}
}
