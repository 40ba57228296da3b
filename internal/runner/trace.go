package runner

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// TraceFileName is the debug trace written to the runner's working directory.
const TraceFileName = "runner_debug.txt"

// OpenTrace opens the append-only debug trace in dir. When the file cannot be
// opened the returned logger discards everything; the trace never affects
// runner behavior.
func OpenTrace(dir string) (*log.Logger, func()) {
	f, err := os.OpenFile(filepath.Join(dir, TraceFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard, "", 0), func() {}
	}
	return log.New(f, "", log.LstdFlags), func() { _ = f.Close() }
}
