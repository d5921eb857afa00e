package log

import "sync"

var (
	globalMu sync.Mutex
	global   *Logger
)

// SetDefaultLogger installs the process-wide logger. The CLI runtime calls it
// once after configuration is loaded; packages constructed before that point
// pick up the replacement on their next DefaultLogger call.
func SetDefaultLogger(logger *Logger) {
	globalMu.Lock()
	global = logger
	globalMu.Unlock()
}

// DefaultLogger returns the process-wide logger. Before SetDefaultLogger runs
// it lazily creates a quiet stderr logger, so library code can always log.
func DefaultLogger() *Logger {
	globalMu.Lock()
	defer globalMu.Unlock()

	if global == nil {
		global = Default()
	}
	return global
}
