package binding

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the logger the loader reports through. It defaults to
// a no-op logger, so loading stays silent unless the embedding program
// opts in.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the binding package's logger. Call it during
// program initialization, before any Load runs: the logger variable is
// not synchronized against concurrent Logger readers, so swapping it
// mid-flight is a data race.
func SetLogger(l *zap.Logger) {
	logger = l
}
