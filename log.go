package pairing

import "go.uber.org/zap"

// logger is the package-wide structured logger. It defaults to a no-op
// production logger so the library stays silent unless a caller opts in,
// the same override shape drand's common/log package exposes around
// zap.SugaredLogger.
var logger = zap.NewNop().Sugar()

// SetLogger installs l as the package-wide logger for lifecycle and
// pairing events. Passing nil restores the no-op default.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		logger = zap.NewNop().Sugar()
		return
	}
	logger = l
}
