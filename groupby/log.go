package groupby

import "go.uber.org/zap"

// log is the package-wide logger for table lifecycle events (grows), never
// on the per-row Add path. Defaults to a no-op logger; callers embedding
// this package in a service wire their own with SetLogger.
var log = zap.NewNop()

// SetLogger replaces the package logger. Passing nil restores the no-op
// default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	log = l
}
