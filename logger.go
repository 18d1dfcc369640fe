package gperf

import "sync"

// Logger receives this package's log output. It is a three-method subset
// of logrus, so a *logrus.Logger can be passed in as-is and anything else
// only has to implement these methods.
type Logger interface {
	Infof(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type NoopLogger struct{}

func (*NoopLogger) Infof(format string, args ...interface{})  {}
func (*NoopLogger) Debugf(format string, args ...interface{}) {}
func (*NoopLogger) Errorf(format string, args ...interface{}) {}

var (
	loggerMu      sync.RWMutex
	currentLogger Logger = &NoopLogger{}
)

// SetLogger routes this package's log output to l. The default is a
// NoopLogger. A *logrus.Logger satisfies the interface directly. Passing
// nil restores the default.
func SetLogger(l Logger) {
	if l == nil {
		l = &NoopLogger{}
	}
	loggerMu.Lock()
	currentLogger = l
	loggerMu.Unlock()
}

func logger() Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return currentLogger
}
