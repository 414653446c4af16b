package common

import (
	"fmt"
	"sync"
)

const logPrefix = `[wizlight] `

// Logger represents a minimal levelled logger.  *logrus.Logger satisfies it.
type Logger interface {
	// Debugf handles debug level messages
	Debugf(format string, args ...interface{})
	// Infof handles info level messages
	Infof(format string, args ...interface{})
	// Warnf handles warn level messages
	Warnf(format string, args ...interface{})
	// Errorf handles error level messages
	Errorf(format string, args ...interface{})
	// Fatalf handles fatal level messages, and must exit the application
	Fatalf(format string, args ...interface{})
	// Panicf handles panic level messages, and must panic the application
	Panicf(format string, args ...interface{})
}

// StubLogger satisfies the Logger interface and drops everything below fatal
type StubLogger struct{}

func (l *StubLogger) Debugf(format string, args ...interface{}) {}
func (l *StubLogger) Infof(format string, args ...interface{})  {}
func (l *StubLogger) Warnf(format string, args ...interface{})  {}
func (l *StubLogger) Errorf(format string, args ...interface{}) {}

// Fatalf panics rather than exiting; library code never calls it, so reaching
// it means a caller passed the stub where a real logger was expected.
func (l *StubLogger) Fatalf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

// Panicf panics with the formatted message
func (l *StubLogger) Panicf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

// prefixLogger tags every message so library output can be told apart from
// the application's own
type prefixLogger struct {
	mu  sync.RWMutex
	log Logger
}

func (l *prefixLogger) target() Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.log
}

func (l *prefixLogger) set(logger Logger) {
	l.mu.Lock()
	l.log = logger
	l.mu.Unlock()
}

func (l *prefixLogger) Debugf(format string, args ...interface{}) {
	l.target().Debugf(logPrefix+format, args...)
}

func (l *prefixLogger) Infof(format string, args ...interface{}) {
	l.target().Infof(logPrefix+format, args...)
}

func (l *prefixLogger) Warnf(format string, args ...interface{}) {
	l.target().Warnf(logPrefix+format, args...)
}

func (l *prefixLogger) Errorf(format string, args ...interface{}) {
	l.target().Errorf(logPrefix+format, args...)
}

func (l *prefixLogger) Fatalf(format string, args ...interface{}) {
	l.target().Fatalf(logPrefix+format, args...)
}

func (l *prefixLogger) Panicf(format string, args ...interface{}) {
	l.target().Panicf(logPrefix+format, args...)
}

var (
	root = &prefixLogger{log: new(StubLogger)}

	// Log is the logger used throughout wizlight.  Replace its target with
	// SetLogger.
	Log Logger = root
)

// SetLogger routes library logs to logger.  A nil logger restores the stub.
func SetLogger(logger Logger) {
	if logger == nil {
		logger = new(StubLogger)
	}
	root.set(logger)
}
