package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/wizlan/wizlight/common"
)

// Logger records every message it receives.  args are passed to Called as a
// single slice, so expectations match on format and mock.Anything.
type Logger struct {
	mock.Mock
}

func (_m *Logger) Debugf(format string, args ...interface{}) {
	_m.Called(format, args)
}
func (_m *Logger) Infof(format string, args ...interface{}) {
	_m.Called(format, args)
}
func (_m *Logger) Warnf(format string, args ...interface{}) {
	_m.Called(format, args)
}
func (_m *Logger) Errorf(format string, args ...interface{}) {
	_m.Called(format, args)
}
func (_m *Logger) Fatalf(format string, args ...interface{}) {
	_m.Called(format, args)
}
func (_m *Logger) Panicf(format string, args ...interface{}) {
	_m.Called(format, args)
}

var _ common.Logger = (*Logger)(nil)
