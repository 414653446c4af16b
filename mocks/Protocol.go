package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/wizlan/wizlight/protocol"
	"github.com/wizlan/wizlight/protocol/message"
)

// Protocol is a mock type for the protocol.Protocol type
type Protocol struct {
	mock.Mock
}

// RoundTrip provides a mock function with given fields: cmd
func (_m *Protocol) RoundTrip(cmd message.Command) (*message.Response, error) {
	ret := _m.Called(cmd)

	var r0 *message.Response
	if rf, ok := ret.Get(0).(func(message.Command) *message.Response); ok {
		r0 = rf(cmd)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*message.Response)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(message.Command) error); ok {
		r1 = rf(cmd)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Close provides a mock function with given fields:
func (_m *Protocol) Close() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// TimeoutProtocol is a Protocol that also supports reply timeouts
type TimeoutProtocol struct {
	Protocol
}

// SetTimeout provides a mock function with given fields: timeout
func (_m *TimeoutProtocol) SetTimeout(timeout time.Duration) {
	_m.Called(timeout)
}

// GetTimeout provides a mock function with given fields:
func (_m *TimeoutProtocol) GetTimeout() time.Duration {
	ret := _m.Called()

	var r0 time.Duration
	if rf, ok := ret.Get(0).(func() time.Duration); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(time.Duration)
	}

	return r0
}

var (
	_ protocol.Protocol  = (*Protocol)(nil)
	_ protocol.Timeouter = (*TimeoutProtocol)(nil)
)
