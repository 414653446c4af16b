package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/wizlan/wizlight/common"
)

// Bulb is a mock type for the common.Bulb type
type Bulb struct {
	mock.Mock
}

// SetTurnedOn provides a mock function with given fields: on
func (_m *Bulb) SetTurnedOn(on bool) error {
	ret := _m.Called(on)

	var r0 error
	if rf, ok := ret.Get(0).(func(bool) error); ok {
		r0 = rf(on)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SetColor provides a mock function with given fields: color, dimming
func (_m *Bulb) SetColor(color common.Color, dimming uint32) error {
	ret := _m.Called(color, dimming)

	var r0 error
	if rf, ok := ret.Get(0).(func(common.Color, uint32) error); ok {
		r0 = rf(color, dimming)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

var _ common.Bulb = (*Bulb)(nil)
