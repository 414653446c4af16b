// Package message implements the JSON messages exchanged with a bulb.
//
// Every request is a single JSON object carrying a method tag and a params
// payload, and every reply echoes the method tag next to a result payload:
//
//	-> {"method":"setPilot","params":{"r":255,"g":0,"b":0,"dimming":100}}
//	<- {"method":"setPilot","env":"pro","result":{"success":true}}
package message

import (
	"errors"
	"fmt"

	"github.com/wizlan/wizlight/common"
)

// Method is the tag identifying a command or response variant on the wire
type Method string

const (
	MethodSetPilot      Method = `setPilot`
	MethodGetPilot      Method = `getPilot`
	MethodGetUserConfig Method = `getUserConfig`
)

func (m Method) String() string {
	return string(m)
}

// known reports whether m is the tag of a command this package can send
func (m Method) known() bool {
	switch m {
	case MethodSetPilot, MethodGetPilot, MethodGetUserConfig:
		return true
	}
	return false
}

var (
	// ErrUnknownMethod is returned when decoding a reply whose method tag has
	// no known result shape
	ErrUnknownMethod = fmt.Errorf("%w: unknown method", common.ErrParse)
	// ErrMissingField is returned when decoding a reply that lacks a field
	// its shape requires
	ErrMissingField = fmt.Errorf("%w: missing field", common.ErrParse)
	// ErrInvalidRange is returned when decoding a range that does not hold
	// exactly two values
	ErrInvalidRange = fmt.Errorf("%w: invalid range", common.ErrParse)
	// ErrInvalidUTF8 is returned when a reply is not valid UTF-8 text
	ErrInvalidUTF8 = fmt.Errorf("%w: invalid utf-8", common.ErrParse)
)

func parseError(err error) error {
	if errors.Is(err, common.ErrParse) {
		return err
	}
	return fmt.Errorf("%w: %v", common.ErrParse, err)
}
