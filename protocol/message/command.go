package message

import "encoding/json"

// Command is a request sent to a bulb.  It is implemented by SetPilot,
// GetPilot and GetUserConfig only.
type Command interface {
	Method() Method
	params() interface{}
}

// SetPilot asks the bulb to apply a Pilot
type SetPilot struct {
	Pilot Pilot
}

func (SetPilot) Method() Method        { return MethodSetPilot }
func (c SetPilot) params() interface{} { return c.Pilot }

// GetPilot asks the bulb for its current Pilot
type GetPilot struct {
	Pilot Pilot
}

func (GetPilot) Method() Method        { return MethodGetPilot }
func (c GetPilot) params() interface{} { return c.Pilot }

// GetUserConfig asks the bulb for its UserConfig
type GetUserConfig struct{}

func (GetUserConfig) Method() Method      { return MethodGetUserConfig }
func (GetUserConfig) params() interface{} { return struct{}{} }

type envelope struct {
	Method Method      `json:"method"`
	Params interface{} `json:"params"`
}

// Encode returns the datagram payload for cmd
func Encode(cmd Command) ([]byte, error) {
	return json.Marshal(envelope{Method: cmd.Method(), Params: cmd.params()})
}
