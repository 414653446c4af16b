package message

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// Result is the method-specific payload of a Response.  It is implemented by
// SetPilotResult and UserConfigResult only.
type Result interface {
	Method() Method
	isResult()
}

// SetPilotResult confirms a SetPilot command
type SetPilotResult struct {
	Success bool
}

func (SetPilotResult) Method() Method { return MethodSetPilot }
func (SetPilotResult) isResult()      {}

// UserConfigResult answers a GetUserConfig command
type UserConfigResult struct {
	UserConfig
}

func (UserConfigResult) Method() Method { return MethodGetUserConfig }
func (UserConfigResult) isResult()      {}

// RemoteError is reported by a bulb that could not process a command
type RemoteError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("bulb error %d: %s", e.Code, e.Message)
}

// Response is a decoded reply.  Exactly one of Result and Error is set.
type Response struct {
	Method Method
	Env    string
	Result Result
	Error  *RemoteError
}

type rawResponse struct {
	Method *Method         `json:"method"`
	Env    *string         `json:"env"`
	Result json.RawMessage `json:"result"`
	Error  *RemoteError    `json:"error"`
}

type setPilotResult struct {
	Success *bool `json:"success"`
}

// Decode parses a reply datagram.  Every failure wraps common.ErrParse.
func Decode(data []byte) (*Response, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}

	raw := rawResponse{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, parseError(err)
	}
	if raw.Method == nil {
		return nil, fmt.Errorf("%w: method", ErrMissingField)
	}
	resp := &Response{Method: *raw.Method}

	if raw.Error != nil {
		if !resp.Method.known() {
			return nil, fmt.Errorf("%w %q", ErrUnknownMethod, resp.Method)
		}
		if raw.Env != nil {
			resp.Env = *raw.Env
		}
		resp.Error = raw.Error
		return resp, nil
	}

	if raw.Env == nil {
		return nil, fmt.Errorf("%w: env", ErrMissingField)
	}
	resp.Env = *raw.Env
	if len(raw.Result) == 0 || string(raw.Result) == `null` {
		return nil, fmt.Errorf("%w: result", ErrMissingField)
	}

	switch resp.Method {
	case MethodSetPilot:
		r := setPilotResult{}
		if err := json.Unmarshal(raw.Result, &r); err != nil {
			return nil, parseError(err)
		}
		if r.Success == nil {
			return nil, fmt.Errorf("%w: success", ErrMissingField)
		}
		resp.Result = SetPilotResult{Success: *r.Success}
	case MethodGetUserConfig:
		cfg, err := decodeUserConfig(raw.Result)
		if err != nil {
			return nil, err
		}
		resp.Result = UserConfigResult{UserConfig: cfg}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownMethod, resp.Method)
	}

	return resp, nil
}
