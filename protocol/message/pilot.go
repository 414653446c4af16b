package message

import "github.com/wizlan/wizlight/common"

// Pilot is the desired state of a bulb.  Every field is optional, and a nil
// field is left out of the encoded payload entirely rather than sent as null
// or zero.  The color channels are flattened into the pilot object.
type Pilot struct {
	*common.Color
	Dimming *uint32 `json:"dimming,omitempty"`
	State   *bool   `json:"state,omitempty"`
}

// PowerPilot returns a Pilot that only sets the power state
func PowerPilot(on bool) Pilot {
	return Pilot{State: &on}
}

// ColorPilot returns a Pilot that only sets the color and dimming level
func ColorPilot(color common.Color, dimming uint32) Pilot {
	return Pilot{Color: &color, Dimming: &dimming}
}
