package common

// Bulb represents a single controllable light
type Bulb interface {
	// SetTurnedOn sets the power state of the bulb, true for on, false for off
	SetTurnedOn(on bool) error
	// SetColor changes the color and dimming level of the bulb
	SetColor(color Color, dimming uint32) error
}
