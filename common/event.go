package common

// EventUpdatePower is emitted by a Client when the bulb accepted a power
// change
type EventUpdatePower struct {
	Power bool
}

// EventUpdateColor is emitted by a Client when the bulb accepted a color
// change
type EventUpdateColor struct {
	Color   Color
	Dimming uint32
}
