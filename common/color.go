package common

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is the 8-bit RGB color sent to a bulb.  Its fields marshal as the
// `r`, `g` and `b` keys of a pilot.
type Color struct {
	Red   uint8 `json:"r"`
	Green uint8 `json:"g"`
	Blue  uint8 `json:"b"`
}

// NewColorRGB converts channels in the range [0,1] to a Color, scaling by 255
// and truncating toward zero, so 0.5 becomes 127.  Values outside the range
// saturate.
func NewColorRGB(r, g, b float64) Color {
	return Color{
		Red:   channel(r),
		Green: channel(g),
		Blue:  channel(b),
	}
}

// NewColorHSV converts hue in degrees, saturation and value in [0,1] to a
// Color.  The hue wraps around the color wheel.
func NewColorHSV(hue, saturation, value float64) Color {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	c := colorful.Hsv(hue, saturation, value)
	return NewColorRGB(c.R, c.G, c.B)
}

func channel(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 1:
		return math.MaxUint8
	}
	return uint8(v * math.MaxUint8)
}
