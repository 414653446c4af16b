// Package party rotates a bulb through the color wheel until told to stop.
package party

import (
	"context"
	"math"
	"time"

	"github.com/wizlan/wizlight/common"
)

const (
	// DefaultInterval is the pause between two colors
	DefaultInterval = 250 * time.Millisecond
	// DefaultStep is how far the hue rotates between two colors, in degrees
	DefaultStep = 70.0
	// DefaultDimming is the dimming level sent with every color
	DefaultDimming = 100
)

// Options controls the hue rotation.  Start from DefaultOptions; every field
// is used as given, so a zero Step keeps a single hue and a zero Dimming is
// sent as zero.
type Options struct {
	// Interval is the pause after each color change.  Non-positive values
	// use DefaultInterval.
	Interval time.Duration
	// Step is how far the hue advances each iteration, in degrees
	Step float64
	// Dimming is sent with every color
	Dimming uint32
	// StartHue is the hue of the first color, in degrees
	StartHue float64
}

// DefaultOptions returns the rotation used by party mode: starting at red,
// 70 degrees every 250ms at dimming 100.
func DefaultOptions() Options {
	return Options{
		Interval: DefaultInterval,
		Step:     DefaultStep,
		Dimming:  DefaultDimming,
	}
}

func (o Options) withDefaults() Options {
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	return o
}

// Hue returns the hue used on iteration n, starting from zero.
func (o Options) Hue(n int) float64 {
	return wrap(o.StartHue + o.Step*float64(n))
}

// Run turns bulb on and then cycles its hue at full saturation and value
// until ctx is done.  It returns nil when stopped through ctx, or the first
// error reported by the bulb otherwise.
func Run(ctx context.Context, bulb common.Bulb, opts Options) error {
	opts = opts.withDefaults()

	if err := bulb.SetTurnedOn(true); err != nil {
		return stopped(ctx, err)
	}

	hue := wrap(opts.StartHue)
	for {
		color := common.NewColorHSV(hue, 1, 1)
		common.Log.Debugf("Party hue %.0f: %+v", hue, color)
		if err := bulb.SetColor(color, opts.Dimming); err != nil {
			return stopped(ctx, err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(opts.Interval):
		}

		hue = wrap(hue + opts.Step)
	}
}

// stopped swallows errors caused by the bulb being closed under a cancelled
// context
func stopped(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func wrap(hue float64) float64 {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	return hue
}
