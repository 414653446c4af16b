package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wizlan/wizlight/common"
	"github.com/wizlan/wizlight/party"
)

var (
	flagPartyInterval = party.DefaultInterval
	flagPartyStep     float64
	flagPartyDimming  uint32

	cmdParty = &cobra.Command{
		Use:              `party`,
		Short:            `activate party mode, cycling hues until interrupted`,
		PersistentPreRun: setupPreRun,
		PostRun:          closeClient,
		Run:              runParty,
	}
)

func init() {
	cmdParty.Flags().DurationVarP(&flagPartyInterval, `interval`, `i`, party.DefaultInterval, `pause between colors, 0 uses the default`)
	cmdParty.Flags().Float64VarP(&flagPartyStep, `step`, `s`, party.DefaultStep, `hue rotation per color, in degrees`)
	cmdParty.Flags().Uint32VarP(&flagPartyDimming, `dimming`, `d`, party.DefaultDimming, `dimming level, 0 is sent as is`)
}

func runParty(c *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sub, err := client.NewSubscription()
	if err != nil {
		fail(err, `Failed subscribing to bulb events`)
	}
	go logEvents(sub)

	// Closing the client interrupts a call blocked waiting for the bulb
	go func() {
		<-ctx.Done()
		closeClient(c, args)
	}()

	err = party.Run(ctx, client, party.Options{
		Interval: flagPartyInterval,
		Step:     flagPartyStep,
		Dimming:  flagPartyDimming,
	})
	if err != nil {
		fail(err, `Party stopped`)
	}
	logger.Infoln(`Party over`)
}

func logEvents(sub *common.Subscription) {
	for {
		select {
		case <-sub.Done():
			return
		case evt := <-sub.Events():
			switch e := evt.(type) {
			case common.EventUpdatePower:
				logger.WithField(`on`, e.Power).Debugln(`Power changed`)
			case common.EventUpdateColor:
				logger.WithFields(logrus.Fields{
					`color`:   e.Color,
					`dimming`: e.Dimming,
				}).Debugln(`Color changed`)
			}
		}
	}
}
