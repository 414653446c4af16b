package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wizlan/wizlight/common"
)

var (
	flagRed     float64
	flagGreen   float64
	flagBlue    float64
	flagDimming uint32

	cmdColor = &cobra.Command{
		Use:              `color`,
		Short:            `change the bulb color`,
		Long:             `Change the bulb color.  Channels are in the range [0,1], dimming is usually 0-100.`,
		PersistentPreRun: setupPreRun,
		PostRun:          closeClient,
		Run:              setColor,
	}
)

func init() {
	cmdColor.Flags().Float64VarP(&flagRed, `red`, `r`, 0, `red channel, 0 to 1`)
	cmdColor.Flags().Float64VarP(&flagGreen, `green`, `g`, 0, `green channel, 0 to 1`)
	cmdColor.Flags().Float64VarP(&flagBlue, `blue`, `b`, 0, `blue channel, 0 to 1`)
	cmdColor.Flags().Uint32VarP(&flagDimming, `dimming`, `d`, 0, `dimming level`)
	for _, name := range []string{`red`, `green`, `blue`, `dimming`} {
		_ = cmdColor.MarkFlagRequired(name)
	}
}

func setColor(c *cobra.Command, args []string) {
	color := common.NewColorRGB(flagRed, flagGreen, flagBlue)
	if err := client.SetColor(color, flagDimming); err != nil {
		fail(err, `Failed setting color`)
	}
	logger.WithFields(logrus.Fields{
		`color`:   color,
		`dimming`: flagDimming,
	}).Debugln(`Set color`)
}
