package main

import (
	"github.com/spf13/cobra"
)

var (
	cmdTurnOn = &cobra.Command{
		Use:              `turn-on`,
		Short:            `turn the bulb on`,
		PersistentPreRun: setupPreRun,
		PostRun:          closeClient,
		Run: func(c *cobra.Command, args []string) {
			setPower(true)
		},
	}

	cmdTurnOff = &cobra.Command{
		Use:              `turn-off`,
		Short:            `turn the bulb off`,
		PersistentPreRun: setupPreRun,
		PostRun:          closeClient,
		Run: func(c *cobra.Command, args []string) {
			setPower(false)
		},
	}
)

// setupPreRun replaces the root PersistentPreRun, so it has to configure
// logging as well as the client
func setupPreRun(c *cobra.Command, args []string) {
	setLogger()
	setupClient(c, args)
}

func setPower(on bool) {
	if err := client.SetTurnedOn(on); err != nil {
		fail(err, `Failed setting power`)
	}
	logger.WithField(`on`, on).Debugln(`Set power`)
}
