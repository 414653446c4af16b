package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/wizlan/wizlight/protocol/message"
)

var (
	cmdConfig = &cobra.Command{
		Use:              `config`,
		Short:            `print the bulb user configuration`,
		PersistentPreRun: setupPreRun,
		PostRun:          closeClient,
		Run: func(c *cobra.Command, args []string) {
			cfg, err := client.GetConfig()
			printConfig(cfg, err)
		},
	}

	// pilot queries the user configuration, like config
	cmdPilot = &cobra.Command{
		Use:              `pilot`,
		Short:            `print the bulb user configuration (alias of config)`,
		PersistentPreRun: setupPreRun,
		PostRun:          closeClient,
		Run: func(c *cobra.Command, args []string) {
			cfg, err := client.GetPilot()
			printConfig(cfg, err)
		},
	}
)

func printConfig(cfg message.UserConfig, err error) {
	if err != nil {
		fail(err, `Failed getting configuration`)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent(``, `  `)
	if err = enc.Encode(cfg); err != nil {
		fail(err, `Failed printing configuration`)
	}
}
