// Command wizlight controls a WiZ bulb over the LAN
package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/wizlan/wizlight"
	"github.com/wizlan/wizlight/common"
)

var (
	client *wizlight.Client

	flagHost     string
	flagTimeout  time.Duration
	flagLogLevel string

	logger = logrus.New()
	app    = &cobra.Command{
		Use:     `wizlight`,
		Short:   `Handles a WiZ light bulb from the console`,
		Version: wizlight.VERSION,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			setLogger()
		},
	}

	cmdGenerateBashComp = &cobra.Command{
		Use:   `bashcomp <filename>`,
		Short: `generate bash completion at <file>`,
		Run:   generateBashComp,
	}

	cmdGenerateDocs = &cobra.Command{
		Use:   `docs <path>`,
		Short: `generate markdown documentation at <path>`,
		Run:   generateDocs,
	}
)

func init() {
	wizlight.SetLogger(logger)

	app.PersistentFlags().StringVarP(&flagHost, `host`, `H`, common.DefaultHost, `bulb address, host:port`)
	app.PersistentFlags().DurationVarP(&flagTimeout, `timeout`, `t`, common.DefaultTimeout, `timeout waiting for the bulb to reply, 0 waits forever`)
	app.PersistentFlags().StringVarP(&flagLogLevel, `log-level`, `L`, `info`, `log level, one of: [debug,info,warn,error]`)

	app.AddCommand(cmdTurnOn)
	app.AddCommand(cmdTurnOff)
	app.AddCommand(cmdColor)
	app.AddCommand(cmdParty)
	app.AddCommand(cmdConfig)
	app.AddCommand(cmdPilot)
	app.AddCommand(cmdGenerateBashComp)
	app.AddCommand(cmdGenerateDocs)
}

func main() {
	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupClient(c *cobra.Command, args []string) {
	var err error

	client, err = wizlight.Dial(flagHost)
	if err != nil {
		logger.WithFields(logrus.Fields{
			`host`:  flagHost,
			`error`: err,
		}).Fatalln(`Failed initializing client`)
	}
	client.SetTimeout(flagTimeout)
}

func closeClient(c *cobra.Command, args []string) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil && err != common.ErrClosed {
		logger.WithField(`error`, err).Errorln(`Failed closing client`)
	}
}

func generateBashComp(c *cobra.Command, args []string) {
	if len(args) != 1 {
		c.Usage()
		fmt.Println()
		logger.Fatalln(`Missing filename`)
	}

	buf := new(bytes.Buffer)
	f, err := os.Create(args[0])
	if err != nil {
		logger.WithFields(logrus.Fields{
			`filename`: args[0],
			`error`:    err,
		}).Fatalln(`Could not open file`)
	}
	defer f.Close()
	if err = app.GenBashCompletion(buf); err != nil {
		logger.WithField(`error`, err).Fatalln(`Could not generate completion`)
	}
	if _, err = buf.WriteTo(f); err != nil {
		logger.WithField(`error`, err).Fatalln(`Could not write completion`)
	}
}

func generateDocs(c *cobra.Command, args []string) {
	if len(args) != 1 {
		c.Usage()
		fmt.Println()
		logger.Fatalln(`Missing output path`)
	}

	path := args[0]
	if path[len(path)-1] != os.PathSeparator {
		path += string(os.PathSeparator)
	}
	if err := doc.GenMarkdownTree(app, path); err != nil {
		logger.WithFields(logrus.Fields{
			`path`:  path,
			`error`: err,
		}).Fatalln(`Could not generate docs`)
	}
}

func setLogger() {
	switch flagLogLevel {
	case `debug`:
		logger.Level = logrus.DebugLevel
	case `info`:
		logger.Level = logrus.InfoLevel
	case `warn`:
		logger.Level = logrus.WarnLevel
	case `error`:
		logger.Level = logrus.ErrorLevel
	default:
		logger.Level = logrus.InfoLevel
	}
}

// fail logs err with its kind and exits non-zero
func fail(err error, msg string) {
	closeClient(nil, nil)
	logger.WithFields(logrus.Fields{
		`host`:  flagHost,
		`kind`:  common.KindOf(err),
		`error`: err,
	}).Fatalln(msg)
}
