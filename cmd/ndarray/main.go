// Package main provides the ndarray command line tool.
package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"
)

const version = "v0.1.0-dev"

var (
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	opFlag = cli.StringFlag{
		Name:  "op",
		Value: "add",
		Usage: "Elementwise operation (add, sub, mul, div, min, max, pow)",
	}
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "ndarray"
	app.Usage = "accessor resolution and broadcasting utilities"
	app.Version = version
	app.Commands = []cli.Command{
		{
			Action:    showVersion,
			Name:      "version",
			Usage:     "Show version",
			ArgsUsage: " ",
		},
		{
			Action:    listDataTypes,
			Name:      "dtypes",
			Usage:     "List supported data type tags",
			ArgsUsage: " ",
		},
		{
			Action:      broadcastShapes,
			Name:        "broadcast",
			Usage:       "Compute the broadcast shape of equal-rank shapes",
			ArgsUsage:   "<shape> <shape> ...",
			Description: "Shapes are comma separated sizes, e.g. 2,1,3.",
		},
		{
			Action:    evalBinary,
			Name:      "eval",
			Usage:     "Apply an elementwise operation to two broadcast arrays",
			ArgsUsage: "<json array> <json array>",
			Flags:     []cli.Flag{opFlag, configFileFlag},
			Description: `Arrays are nested JSON lists of numbers. Lower-rank inputs are
padded with leading size-1 dimensions before broadcasting.`,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
