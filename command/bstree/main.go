// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/fault"
)

type metadata struct {
	file      string
	config    *Configuration
	variables map[string]string
	logging   bool
	verbose   bool
	e         io.Writer
	w         io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "bstree"
	app.Usage = "build, balance and display binary search trees"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "load",
			Usage:     "insert the configured entries and print the tree",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "table, t",
					Usage: " print entries as a table",
				},
			},
			Action: runLoad,
		},
		{
			Name:      "draw",
			Usage:     "insert the configured entries and draw the tree shape",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "data, d",
					Usage: " include values in the drawing",
				},
			},
			Action: runDraw,
		},
		{
			Name:      "random",
			Usage:     "insert shuffled keys and compare height before and after balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 1000,
					Usage: " number of keys to insert `COUNT`",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 1,
					Usage: " random number generator `SEED`",
				},
			},
			Action: runRandom,
		},
		{
			Name:      "version",
			Usage:     "display bstree version",
			ArgsUsage: " ",
			Action:    runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		m := &metadata{
			file:    c.GlobalString("config-file"),
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "" == m.file {
			return nil
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", m.file)
		}

		m.variables = map[string]string{
			"command": command,
		}
		configuration, err := getConfiguration(m.file, m.variables)
		if nil != err {
			return err
		}
		m.config = configuration

		if err := logger.Initialise(configuration.Logging); nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			logger.Finalise()
			return err
		}
		m.logging = true

		log := logger.New("main")
		log.Info("starting…")
		log.Infof("version: %s", version)
		log.Debugf("configuration: %+v", configuration)

		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || !m.logging {
			return nil
		}
		logger.New("main").Info("finished")
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		exitwithstatus.Exit(1)
	}
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
