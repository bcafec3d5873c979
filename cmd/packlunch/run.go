package main

import (
	"context"
	"io"

	"github.com/urfave/cli"

	appLog "packlunch/internal/log"
)

const appName = "packlunch"

// run is main without the process: it takes the arguments and output
// streams and returns an error instead of exiting, so it can be tested.
func run(_ context.Context, args []string, stdout, stderr io.Writer) error {
	appLog.SetOutput(stderr)
	return newApp(stdout, stderr).Run(args)
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Usage = "Generate an ICS calendar of days when lunch needs to be packed"
	app.UsageText = appName + ` -m 7 -y 2025 -d 3,9,16,21,31
   ` + appName + ` --month 11 --year 2025 --skipped-days 4,13,17,24 --output nov-lunch.ics
   ` + appName + ` -m aug -y 2025 -d 5,12,19,26 --child-name "Sam" --location "School"`
	app.Version = version
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = generateFlags
	app.Action = func(c *cli.Context) error {
		return generate(c, stdout, stderr)
	}
	app.Commands = []cli.Command{
		{
			Name:   "generate",
			Usage:  "Write the calendar file (default when no command is given)",
			Flags:  generateFlags,
			Action: func(c *cli.Context) error { return generate(c, stdout, stderr) },
		},
		inspectCommand(stdout),
		initConfigCommand(stdout),
	}
	return app
}
