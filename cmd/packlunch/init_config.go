package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"packlunch/internal/config"
)

// initConfigCommand writes a configuration file holding the default values.
func initConfigCommand(stdout io.Writer) cli.Command {
	return cli.Command{
		Name:      "init-config",
		Usage:     "Write a YAML config file with the default values",
		ArgsUsage: "PATH",
		Flags: []cli.Flag{
			cli.BoolFlag{Name: "force", Usage: "Overwrite an existing file"},
		},
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return fmt.Errorf("init-config: a path is required")
			}
			if _, err := os.Stat(path); err == nil && !c.Bool("force") {
				return fmt.Errorf("init-config: %s already exists (use --force to overwrite)", path)
			}
			if err := config.DefaultConfig().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "wrote %s\n", path)
			return nil
		},
	}
}
