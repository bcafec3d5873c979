package main

import (
	"fmt"
	"io"
	"os"

	"cloudeng.io/errors"
	"github.com/urfave/cli"

	"packlunch/internal/ics"
	appLog "packlunch/internal/log"
)

// inspectCommand lists the reminders in previously generated calendar files.
func inspectCommand(stdout io.Writer) cli.Command {
	return cli.Command{
		Name:      "inspect",
		Usage:     "List the pack-lunch days in one or more .ics files",
		ArgsUsage: "FILE...",
		Action: func(c *cli.Context) error {
			if !c.Args().Present() {
				return fmt.Errorf("inspect: at least one file is required")
			}
			errs := &errors.M{}
			for _, path := range c.Args() {
				errs.Append(inspectFile(stdout, path))
			}
			return errs.Err()
		},
	}
}

func inspectFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := ics.Parse(f)
	if err != nil {
		appLog.Error("calendar parse failed", err, "path", path)
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Fprintf(w, "%s: %s (%s), %d events\n", path, doc.Name, doc.Timezone, len(doc.Events))
	for _, ev := range doc.Events {
		fmt.Fprintf(w, "  %s  %s  %s\n", ev.Date.Format("2006-01-02"), ev.Summary, ev.UID)
	}
	return nil
}
