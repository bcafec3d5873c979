package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/urfave/cli"

	"packlunch/internal/config"
	"packlunch/internal/ics"
	appLog "packlunch/internal/log"
	"packlunch/internal/model"
	"packlunch/internal/output"
	"packlunch/internal/request"
)

var generateFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "month, m",
		Usage: "Month number (1-12) or name (required)",
	},
	cli.StringFlag{
		Name:  "year, y",
		Usage: "Year, e.g. 2025 (required)",
	},
	cli.StringFlag{
		Name:  "skipped-days, days, d",
		Usage: "Comma-separated list of day numbers, e.g. '3,9,16,21,31' (required)",
	},
	cli.StringFlag{
		Name:  "output, o",
		Usage: "Output filename, '-' for stdout (default: pack-lunch-<month>-<year>.ics)",
	},
	cli.StringFlag{
		Name:  "child-name, subject",
		Usage: "Child's name (default: Child)",
	},
	cli.StringFlag{
		Name:  "location",
		Usage: "School/classroom location (default: School/Preschool)",
	},
	cli.StringFlag{
		Name:  "timezone",
		Usage: "Timezone name written to the calendar (default: America/New_York)",
	},
	cli.StringFlag{
		Name:  "config, c",
		Usage: "Path to a YAML file with default values",
	},
	cli.BoolFlag{
		Name:  "allow-empty",
		Usage: "Write the calendar even when none of the days is a valid date",
	},
	cli.BoolFlag{
		Name:  "verbose",
		Usage: "Enable debug logging",
	},
}

// generate runs the whole pipeline for one invocation: normalize the flags,
// build the events, serialize and write the document once.
func generate(c *cli.Context, stdout, stderr io.Writer) error {
	if c.Bool("verbose") {
		appLog.SetLevel(appLog.LevelDebug)
	}

	if err := checkRequired(c); err != nil {
		return err
	}

	raw := request.Raw{
		Month:       c.String("month"),
		Year:        c.String("year"),
		Days:        c.String("skipped-days"),
		Output:      c.String("output"),
		SubjectName: c.String("child-name"),
		Location:    c.String("location"),
		Timezone:    c.String("timezone"),
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	norm, err := request.Normalize(raw, cfg)
	if err != nil {
		return err
	}
	req := norm.Request

	appLog.Debug("effective request",
		"month", req.Month,
		"year", req.Year,
		"days", req.Days,
		"subject", req.SubjectName,
		"location", req.LocationText,
		"timezone", req.TimezoneName,
		"output", norm.OutputPath,
	)

	res, err := ics.Build(req, cfg)
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		appLog.Warn("skipping invalid date", "month", w.Month, "day", w.Day, "year", w.Year, "reason", w.Error())
	}

	if len(res.Events) == 0 && !c.Bool("allow-empty") {
		return &model.ConfigurationError{
			Field:      "days",
			Value:      raw.Days,
			Constraint: fmt.Sprintf("none is a valid date in %s %d; use --allow-empty to write an empty calendar", time.Month(req.Month), req.Year),
		}
	}

	doc := ics.NewDocument(req, res.Events, cfg)
	if err := output.Write(norm.OutputPath, []byte(ics.Serialize(doc)), stdout); err != nil {
		return err
	}

	// Keep stdout clean when it carries the calendar itself.
	summary := stdout
	if norm.OutputPath == output.Stdout {
		summary = stderr
	}
	printSummary(summary, norm.OutputPath, req, len(res.Events))
	return nil
}

func checkRequired(c *cli.Context) error {
	for _, name := range []string{"month", "year", "skipped-days"} {
		if !c.IsSet(name) {
			return &model.InvalidInputError{
				Field:  name,
				Value:  "",
				Reason: fmt.Sprintf("missing required flag --%s", name),
			}
		}
	}
	return nil
}

func printSummary(w io.Writer, path string, req model.EventRequest, events int) {
	days := slices.Clone(req.Days)
	slices.Sort(days)
	days = slices.Compact(days)
	list := make([]string, len(days))
	for i, d := range days {
		list[i] = fmt.Sprint(d)
	}

	fmt.Fprintf(w, "✓ Generated %s\n", path)
	fmt.Fprintf(w, "  Events created: %d\n", events)
	fmt.Fprintf(w, "  Month: %d/%d\n", req.Month, req.Year)
	fmt.Fprintf(w, "  Skipped days: %s\n", strings.Join(list, ", "))
}
