// Package request turns raw command-line tokens into a model.EventRequest.
package request

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"

	"packlunch/internal/config"
	"packlunch/internal/model"
)

// Raw holds the unparsed tokens of one invocation. Empty display strings
// fall back to the configuration.
type Raw struct {
	Month string
	Year  string
	Days  string

	Output      string
	SubjectName string
	Location    string
	Timezone    string
}

// Normalized is the outcome of Normalize: the request plus the file it
// should be written to.
type Normalized struct {
	Request    model.EventRequest
	OutputPath string
}

// Normalize parses raw into an EventRequest. A token that is not a number
// (or, for the month, a month name) fails the whole run with an
// *model.InvalidInputError. Range checks are left to the builder.
func Normalize(raw Raw, cfg *config.Config) (Normalized, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	month, err := parseMonth(raw.Month)
	if err != nil {
		return Normalized{}, err
	}

	year, err := strconv.Atoi(strings.TrimSpace(raw.Year))
	if err != nil {
		return Normalized{}, &model.InvalidInputError{
			Field:  "year",
			Value:  raw.Year,
			Reason: "must be an integer (e.g. 2025)",
		}
	}

	days, err := ParseDays(raw.Days)
	if err != nil {
		return Normalized{}, err
	}

	req := model.EventRequest{
		Month:        month,
		Year:         year,
		Days:         days,
		SubjectName:  firstNonEmpty(raw.SubjectName, cfg.SubjectName),
		LocationText: firstNonEmpty(raw.Location, cfg.Location),
		TimezoneName: firstNonEmpty(raw.Timezone, cfg.Timezone),
	}

	out := raw.Output
	if out == "" {
		out = DefaultOutputName(month, year)
		if out != "" && cfg.OutputDir != "" {
			out = filepath.Join(cfg.OutputDir, out)
		}
	}

	return Normalized{Request: req, OutputPath: out}, nil
}

// ParseDays splits a comma-separated list of day numbers. Surrounding
// whitespace is ignored and an all-blank list yields no days.
func ParseDays(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		tok := strings.TrimSpace(p)
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &model.InvalidInputError{
				Field:  "days",
				Value:  s,
				Reason: fmt.Sprintf("token %q is not an integer; expected comma-separated day numbers such as 3,9,16", tok),
			}
		}
		days = append(days, n)
	}
	return days, nil
}

// DefaultOutputName returns pack-lunch-<month>-<year>.ics, or "" when month
// is not 1-12.
func DefaultOutputName(month, year int) string {
	if month < 1 || month > 12 {
		return ""
	}
	name := strings.ToLower(time.Month(month).String())
	return fmt.Sprintf("pack-lunch-%s-%d.ics", name, year)
}

// minMonthNameLen is the shortest month-name prefix accepted; every
// three-letter prefix names exactly one month.
const minMonthNameLen = 3

func parseMonth(tok string) (int, error) {
	tok = strings.TrimSpace(tok)
	if n, err := strconv.Atoi(tok); err == nil {
		return n, nil
	}
	if len(tok) >= minMonthNameLen {
		if m, err := datetime.ParseMonth(tok); err == nil {
			return int(m), nil
		}
	}
	return 0, &model.InvalidInputError{
		Field:  "month",
		Value:  tok,
		Reason: "must be a number 1-12 or a month name of at least 3 letters (e.g. jul, July)",
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
