package ics

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"packlunch/internal/config"
	"packlunch/internal/model"
)

const (
	minYear = 2000
	maxYear = 2100

	uidPrefix  = "pack-lunch-"
	dateLayout = "20060102"
)

// BuildResult separates the events that were built from the days that were
// skipped. A non-empty Warnings never affects Events.
type BuildResult struct {
	Events   []model.CalendarEvent
	Warnings []model.InvalidDateWarning
}

// Build validates req and constructs one all-day event per distinct valid
// day, in ascending order.
//
// Month, year and an empty day list are checked first and reported as
// *model.ConfigurationError before anything is built. Days that do not
// exist in the month are skipped and reported in BuildResult.Warnings.
func Build(req model.EventRequest, cfg *config.Config) (BuildResult, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := validate(req); err != nil {
		return BuildResult{}, err
	}

	days := slices.Clone(req.Days)
	slices.Sort(days)
	days = slices.Compact(days)

	month := time.Month(req.Month)
	maxDay := daysIn(req.Year, month)

	var res BuildResult
	for _, day := range days {
		date := time.Date(req.Year, month, day, 0, 0, 0, 0, time.UTC)
		if date.Year() != req.Year || date.Month() != month || date.Day() != day {
			res.Warnings = append(res.Warnings, model.InvalidDateWarning{
				Month:  req.Month,
				Day:    day,
				Year:   req.Year,
				MaxDay: maxDay,
			})
			continue
		}
		res.Events = append(res.Events, newEvent(date, req, cfg.UIDNamespace))
	}
	return res, nil
}

// UID returns the stable identifier of the reminder for date.
func UID(date time.Time, namespace string) string {
	return uidPrefix + date.Format(dateLayout) + "@" + namespace
}

// NewDocument wraps events with the calendar-level metadata for req.
func NewDocument(req model.EventRequest, events []model.CalendarEvent, cfg *config.Config) model.CalendarDocument {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return model.CalendarDocument{
		ProductID: cfg.ProductID,
		Name:      calendarName(req.SubjectName),
		Timezone:  req.TimezoneName,
		Events:    events,
	}
}

func newEvent(date time.Time, req model.EventRequest, namespace string) model.CalendarEvent {
	desc := fmt.Sprintf("No lunch ordered today. Pack lunch for %s at %s.", req.SubjectName, req.LocationText)
	return model.CalendarEvent{
		Date:        date,
		UID:         UID(date, namespace),
		Summary:     calendarName(req.SubjectName),
		Description: desc,
	}
}

func calendarName(subject string) string {
	return fmt.Sprintf("Pack %s's Lunch", subject)
}

func validate(req model.EventRequest) error {
	if req.Month < 1 || req.Month > 12 {
		return &model.ConfigurationError{
			Field:      "month",
			Value:      strconv.Itoa(req.Month),
			Constraint: "must be 1-12",
		}
	}
	if req.Year < minYear || req.Year > maxYear {
		return &model.ConfigurationError{
			Field:      "year",
			Value:      strconv.Itoa(req.Year),
			Constraint: fmt.Sprintf("must be %d-%d", minYear, maxYear),
		}
	}
	if len(req.Days) == 0 {
		return &model.ConfigurationError{
			Field:      "days",
			Constraint: "no skipped days provided; at least one day number is required",
		}
	}
	return nil
}

// daysIn returns the number of days in month of year.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
