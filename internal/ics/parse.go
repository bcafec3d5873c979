package ics

import (
	"errors"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	appLog "packlunch/internal/log"
	"packlunch/internal/model"
)

// Parse reads an iCalendar document and returns its all-day events as
// CalendarEvents, in document order.
//
//   - VEVENTs without UID or with a DTSTART that is not a plain date are
//     logged and skipped; parsing continues with the next one.
//   - The calendar-level PRODID, X-WR-CALNAME and X-WR-TIMEZONE are
//     returned in the document metadata.
func Parse(r io.Reader) (model.CalendarDocument, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return model.CalendarDocument{}, err
	}

	doc := model.CalendarDocument{Events: make([]model.CalendarEvent, 0)}
	for _, p := range cal.CalendarProperties {
		switch p.IANAToken {
		case string(ical.PropertyProductId):
			doc.ProductID = p.Value
		case string(ical.PropertyXWRCalName):
			doc.Name = p.Value
		case string(ical.PropertyXWRTimezone):
			doc.Timezone = p.Value
		}
	}

	for _, ve := range cal.Events() {
		ev, perr := parseVEvent(ve)
		if perr != nil {
			// Log and skip this event, but keep parsing others.
			appLog.Warn("vevent skipped", "err", perr, "uid", ev.UID)
			continue
		}
		doc.Events = append(doc.Events, ev)
	}

	return doc, nil
}

func parseVEvent(ve *ical.VEvent) (model.CalendarEvent, error) {
	var out model.CalendarEvent

	uidProp := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uidProp == nil || uidProp.Value == "" {
		return out, errors.New("missing UID")
	}
	out.UID = uidProp.Value

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.Summary = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		out.Description = p.Value
	}

	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil {
		return out, errors.New("missing DTSTART")
	}
	// All-day values are YYYYMMDD with no time part.
	val := strings.TrimSpace(dtStart.Value)
	if strings.Contains(val, "T") {
		return out, errors.New("DTSTART is not an all-day date: " + val)
	}
	date, err := time.Parse(dateLayout, val)
	if err != nil {
		return out, err
	}
	out.Date = date

	return out, nil
}
