package ics

import (
	"io"

	ical "github.com/arran4/golang-ical"

	"packlunch/internal/model"
)

const (
	transparent = "TRANSPARENT"
	confirmed   = "CONFIRMED"
	sequence    = "0"
)

// Serialize renders doc as an iCalendar document with CRLF line endings.
//
// Line endings are fixed to CRLF regardless of platform, and the output
// contains no timestamps, so the same document always serializes to the
// same bytes. Events are written in the order given.
func Serialize(doc model.CalendarDocument) string {
	return toCalendar(doc).Serialize(ical.WithNewLineWindows)
}

// SerializeTo is Serialize writing to w.
func SerializeTo(w io.Writer, doc model.CalendarDocument) error {
	return toCalendar(doc).SerializeTo(w, ical.WithNewLineWindows)
}

func toCalendar(doc model.CalendarDocument) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetProductId(doc.ProductID)
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ical.MethodPublish)
	cal.SetXWRCalName(doc.Name)
	cal.SetXWRTimezone(doc.Timezone)

	for _, ev := range doc.Events {
		addEvent(cal, ev)
	}
	return cal
}

// addEvent appends one VEVENT. Property order is fixed: UID, DTSTART,
// DTEND, SUMMARY, DESCRIPTION, TRANSP, STATUS, SEQUENCE.
func addEvent(cal *ical.Calendar, ev model.CalendarEvent) {
	ve := cal.AddEvent(ev.UID)
	// Single-day all-day event: DTEND repeats DTSTART.
	ve.SetAllDayStartAt(ev.Date)
	ve.SetAllDayEndAt(ev.Date)
	ve.SetSummary(ev.Summary)
	ve.SetDescription(ev.Description)
	ve.SetProperty(ical.ComponentPropertyTransp, transparent)
	ve.SetProperty(ical.ComponentPropertyStatus, confirmed)
	ve.SetProperty(ical.ComponentPropertySequence, sequence)
}
