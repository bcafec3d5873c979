package model

import "time"

// EventRequest is the normalized input of one run: which days of which
// month need a packed lunch, and the display strings used in the events.
type EventRequest struct {
	Month int
	Year  int
	Days  []int

	SubjectName  string
	LocationText string
	// TimezoneName is written verbatim as X-WR-TIMEZONE; it is never resolved.
	TimezoneName string
}

// CalendarEvent represents a single all-day reminder.
//
// Every event is transparent (does not block the day), confirmed and at
// sequence 0, so those fields are not carried here.
type CalendarEvent struct {
	// Date is midnight UTC of the event day. Only the date part is used.
	Date time.Time
	UID  string

	Summary     string
	Description string
}

// CalendarDocument is the full VCALENDAR before serialization.
type CalendarDocument struct {
	ProductID string
	Name      string
	Timezone  string

	// Events are in ascending date order.
	Events []CalendarEvent
}
