package model

import (
	"fmt"
	"time"
)

// InvalidInputError reports a raw token that could not be parsed at all.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// ConfigurationError reports a request that parsed but cannot produce a
// calendar (month/year out of range, no days).
type ConfigurationError struct {
	Field      string
	Value      string
	Constraint string
}

func (e *ConfigurationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Constraint)
	}
	return fmt.Sprintf("invalid %s %s: %s", e.Field, e.Value, e.Constraint)
}

// InvalidDateWarning records a day that does not exist in the requested
// month. It is not fatal; it implements error only so it can be logged and
// aggregated like one.
type InvalidDateWarning struct {
	Month  int
	Day    int
	Year   int
	MaxDay int
}

func (w InvalidDateWarning) Error() string {
	return fmt.Sprintf("invalid date %d/%d/%d: day must be 1-%d for %s %d",
		w.Month, w.Day, w.Year, w.MaxDay, w.monthName(), w.Year)
}

func (w InvalidDateWarning) monthName() string {
	if w.Month < 1 || w.Month > 12 {
		return fmt.Sprintf("month %d", w.Month)
	}
	return time.Month(w.Month).String()
}

// StorageError wraps a failure writing the generated document.
type StorageError struct {
	Path string
	Op   string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
