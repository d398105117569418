package utils

import (
	"fmt"
	"strings"
	"time"
)

type DateFormat string

const (
	FormatISO8601        DateFormat = "2006-01-02T15:04:05Z07:00"
	FormatISO8601Minutes DateFormat = "2006-01-02T15:04"
	FormatISO8601Date    DateFormat = "2006-01-02"
	FormatBRDateTime     DateFormat = "02/01/2006 15:04"
	FormatBRDate         DateFormat = "02/01/2006"

	// DisplayFormat is how timestamps are shown in tables, pt-BR style.
	DisplayFormat = "02/01/2006 15:04:05"
)

var supportedFormats = []DateFormat{
	FormatISO8601,
	FormatISO8601Minutes,
	FormatISO8601Date,
	FormatBRDateTime,
	FormatBRDate,
}

// ParseDate accepts ISO dates and day-first Brazilian dates, with or without
// a time. Values without a zone are read as UTC, like the backend's own
// timestamps.
func ParseDate(input string) (time.Time, DateFormat, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, "", fmt.Errorf("empty date")
	}

	for _, format := range supportedFormats {
		if parsed, err := time.Parse(string(format), input); err == nil {
			return parsed.UTC(), format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unrecognized date %q", input)
}

// HasTime reports whether format carries a time of day.
func (f DateFormat) HasTime() bool {
	return f != FormatISO8601Date && f != FormatBRDate
}

// EndOfDay moves a date-only bound to the last instant of that day so an
// inclusive "until" covers the whole day.
func EndOfDay(t time.Time) time.Time {
	return t.Add(24*time.Hour - time.Nanosecond)
}
