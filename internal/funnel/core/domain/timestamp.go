package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrMalformedTimestamp = errors.New("malformed timestamp")

// clock layouts in extended and basic form, each tried with three offset
// spellings (+01:00, +0100, +01) before being read as local time
var clockLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"20060102T150405.999999999",
	"20060102T1504",
}

var zonedLayouts, localLayouts = buildLayouts()

func buildLayouts() (zoned, local []string) {
	for _, clock := range clockLayouts {
		for _, zone := range []string{"Z07:00", "Z0700", "Z07"} {
			zoned = append(zoned, clock+zone)
		}
	}
	local = append(append(local, clockLayouts...), dayKeyLayout)
	return zoned, local
}

// ParseTimestamp parses an ISO-8601 instant. Values without an offset are
// read in loc (UTC when nil).
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrMalformedTimestamp
	}
	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrMalformedTimestamp
}
