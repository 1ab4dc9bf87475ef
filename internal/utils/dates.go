// Package utils provides utility functions for the credit plan engine.
package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultBusinessTimeZone is the fixed timezone all date-only arithmetic is
// performed in. It is a deployment constant, never negotiated per request.
const DefaultBusinessTimeZone = "America/Guatemala"

var businessLoc = loadLocation(DefaultBusinessTimeZone)

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		// Guatemala does not observe DST, so a fixed offset is equivalent
		// on hosts without tzdata.
		return time.FixedZone("CST", -6*60*60)
	}
	return loc
}

// SetBusinessTimeZone replaces the business timezone. Called once at startup
// from configuration, before any plan is built.
func SetBusinessTimeZone(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("unknown business timezone %q: %w", name, err)
	}
	businessLoc = loc
	return nil
}

// Midnight truncates t to midnight of its calendar day in the business
// timezone and returns the corresponding UTC instant. This makes date-only
// arithmetic insensitive to the caller's own timezone.
func Midnight(t time.Time) time.Time {
	lt := t.In(businessLoc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, businessLoc).UTC()
}

// AddDays adds calendar days to t in the business timezone, truncated to
// local midnight, returned as the UTC instant of that midnight.
func AddDays(t time.Time, days int) time.Time {
	lt := t.In(businessLoc)
	return time.Date(lt.Year(), lt.Month(), lt.Day()+days, 0, 0, 0, 0, businessLoc).UTC()
}

// ErrInvalidDate is returned when a raw date string cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

// ParseDate parses a date-only string (2006-01-02, interpreted in the
// business timezone) or an RFC3339 instant, normalized to business midnight.
func ParseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if t, err := time.ParseInLocation("2006-01-02", s, businessLoc); err == nil {
		return Midnight(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Midnight(t), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}
