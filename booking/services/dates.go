package services

import (
	"main/booking/model"
	"regexp"
	"strconv"
	"time"
)

// The pattern constrains months to 01-12 and days to 01-31; days that only
// exist in shorter months (e.g. 20230230) pass the pattern and are caught by
// the round-trip check below.
var compactDatePattern = regexp.MustCompile(`^\d{4}(0[1-9]|1[0-2])(0[1-9]|[12]\d|3[01])$`)

// ParseCompactDate validates a yyyymmdd value and returns it as a UTC midnight.
// Construction via time.Date normalizes overflowing days into the next month,
// so the parsed components must survive a round trip through the built date.
func ParseCompactDate(value model.CompactDate) (time.Time, bool) {
	raw := value.String()
	if !compactDatePattern.MatchString(raw) {
		return time.Time{}, false
	}

	year, _ := strconv.Atoi(raw[0:4])
	month, _ := strconv.Atoi(raw[4:6])
	day, _ := strconv.Atoi(raw[6:8])

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, false
	}

	return date, true
}

// Midnight zeroes the time of day so date comparisons work on whole days.
func Midnight(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
