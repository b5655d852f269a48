// Package uaetime pins all business-date arithmetic to the UAE timezone
// (Asia/Dubai, UTC+4). Check-in cutoffs, today/yesterday resolution and
// Sunday classification are timezone-sensitive business rules, so every
// caller must go through this package instead of time.Now().
package uaetime

import "time"

const TimezoneName = "Asia/Dubai"

// DateLayout is the canonical YYYY-MM-DD form used for attendance dates,
// holiday entries and all date-string comparisons.
const DateLayout = "2006-01-02"

var location = loadLocation()

func loadLocation() *time.Location {
	loc, err := time.LoadLocation(TimezoneName)
	if err != nil {
		// Asia/Dubai has no DST; a fixed UTC+4 zone is equivalent.
		return time.FixedZone("GST", 4*60*60)
	}
	return loc
}

// Location returns the business timezone.
func Location() *time.Location {
	return location
}

// Now returns the current time in the business timezone.
func Now() time.Time {
	return time.Now().In(location)
}

// Today returns today's date string in the business timezone.
func Today() string {
	return Now().Format(DateLayout)
}

// Yesterday returns yesterday's date string in the business timezone.
func Yesterday() string {
	return Now().AddDate(0, 0, -1).Format(DateLayout)
}

// DateStr converts any instant to its YYYY-MM-DD form in the business timezone.
func DateStr(t time.Time) string {
	return t.In(location).Format(DateLayout)
}

// MonthStart returns the first day of the current business-timezone month.
func MonthStart() string {
	now := Now()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, location).Format(DateLayout)
}
