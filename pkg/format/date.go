package format

import (
	"regexp"
	"time"
)

var ymdPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DateOnly extracts the YYYY-MM-DD prefix of an ISO timestamp, ignoring its time
// and zone so "2026-02-04T00:00:00.000Z" stays the 4th in Brazil. Returns "" when
// the prefix is not a calendar date.
func DateOnly(iso string) string {
	if len(iso) < 10 {
		return ""
	}
	ymd := iso[:10]
	if !ymdPattern.MatchString(ymd) {
		return ""
	}
	if _, err := time.Parse("2006-01-02", ymd); err != nil {
		return ""
	}
	return ymd
}

// FormatDateBRDateOnly renders the calendar date of an ISO timestamp as dd/mm/yyyy,
// or the empty-value dash when there is no usable date.
func FormatDateBRDateOnly(iso string) string {
	ymd := DateOnly(iso)
	if ymd == "" {
		return "—"
	}
	return ymd[8:10] + "/" + ymd[5:7] + "/" + ymd[0:4]
}

// FormatDateTimeShort renders t as dd/mm/yyyy HH:MM in its own location.
func FormatDateTimeShort(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

// FormatWindowPeriod joins the short forms of start and end with a dash.
func FormatWindowPeriod(start, end time.Time) string {
	return FormatDateTimeShort(start) + " — " + FormatDateTimeShort(end)
}
