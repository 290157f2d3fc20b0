package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Window returns the ordered candidate dates [d-1, d, d+1] around a nominal
// date. The spread absorbs clock skew between a caller's local calendar date
// and the date a provider stored the same event under.
func Window(nominal time.Time) []time.Time {
	return []time.Time{
		nominal.AddDate(0, 0, -1),
		nominal,
		nominal.AddDate(0, 0, 1),
	}
}

// SameDay reports whether two times name the same calendar date, each read in
// its own location. Providers hand us a mix of zoned event times and date-only
// values (parsed as UTC midnight); converting one into the other's zone would
// shift a date-only value across midnight, so the declared dates are compared
// as-is.
func SameDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}
