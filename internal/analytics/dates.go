package analytics

import "time"

// DateLayout is the one date format exchanged with this package
// (e.g. "2025.06.15"). Anything that fails to parse against it is treated
// as unparseable and silently excluded from date-keyed computations.
const DateLayout = "2006.01.02"

// ParseDate parses a record/log date string. ok is false for any string
// not matching DateLayout exactly.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders t in the DateLayout pattern. Because the layout is
// zero padded, the resulting strings sort lexicographically by date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// daysBetween returns the absolute whole-day distance between two dates.
// Both inputs are expected to be midnight values from ParseDate.
func daysBetween(a, b time.Time) int {
	d := a.Sub(b) / (24 * time.Hour)
	if d < 0 {
		d = -d
	}
	return int(d)
}
