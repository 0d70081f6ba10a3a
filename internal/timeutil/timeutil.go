package timeutil

import "time"

// DateLayout is the schedule date format the upstream API accepts (MM/DD/YYYY).
const DateLayout = "01/02/2006"

// ParseDate parses an MM/DD/YYYY date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as MM/DD/YYYY in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseGameTime parses an RFC 3339 timestamp from the API and shifts it
// into loc. Returns nil for empty or malformed input so absent start times
// stay optional.
func ParseGameTime(value string, loc *time.Location) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}
	if loc == nil {
		loc = time.Local
	}
	local := parsed.In(loc)
	return &local
}
