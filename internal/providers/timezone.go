package providers

import "time"

// ResolveTimezone returns a location for a tz string. An empty or invalid
// name resolves to the process-local zone.
func ResolveTimezone(tz string) *time.Location {
	if tz == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Local
	}
	return loc
}
