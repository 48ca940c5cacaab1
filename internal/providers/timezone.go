package providers

import "time"

// ResolveTimezone returns the location for an IANA tz name, or nil when
// the name is empty or unknown. Callers treat nil as "stay in UTC".
func ResolveTimezone(tz string) *time.Location {
	if tz == "" {
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil
	}
	return loc
}
