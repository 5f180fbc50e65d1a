// Package biztime centralizes time handling. All storage and transport use
// UTC; implicit local timezone is prohibited.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FromMilli converts a millisecond UNIX timestamp to a UTC time.
func FromMilli(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
