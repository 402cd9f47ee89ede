// Package biztime centralizes clock access. All storage and transport use
// UTC; implicit Local timezone is prohibited.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FromUnixMilli converts a unix-millisecond timestamp to UTC time.
func FromUnixMilli(millis int64) time.Time {
	return time.UnixMilli(millis).UTC()
}
