// Package biztime centralizes time handling. All storage and transport use UTC.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}
