// Package display holds render-time helpers: deal countdowns, seat and gate
// labels, and the rotating banner.
package display

import (
	"fmt"
	"time"
)

// TimeLeft is until-now, never negative.
func TimeLeft(now, until time.Time) time.Duration {
	d := until.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// FormatTimeLeft shows the two most significant units: "3d 4h", "4h 10m"
// or "10m 5s".
func FormatTimeLeft(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := int(d / (24 * time.Hour))
	hours := int(d % (24 * time.Hour) / time.Hour)
	minutes := int(d % time.Hour / time.Minute)
	seconds := int(d % time.Minute / time.Second)

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
}
