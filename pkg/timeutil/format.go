// Package timeutil provides duration formatting for catfacts.
//
// The slideshow interval and animation timings are time.Duration values;
// this package turns them into the short strings shown in the footer and
// the snapshot header.
package timeutil

import (
	"fmt"
	"strconv"
	"time"
)

// FormatInterval formats a duration for display.
// Examples: "450ms", "5s", "1.5s", "2m 5s"
func FormatInterval(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	ms := d.Milliseconds()
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	seconds := float64(ms) / 1000.0
	if seconds < 60 {
		return trimSeconds(seconds) + "s"
	}
	minutes := int(seconds / 60)
	remaining := seconds - float64(minutes*60)
	if remaining == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dm %ss", minutes, trimSeconds(remaining))
}

// trimSeconds prints at most one decimal and drops a trailing ".0".
func trimSeconds(s float64) string {
	return strconv.FormatFloat(float64(int64(s*10+0.5))/10, 'f', -1, 64)
}
