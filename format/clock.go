// Package format turns times and dates into the strings shown by the widget.
package format

import (
	"fmt"
	"time"
)

// Clock renders a 24h hour/minute pair as "H:MM AM" / "H:MM PM".
func Clock(hour, minute int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}

	h := hour % 12
	if h == 0 {
		h = 12
	}

	return fmt.Sprintf("%d:%02d %s", h, minute, suffix)
}

// Greeting buckets an hour of the day.
func Greeting(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "Good Morning"
	case hour >= 12 && hour < 17:
		return "Good Afternoon"
	case hour >= 17 && hour < 21:
		return "Good Evening"
	default:
		return "Good Night"
	}
}

// Date renders the date slot, e.g. "Mon Jun 10 2024".
func Date(t time.Time) string {
	return t.Format("Mon Jan 02 2006")
}
