package activity

import (
	"fmt"
	"time"
)

// TimeLabel renders a timestamp relative to now: "just now" under a minute,
// then minutes, hours and days, and the absolute date once the event is more
// than a week old.
func TimeLabel(ts, now time.Time) string {
	d := now.Sub(ts)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%d min ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d h ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%d d ago", int(d.Hours()/24))
	default:
		return ts.Format("02 Jan 2006")
	}
}
