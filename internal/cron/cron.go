// Package cron renders 5-field cron expressions as human-readable schedule
// descriptions, matching the sync schedule labels shown to users. All
// schedules run in UTC.
package cron

import (
	"fmt"
	"strconv"
	"strings"
)

var weekdays = [...]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Humanize converts a 5-field cron expression into a sentence, e.g.
// "0 2 * * *" -> "Daily at 2:00 AM UTC". Expressions it cannot pattern-match
// are reported as a custom schedule; malformed expressions as invalid.
func Humanize(expr string) string {
	fields := strings.Fields(strings.TrimSpace(expr))
	if len(fields) != 5 {
		return "Invalid schedule"
	}

	minute, hour, dom, month, dow := fields[0], fields[1], fields[2], fields[3], fields[4]

	if month != "*" {
		return custom(expr)
	}

	// Every minute / every N minutes.
	if hour == "*" && dom == "*" && dow == "*" {
		if minute == "*" {
			return "Every minute"
		}
		if step, ok := strings.CutPrefix(minute, "*/"); ok {
			n, err := strconv.Atoi(step)
			if err != nil || n <= 0 || n > 59 {
				return "Invalid schedule"
			}
			if n == 1 {
				return "Every minute"
			}
			return fmt.Sprintf("Every %d minutes", n)
		}
		m, ok := atoiInRange(minute, 0, 59)
		if !ok {
			return custom(expr)
		}
		if m == 0 {
			return "Hourly"
		}
		return fmt.Sprintf("Hourly at %d minutes past the hour", m)
	}

	m, ok := atoiInRange(minute, 0, 59)
	if !ok {
		return custom(expr)
	}
	h, ok := atoiInRange(hour, 0, 23)
	if !ok {
		return custom(expr)
	}
	at := clockTime(h, m)

	switch {
	case dom == "*" && dow == "*":
		return fmt.Sprintf("Daily at %s UTC", at)
	case dom == "*":
		d, ok := atoiInRange(dow, 0, 7)
		if !ok {
			return custom(expr)
		}
		return fmt.Sprintf("Weekly on %s at %s UTC", weekdays[d%7], at)
	case dow == "*":
		d, ok := atoiInRange(dom, 1, 31)
		if !ok {
			return custom(expr)
		}
		return fmt.Sprintf("Monthly on day %d at %s UTC", d, at)
	}

	return custom(expr)
}

func custom(expr string) string {
	return fmt.Sprintf("Custom schedule (%s)", strings.TrimSpace(expr))
}

func atoiInRange(s string, lo, hi int) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < lo || n > hi {
		return 0, false
	}
	return n, true
}

// clockTime formats an hour/minute pair on a 12-hour clock, e.g. "2:00 AM".
func clockTime(h, m int) string {
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, period)
}
