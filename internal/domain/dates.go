package domain

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDueDate parses a lenient due-date string: ISO dates, natural formats
// accepted by dateparse, and the relative tokens today/tomorrow/next <weekday>.
func ParseDueDate(text string, ref time.Time, loc *time.Location) (time.Time, bool) {
	token := strings.ToLower(strings.TrimSpace(text))
	if token == "" {
		return time.Time{}, false
	}

	if t, ok := resolveRelative(token, ref, loc); ok {
		return t, true
	}

	t, err := dateparse.ParseIn(token, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func resolveRelative(token string, ref time.Time, loc *time.Location) (time.Time, bool) {
	ref = dateOnly(ref.In(loc))

	switch token {
	case "today":
		return ref, true
	case "tomorrow":
		return ref.AddDate(0, 0, 1), true
	case "yesterday":
		return ref.AddDate(0, 0, -1), true
	}

	if after, ok := strings.CutPrefix(token, "next "); ok {
		wd, ok := parseWeekday(after)
		if !ok {
			return time.Time{}, false
		}
		return nextWeekday(ref, wd), true
	}

	return time.Time{}, false
}

func parseWeekday(s string) (time.Weekday, bool) {
	switch strings.ToLower(s) {
	case "sunday":
		return time.Sunday, true
	case "monday":
		return time.Monday, true
	case "tuesday":
		return time.Tuesday, true
	case "wednesday":
		return time.Wednesday, true
	case "thursday":
		return time.Thursday, true
	case "friday":
		return time.Friday, true
	case "saturday":
		return time.Saturday, true
	default:
		return 0, false
	}
}

func nextWeekday(ref time.Time, target time.Weekday) time.Time {
	delta := (int(target) - int(ref.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return ref.AddDate(0, 0, delta)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
