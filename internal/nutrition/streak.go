package nutrition

import "time"

// DateLayout is the calendar-date format used for days and measurements.
const DateLayout = "2006-01-02"

// DateString formats t as a local calendar date.
func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}

// NextStreak returns the streak after activity on today. When today is not
// active the streak is unchanged. An active day extends the streak only if
// the previous active date was yesterday; any other previous date, today
// included, restarts it at 1.
func NextStreak(current int, lastActive *string, today time.Time, active bool) int {
	if !active {
		return current
	}
	if lastActive == nil || *lastActive == DateString(today.AddDate(0, 0, -1)) {
		return current + 1
	}
	return 1
}

// LongestStreak keeps the record monotonic.
func LongestStreak(longest, current int) int {
	if current > longest {
		return current
	}
	return longest
}
