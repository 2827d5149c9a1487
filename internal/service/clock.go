package service

import (
	"time"

	"github.com/pageza/calorie-quest/backend/internal/nutrition"
)

// Clock returns the current time in the user's time zone.
type Clock func() time.Time

// LocalClock is a Clock for the given location.
func LocalClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return func() time.Time { return time.Now().In(loc) }
}

// validDate accepts only real calendar dates in YYYY-MM-DD form.
func validDate(s string) error {
	t, err := time.Parse(nutrition.DateLayout, s)
	if err != nil || t.Format(nutrition.DateLayout) != s {
		return ErrInvalidDate
	}
	return nil
}

// validTime accepts HH:MM on a 24 hour clock.
func validTime(s string) bool {
	t, err := time.Parse("15:04", s)
	return err == nil && t.Format("15:04") == s
}
