package service

import (
	"errors"
	"fmt"
)

var (
	ErrProfileNotFound     = errors.New("profile not found, complete onboarding first")
	ErrDayNotFound         = errors.New("day not found")
	ErrMealNotFound        = errors.New("meal not found")
	ErrMeasurementNotFound = errors.New("measurement not found")
	ErrSummaryNotFound     = errors.New("progress summary has not been computed")
	ErrNoDays              = errors.New("no logged days to analyze")
	ErrInvalidDate         = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidCredentials  = errors.New("invalid passphrase")
	ErrInvalidToken        = errors.New("invalid token")
	ErrAuthDisabled        = errors.New("authentication is not enabled")
	ErrStorageDisabled     = errors.New("image uploads are not configured")
)

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
