package utils

import (
	"time"

	"github.com/Fayets/NutriFA/apperror"
)

const DateLayout = "2006-01-02"

// DayStart returns local midnight of t's calendar day.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayEnd returns the last representable instant of t's calendar day.
func DayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// RangeBounds validates an inclusive date range and returns the instant
// pair [start-of-startDate, end-of-endDate] used by every range query.
func RangeBounds(startDate, endDate time.Time) (time.Time, time.Time, error) {
	if DayStart(endDate).Before(DayStart(startDate)) {
		return time.Time{}, time.Time{}, apperror.InvalidInput("end date cannot be before start date")
	}
	return DayStart(startDate), DayEnd(endDate), nil
}
