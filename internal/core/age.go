// Package core provides the date arithmetic behind the daily greeting.
package core

import (
	"time"

	"github.com/jmylchreest/memento/internal/model"
)

// DaysPerYear is the naive year length used for age in years.
const DaysPerYear = 365

// Today returns the local calendar date of now.
func Today(now time.Time) model.Date {
	return model.DateOf(now)
}

// Midnight returns the start of now's calendar day in now's location.
func Midnight(now time.Time) time.Time {
	return Today(now).Time(now.Location())
}

// Due reports whether a greeting last shown at lastShown should be shown
// again at now, i.e. lastShown is at or before today's midnight.
func Due(lastShown, now time.Time) bool {
	return !lastShown.After(Midnight(now))
}

// DaysBetween returns the number of whole days from a to b (negative when
// b is before a).
func DaysBetween(a, b model.Date) int {
	return int(b.Time(time.UTC).Sub(a.Time(time.UTC)) / (24 * time.Hour))
}

// NextBirthday returns the next occurrence of birthday on or after today.
// A Feb 29 birthday falls on Mar 1 in non-leap years.
func NextBirthday(birthday, today model.Date) model.Date {
	thisYear := model.NewDate(today.Year, birthday.Month, birthday.Day)
	if !thisYear.Before(today) {
		return thisYear
	}
	return model.NewDate(today.Year+1, birthday.Month, birthday.Day)
}

// Compute derives the greeting facts for birthday as seen on today.
func Compute(birthday, today model.Date) model.Greeting {
	ageDays := DaysBetween(birthday, today)
	next := NextBirthday(birthday, today)

	return model.Greeting{
		Today:             today,
		Birthday:          birthday,
		AgeDays:           ageDays,
		AgeYears:          ageDays / DaysPerYear,
		RemainderDays:     ageDays % DaysPerYear,
		IsBirthday:        next == today,
		NextBirthday:      next,
		NextAge:           next.Year - birthday.Year,
		DaysUntilBirthday: DaysBetween(today, next),
		DaysLeftInYear:    DaysBetween(today, model.Date{Year: today.Year + 1, Month: time.January, Day: 1}),
	}
}
