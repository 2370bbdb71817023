package validate

import "time"

// Past reports whether t is strictly before the current time.
func Past(t time.Time) bool {
	return t.Before(time.Now())
}

// Future reports whether t is strictly after the current time.
func Future(t time.Time) bool {
	return t.After(time.Now())
}

// DateAfter returns a check that passes when the value is strictly after ref.
func DateAfter(ref time.Time) func(time.Time) bool {
	return func(t time.Time) bool { return t.After(ref) }
}

// DateBefore returns a check that passes when the value is strictly before
// ref.
func DateBefore(ref time.Time) func(time.Time) bool {
	return func(t time.Time) bool { return t.Before(ref) }
}

// DateBetween returns a check that passes when the value is within
// [start, end], bounds included.
func DateBetween(start, end time.Time) func(time.Time) bool {
	return func(t time.Time) bool { return !t.Before(start) && !t.After(end) }
}

// MinAge returns a check over a birthdate that passes when the person is at
// least years old today.
func MinAge(years int) func(time.Time) bool {
	return func(birthdate time.Time) bool { return yearsSince(birthdate) >= years }
}

// MaxAge returns a check over a birthdate that passes when the person is at
// most years old today.
func MaxAge(years int) func(time.Time) bool {
	return func(birthdate time.Time) bool { return yearsSince(birthdate) <= years }
}

// AgeBetween returns a check over a birthdate that passes when the person's
// age is within [min, max] years, bounds included.
func AgeBetween(min, max int) func(time.Time) bool {
	return func(birthdate time.Time) bool {
		age := yearsSince(birthdate)
		return age >= min && age <= max
	}
}

// BusinessHours returns a check that passes when the value's hour is within
// [startHour, endHour): opening hour included, closing hour excluded.
func BusinessHours(startHour, endHour int) func(time.Time) bool {
	return func(t time.Time) bool {
		hour := t.Hour()
		return hour >= startHour && hour < endHour
	}
}

// WorkingDay reports whether t falls on Monday through Friday.
func WorkingDay(t time.Time) bool {
	weekday := t.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// Weekend reports whether t falls on Saturday or Sunday.
func Weekend(t time.Time) bool {
	weekday := t.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// TimeAfter returns a check that passes when the value's time of day is
// strictly after ref's, ignoring the date component.
func TimeAfter(ref time.Time) func(time.Time) bool {
	return func(t time.Time) bool { return clockSeconds(t) > clockSeconds(ref) }
}

// TimeBefore returns a check that passes when the value's time of day is
// strictly before ref's, ignoring the date component.
func TimeBefore(ref time.Time) func(time.Time) bool {
	return func(t time.Time) bool { return clockSeconds(t) < clockSeconds(ref) }
}

// TimeBetween returns a check that passes when the value's time of day is
// within [start, end], bounds included, ignoring the date component.
func TimeBetween(start, end time.Time) func(time.Time) bool {
	return func(t time.Time) bool {
		s := clockSeconds(t)
		return s >= clockSeconds(start) && s <= clockSeconds(end)
	}
}

// Birthdate reports whether t is a plausible birthdate: not in the future and
// not more than 150 years ago.
func Birthdate(t time.Time) bool {
	now := time.Now()
	if t.After(now) {
		return false
	}
	return t.After(now.AddDate(-150, 0, 0))
}

// yearsSince counts completed years between birthdate and now, decrementing
// when the birthday has not yet occurred this year.
func yearsSince(birthdate time.Time) int {
	now := time.Now()
	years := now.Year() - birthdate.Year()
	if now.Month() < birthdate.Month() ||
		(now.Month() == birthdate.Month() && now.Day() < birthdate.Day()) {
		years--
	}
	return years
}

// clockSeconds is t's time of day in seconds since midnight.
func clockSeconds(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}
