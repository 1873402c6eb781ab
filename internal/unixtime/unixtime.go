// Package unixtime converts proleptic Gregorian calendar dates to Unix
// timestamps without going through time.Location. The transition tables we
// query are what time.Location is built from in the first place, so the
// year-window arithmetic must not depend on it.
package unixtime

// The constants were copied from time.go in the Go standard library's time package.
const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	daysPer400Years  = 365*400 + 97
	daysPer100Years  = 365*100 + 24
	daysPer4Years    = 365*4 + 1

	absoluteZeroYear         = -292277022399
	internalYear             = 1
	absoluteToInternal int64 = (absoluteZeroYear - internalYear) * 365.2425 * secondsPerDay
	unixToInternal     int64 = (1969*365 + 1969/4 - 1969/100 + 1969/400) * secondsPerDay
	internalToUnix     int64 = -unixToInternal
)

var daysSinceStartOfYear = [12]uint64{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// FromDateTime converts a given UTC date and time to a Unix timestamp,
// i.e. the number of seconds since 1970-01-01 00:00:00 UTC. It ignores
// leap seconds but respects leap years.
func FromDateTime(year, month, day, hour, minute, second int) int64 {
	d := daysSinceEpoch(year) + daysSinceStartOfYear[month-1] + (uint64(day) - 1)
	if month > 2 && isLeap(year) {
		d++
	}
	abs := d*secondsPerDay + uint64(hour)*secondsPerHour + uint64(minute)*secondsPerMinute + uint64(second)
	return int64(abs) + (absoluteToInternal + internalToUnix)
}

// YearBounds returns the instants of January 1 00:00:00 UTC and
// December 31 00:00:00 UTC of the given year. Note that the upper bound
// deliberately excludes the last day of the year itself.
func YearBounds(year int) (begin, end int64) {
	return FromDateTime(year, 1, 1, 0, 0, 0), FromDateTime(year, 12, 31, 0, 0, 0)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysSinceEpoch takes a year and returns the number of days from the
// absolute epoch to the start of that year. This is basically
// (year - zeroYear) * 365, but accounting for leap days.
//
// This function was copied from time.go in the Go standard library time package.
func daysSinceEpoch(year int) uint64 {
	y := uint64(int64(year) - absoluteZeroYear)

	// Add in days from 400-year cycles.
	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	// Add in 100-year cycles.
	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	// Add in 4-year cycles.
	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	// Add in non-leap years.
	n = y
	d += 365 * n

	return d
}
