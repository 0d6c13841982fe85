package zoned

import (
	"fmt"
	"time"
)

// Supported year range of a Time. Arithmetic that leaves it fails with
// ErrOutOfRange.
const (
	MinYear = -999_999_999
	MaxYear = 999_999_999
)

// date is a civil calendar date without a zone.
type date struct {
	year  int
	month time.Month
	day   int
}

// fields is the full wall-clock breakdown of a Time in its own zone.
type fields struct {
	date
	hour, minute, second, nanosecond int
}

func fieldsOf(t time.Time) fields {
	y, m, d := t.Date()
	return fields{
		date:       date{year: y, month: m, day: d},
		hour:       t.Hour(),
		minute:     t.Minute(),
		second:     t.Second(),
		nanosecond: t.Nanosecond(),
	}
}

// IsLeap reports whether year is a leap year under the proleptic Gregorian rule.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysIn(month time.Month, year int) int {
	switch month {
	case time.February:
		if IsLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func daysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

func (d date) validate() error {
	if d.year < MinYear || d.year > MaxYear {
		return fmt.Errorf("%w: year %d outside [%d, %d]", ErrInvalidDateTime, d.year, MinYear, MaxYear)
	}
	if d.month < time.January || d.month > time.December {
		return fmt.Errorf("%w: month %d", ErrInvalidDateTime, d.month)
	}
	if d.day < 1 || d.day > daysIn(d.month, d.year) {
		return fmt.Errorf("%w: day %d for %04d-%02d", ErrInvalidDateTime, d.day, d.year, d.month)
	}
	return nil
}

func (d date) yearDay() int {
	n := d.day
	for m := time.January; m < d.month; m++ {
		n += daysIn(m, d.year)
	}
	return n
}

// fromYearDay returns the date of the n-th day of year, or false if n is out of range.
func fromYearDay(year, n int) (date, bool) {
	if n < 1 || n > daysInYear(year) {
		return date{}, false
	}
	m := time.January
	for n > daysIn(m, year) {
		n -= daysIn(m, year)
		m++
	}
	return date{year: year, month: m, day: n}, true
}

func (f fields) validate() error {
	if err := f.date.validate(); err != nil {
		return err
	}
	switch {
	case f.hour < 0 || f.hour > 23:
		return fmt.Errorf("%w: hour %d", ErrInvalidDateTime, f.hour)
	case f.minute < 0 || f.minute > 59:
		return fmt.Errorf("%w: minute %d", ErrInvalidDateTime, f.minute)
	case f.second < 0 || f.second > 59:
		return fmt.Errorf("%w: second %d", ErrInvalidDateTime, f.second)
	case f.nanosecond < 0 || f.nanosecond > 999_999_999:
		return fmt.Errorf("%w: nanosecond %d", ErrInvalidDateTime, f.nanosecond)
	}
	return nil
}

// in builds the instant for f in loc. Callers validate first; wall-clock
// times inside a daylight-saving gap are normalized by the time package.
func (f fields) in(loc *time.Location) time.Time {
	return time.Date(f.year, f.month, f.day, f.hour, f.minute, f.second, f.nanosecond, loc)
}

func newFields(year, month, day, hour, minute, second, nanosecond int) fields {
	return fields{
		date:       date{year: year, month: time.Month(month), day: day},
		hour:       hour,
		minute:     minute,
		second:     second,
		nanosecond: nanosecond,
	}
}
