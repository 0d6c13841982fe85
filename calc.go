package zoned

import (
	"fmt"
	"math"
	"time"
)

const (
	monthSpan = int64(MaxYear-MinYear+1) * 12
	daySpan   = int64(MaxYear-MinYear+1) * 366
)

// Unix-second bounds of the supported range, widened by a day so that the
// final check is made on the zoned year rather than the UTC one.
var (
	minUnix = time.Date(MinYear, time.January, 1, 0, 0, 0, 0, time.UTC).Unix() - 86400
	maxUnix = time.Date(MaxYear, time.December, 31, 23, 59, 59, 0, time.UTC).Unix() + 86400
)

func outOfRange(unit string, n int64) error {
	return fmt.Errorf("%w: adding %d %s", ErrOutOfRange, n, unit)
}

func inRange(t time.Time) bool {
	y := t.Year()
	return y >= MinYear && y <= MaxYear
}

// AddYears adds n years (negative subtracts). February 29 clamps to
// February 28 in a non-leap target year.
func (z *Time) AddYears(n int64) error {
	if n > monthSpan/12 || n < -monthSpan/12 {
		return outOfRange("years", n)
	}
	return z.AddMonths(n * 12)
}

// AddMonths adds n months. A day that does not exist in the target month
// clamps to its last day: January 31 + 1 month is February 29 in a leap
// year and February 28 otherwise.
func (z *Time) AddMonths(n int64) error {
	if n > monthSpan || n < -monthSpan {
		return outOfRange("months", n)
	}
	f := fieldsOf(z.t)
	total := int64(f.year)*12 + int64(f.month-1) + n
	year := floorDiv(total, 12)
	if year < MinYear || year > MaxYear {
		return outOfRange("months", n)
	}
	f.year = int(year)
	f.month = time.Month(total-year*12) + time.January
	if last := daysIn(f.month, f.year); f.day > last {
		f.day = last
	}
	z.t = f.in(z.t.Location())
	return nil
}

// AddDays moves the wall-clock date by n days in the zone, keeping the
// time of day across daylight-saving transitions.
func (z *Time) AddDays(n int64) error {
	if n > daySpan || n < -daySpan {
		return outOfRange("days", n)
	}
	t := z.t.AddDate(0, 0, int(n))
	if !inRange(t) {
		return outOfRange("days", n)
	}
	z.t = t
	return nil
}

// AddWeeks moves the wall-clock date by n weeks.
func (z *Time) AddWeeks(n int64) error {
	days, ok := mulInt64(n, 7)
	if !ok {
		return outOfRange("weeks", n)
	}
	if err := z.AddDays(days); err != nil {
		return outOfRange("weeks", n)
	}
	return nil
}

// AddHours moves the instant by n hours.
func (z *Time) AddHours(n int64) error {
	sec, ok := mulInt64(n, 3600)
	if !ok {
		return outOfRange("hours", n)
	}
	return z.addInstant(sec, 0, "hours", n)
}

// AddMinutes moves the instant by n minutes.
func (z *Time) AddMinutes(n int64) error {
	sec, ok := mulInt64(n, 60)
	if !ok {
		return outOfRange("minutes", n)
	}
	return z.addInstant(sec, 0, "minutes", n)
}

// AddSeconds moves the instant by n seconds.
func (z *Time) AddSeconds(n int64) error {
	return z.addInstant(n, 0, "seconds", n)
}

// AddNanoseconds moves the instant by n nanoseconds.
func (z *Time) AddNanoseconds(n int64) error {
	return z.addInstant(n/1e9, n%1e9, "nanoseconds", n)
}

// ChangeZone re-expresses the same instant in zone; the wall-clock fields
// change, the instant does not. If zone does not resolve, z is unchanged.
func (z *Time) ChangeZone(zone string) error {
	loc, err := z.cal.ResolveZone(zone)
	if err != nil {
		return err
	}
	t := z.t.In(loc)
	if !inRange(t) {
		return fmt.Errorf("%w: %s in %s", ErrOutOfRange, z.t, zone)
	}
	z.t = t
	return nil
}

func (z *Time) addInstant(sec, nsec int64, unit string, n int64) error {
	s, ok := addInt64(z.t.Unix(), sec)
	if !ok || s < minUnix || s > maxUnix {
		return outOfRange(unit, n)
	}
	ns := int64(z.t.Nanosecond()) + nsec
	s += floorDiv(ns, 1e9)
	ns -= floorDiv(ns, 1e9) * 1e9

	t := time.Unix(s, ns).In(z.t.Location())
	if !inRange(t) {
		return outOfRange(unit, n)
	}
	z.t = t
	return nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func addInt64(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, false
	}
	return c, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	return c, true
}
